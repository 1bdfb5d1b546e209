package request_models

type StartSurveyRequest struct {
	Code      string `form:"code" binding:"required"`
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required"`
	DOB       string `form:"dob" binding:"required"`
}
