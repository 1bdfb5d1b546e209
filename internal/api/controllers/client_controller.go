package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studiointake/internal/models/request_models"
	"studiointake/internal/services"
	"studiointake/pkg/utils"
)

type ClientController struct {
	surveyService services.SurveyServiceInterface
	photoService  services.PhotoServiceInterface
	logger        *zap.Logger
}

func NewClientController(
	surveyService services.SurveyServiceInterface,
	photoService services.PhotoServiceInterface,
	logger *zap.Logger,
) *ClientController {
	return &ClientController{
		surveyService: surveyService,
		photoService:  photoService,
		logger:        logger,
	}
}

func (cc *ClientController) StartPage(c *gin.Context) {
	c.HTML(http.StatusOK, "client_start.html", gin.H{"error": nil})
}

func (cc *ClientController) StartSubmit(c *gin.Context) {
	var req request_models.StartSurveyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusOK, "client_start.html", gin.H{"error": "All fields are required."})
		return
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		c.HTML(http.StatusOK, "client_start.html", gin.H{"error": "Date of birth must be YYYY-MM-DD."})
		return
	}

	sub, err := cc.surveyService.StartSubmission(c.Request.Context(),
		req.Code, req.FirstName, req.LastName, req.Email, dob)
	if err != nil {
		if errors.Is(err, utils.ErrCodeInvalid) {
			c.HTML(http.StatusOK, "client_start.html", gin.H{"error": "Invalid or inactive code."})
			return
		}
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/client/%d/survey", sub.ID))
}

func (cc *ClientController) SurveyPage(c *gin.Context) {
	subID, ok := parseID(c, "sub_id")
	if !ok {
		return
	}

	surveyCtx, err := cc.surveyService.GetSurveyContext(c.Request.Context(), subID)
	if err != nil {
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	c.HTML(http.StatusOK, "survey.html", gin.H{
		"sub":       surveyCtx.Submission,
		"answers":   surveyCtx.Answers,
		"photos":    surveyCtx.Photos,
		"questions": cc.surveyService.Questions(),
	})
}

func (cc *ClientController) SurveySubmit(c *gin.Context) {
	subID, ok := parseID(c, "sub_id")
	if !ok {
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	sub, err := cc.surveyService.SubmitAnswers(c.Request.Context(), subID, c.Request.PostForm)
	if err != nil {
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	c.HTML(http.StatusOK, "survey_thanks.html", gin.H{"sub": sub})
}

func (cc *ClientController) UploadPhotos(c *gin.Context) {
	subID, ok := parseID(c, "sub_id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	if _, err := cc.photoService.UploadPhotos(c.Request.Context(), subID, form.File["files"]); err != nil {
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/client/%d/survey", subID))
}

func (cc *ClientController) DeletePhoto(c *gin.Context) {
	subID, ok := parseID(c, "sub_id")
	if !ok {
		return
	}
	photoID, ok := parseID(c, "photo_id")
	if !ok {
		return
	}

	if err := cc.photoService.DeletePhoto(c.Request.Context(), subID, photoID); err != nil {
		utils.HandlePageError(c, cc.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/client/%d/survey", subID))
}

func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return 0, false
	}
	return uint(id), true
}
