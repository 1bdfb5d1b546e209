package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID := c.GetString("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID,
		Data:    data,
	})
}

// HandlePageError maps service errors onto responses for the
// server-rendered pages. Not-found conditions surface as plain 404s;
// everything else is logged and answered with an opaque 500 so internals
// never leak into the client-visible flow.
func HandlePageError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, ErrCodeNotFound):
		c.String(http.StatusNotFound, "Code not found")
	case errors.Is(err, ErrSubmissionNotFound):
		c.String(http.StatusNotFound, "Submission not found")
	case errors.Is(err, ErrPhotoNotFound):
		c.String(http.StatusNotFound, "Photo not found")
	default:
		logger.Error("internal error",
			zap.String("trace_id", c.GetString("trace_id")),
			zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
