package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studiointake/internal/services"
	"studiointake/pkg/utils"
)

type FounderController struct {
	codeService services.AccessCodeServiceInterface
	logger      *zap.Logger
}

func NewFounderController(codeService services.AccessCodeServiceInterface, logger *zap.Logger) *FounderController {
	return &FounderController{codeService: codeService, logger: logger}
}

// Dashboard lists every access code, newest first.
func (f *FounderController) Dashboard(c *gin.Context) {
	codes, err := f.codeService.ListCodes(c.Request.Context())
	if err != nil {
		utils.HandlePageError(c, f.logger, err)
		return
	}

	c.HTML(http.StatusOK, "founder.html", gin.H{
		"codes": codes,
		"ok":    c.Query("ok"),
		"key":   c.Query("key"),
	})
}

func (f *FounderController) CreateCode(c *gin.Context) {
	architectEmail := strings.TrimSpace(c.PostForm("architect_email"))
	if architectEmail == "" {
		c.String(http.StatusBadRequest, "architect_email is required")
		return
	}

	if _, err := f.codeService.CreateCode(c.Request.Context(), architectEmail); err != nil {
		utils.HandlePageError(c, f.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/founder?key="+url.QueryEscape(c.Query("key"))+"&ok=1")
}

func (f *FounderController) ToggleCode(c *gin.Context) {
	code := c.Param("code")
	if _, err := f.codeService.ToggleCode(c.Request.Context(), code); err != nil {
		utils.HandlePageError(c, f.logger, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/founder?key="+url.QueryEscape(c.Query("key")))
}
