package main

import (
	"context"
	"html/template"
	"log"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"studiointake/cmd/fx/codes_fx"
	"studiointake/cmd/fx/config_fx"
	"studiointake/cmd/fx/controllers_fx"
	"studiointake/cmd/fx/db_fx"
	"studiointake/cmd/fx/logger_fx"
	"studiointake/cmd/fx/mail_fx"
	"studiointake/cmd/fx/photos_fx"
	"studiointake/cmd/fx/survey_fx"
	"studiointake/internal/api/controllers"
	"studiointake/internal/config"
	"studiointake/internal/infra"
	"studiointake/pkg/middleware"
	"studiointake/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		codes_fx.Module,
		survey_fx.Module,
		photos_fx.Module,
		mail_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB, cfg *config.Config) error {
	return infra.Migrate(db, cfg)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	founderController *controllers.FounderController,
	clientController *controllers.ClientController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	r.LoadHTMLGlob("templates/*.html")
	mountUploads(r, cfg.UploadDir)

	RegisterRoutes(r, cfg, founderController, clientController)

	return r
}

// mountUploads serves the upload directory under the same URL prefix the
// stored photo paths begin with, so a FilePath like
// "static/uploads/x.jpg" resolves at "/static/uploads/x.jpg" for any
// configured directory.
func mountUploads(r *gin.Engine, uploadDir string) {
	r.Static("/"+filepath.ToSlash(uploadDir), uploadDir)
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	founderController *controllers.FounderController,
	clientController *controllers.ClientController) {

	r.GET("/", func(c *gin.Context) {
		utils.RespondSuccess(c, nil, "Server is running")
	})

	founderGroup := r.Group("/founder", middleware.FounderKeyMiddleware(cfg.FounderKey))
	founderGroup.GET("", founderController.Dashboard)
	founderGroup.POST("/create", founderController.CreateCode)
	founderGroup.POST("/toggle/:code", founderController.ToggleCode)

	r.GET("/start", clientController.StartPage)
	r.POST("/start", clientController.StartSubmit)

	clientGroup := r.Group("/client/:sub_id")
	clientGroup.GET("/survey", clientController.SurveyPage)
	clientGroup.POST("/survey", clientController.SurveySubmit)
	clientGroup.POST("/upload", clientController.UploadPhotos)
	clientGroup.POST("/photo/:photo_id/delete", clientController.DeletePhoto)
}
