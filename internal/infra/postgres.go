package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"studiointake/internal/config"
	"studiointake/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// Migrate creates the three intake tables and makes sure the upload
// directory exists before the first request can touch either.
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return err
	}

	return db.AutoMigrate(
		&db_models.AccessCode{},
		&db_models.Submission{},
		&db_models.Photo{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
