package db_models

import "time"

// Photo is one uploaded reference image. FilePath is always generated by
// the server; OriginalName is whatever the client's browser sent and is
// never used to build filesystem paths.
type Photo struct {
	ID           uint      `gorm:"primaryKey"`
	SubmissionID uint      `gorm:"index;not null"`
	FilePath     string    `gorm:"type:text;not null"`
	OriginalName string    `gorm:"type:text"`
	ContentType  string    `gorm:"type:varchar(64)"`
	UploadedAt   time.Time `gorm:"autoCreateTime"`
}

func (Photo) TableName() string { return "photos" }
