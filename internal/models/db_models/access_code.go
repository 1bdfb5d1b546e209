package db_models

import "time"

// AccessCode is the one-time code a founder hands to a prospective client.
// The code string is immutable once created; only IsActive is ever updated.
type AccessCode struct {
	ID             uint      `gorm:"primaryKey"`
	Code           string    `gorm:"type:varchar(8);uniqueIndex;not null"`
	ArchitectEmail string    `gorm:"type:text;not null"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (AccessCode) TableName() string { return "access_codes" }
