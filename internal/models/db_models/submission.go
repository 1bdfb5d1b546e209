package db_models

import "time"

const (
	StatusDraft     = "DRAFT"
	StatusSubmitted = "SUBMITTED"
)

// Submission is one client intake. Answers live in AnswersJSON as a JSON
// object keyed "q1".."q30"; the column stays NULL until the first survey
// submit. Code is a copy of the redeemed access code, not a live relation.
type Submission struct {
	ID              uint      `gorm:"primaryKey"`
	Code            string    `gorm:"type:varchar(8);index;not null"`
	ClientFirstName string    `gorm:"type:text;not null"`
	ClientLastName  string    `gorm:"type:text;not null"`
	ClientEmail     string    `gorm:"type:text;not null"`
	ClientDOB       time.Time `gorm:"type:date;not null"`
	Status          string    `gorm:"type:varchar(16);not null;default:'DRAFT'"`
	AnswersJSON     *string   `gorm:"type:text"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Submission) TableName() string { return "submissions" }
