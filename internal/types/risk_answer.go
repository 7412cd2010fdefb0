package types

import (
	"time"

	"github.com/google/uuid"
)

// RiskAnswer stores one answered question from the legacy risk questionnaire.
type RiskAnswer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question  string    `gorm:"column:question;not null" json:"question"`
	Answer    int       `gorm:"column:answer;not null" json:"answer"`
	UserID    string    `gorm:"column:user_id;index" json:"userId"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (RiskAnswer) TableName() string { return "risk_answers" }
