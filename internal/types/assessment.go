package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentType string

const (
	AssessmentAnxiety    AssessmentType = "anxiety"
	AssessmentDepression AssessmentType = "depression"
	AssessmentBurnout    AssessmentType = "burnout"
)

func (t AssessmentType) Valid() bool {
	switch t {
	case AssessmentAnxiety, AssessmentDepression, AssessmentBurnout:
		return true
	}
	return false
}

type Severity string

const (
	SeverityNeutral  Severity = "neutral"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// SeverityFromScore buckets a 0-100 score. Boundary values belong to the
// lower band: 24 is still neutral, 25 is mild.
func SeverityFromScore(score int) Severity {
	switch {
	case score <= 24:
		return SeverityNeutral
	case score <= 49:
		return SeverityMild
	case score <= 74:
		return SeverityModerate
	default:
		return SeveritySevere
	}
}

type Assessment struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string         `gorm:"column:session_id;not null;index" json:"sessionId"`
	Type      AssessmentType `gorm:"column:type;not null" json:"type"`
	Score     int            `gorm:"column:score;not null" json:"score"`
	Severity  Severity       `gorm:"column:severity;not null" json:"severity"`
	Answers   datatypes.JSON `gorm:"column:answers" json:"answers"`
	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
}

func (Assessment) TableName() string { return "assessments" }
