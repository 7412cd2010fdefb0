package types

import (
	"time"

	"github.com/google/uuid"
)

type Mood string

const (
	MoodVeryBad  Mood = "very_bad"
	MoodBad      Mood = "bad"
	MoodNeutral  Mood = "neutral"
	MoodGood     Mood = "good"
	MoodVeryGood Mood = "very_good"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodVeryBad, MoodBad, MoodNeutral, MoodGood, MoodVeryGood:
		return true
	}
	return false
}

type MoodCheckin struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string    `gorm:"column:session_id;not null;index" json:"sessionId"`
	Mood      Mood      `gorm:"column:mood;not null" json:"mood"`
	Notes     string    `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (MoodCheckin) TableName() string { return "mood_checkins" }
