package types

import (
	"time"

	"github.com/google/uuid"
)

// EmotionRecord backs the legacy /emotions routes still used by older app
// builds. Field names follow the legacy client payload, not the check-in
// schema.
type EmotionRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Emotion   string    `gorm:"column:emotion;not null" json:"emotion"`
	UserID    string    `gorm:"column:user_id;index" json:"userId"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (EmotionRecord) TableName() string { return "emotion_records" }
