package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event is the audit trail. Rows are written alongside every primary write
// and never read back by the app.
type Event struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID string         `gorm:"column:session_id;index" json:"sessionId"`
	Action    string         `gorm:"column:action;not null" json:"action"`
	Meta      datatypes.JSON `gorm:"column:meta" json:"meta"`
	CreatedAt time.Time      `gorm:"not null" json:"createdAt"`
}

func (Event) TableName() string { return "events" }
