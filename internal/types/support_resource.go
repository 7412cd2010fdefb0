package types

import (
	"time"

	"github.com/google/uuid"
)

type ResourceCategory string

const (
	CategoryTherapy   ResourceCategory = "therapy"
	CategoryGroup     ResourceCategory = "group"
	CategoryWellbeing ResourceCategory = "wellbeing"
	CategoryEducation ResourceCategory = "education"
)

func (c ResourceCategory) Valid() bool {
	switch c {
	case CategoryTherapy, CategoryGroup, CategoryWellbeing, CategoryEducation:
		return true
	}
	return false
}

type SupportResource struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Category  ResourceCategory `gorm:"column:category;not null;index" json:"category"`
	Title     string           `gorm:"column:title;not null" json:"title"`
	URL       string           `gorm:"column:url;not null" json:"url"`
	CreatedAt time.Time        `gorm:"not null" json:"createdAt"`
}

func (SupportResource) TableName() string { return "support_resources" }
