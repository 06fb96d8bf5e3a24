package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Activity is one logged workout. The ledger is append-only: entries are never
// updated or deleted, and a user may log any number of entries per day.
type Activity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	ActivityType string    `gorm:"size:50;not null" json:"activity_type"`
	Duration     int       `gorm:"default:0" json:"duration"` // minutes
	Notes        string    `gorm:"type:text" json:"notes"`
	Date         string    `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Points       int       `gorm:"not null" json:"points"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
