package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightEntry is keyed by (user, date); logging again for the same day replaces
// the previous value.
type WeightEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_weight_user_date;not null" json:"user_id"`
	Date      string    `gorm:"size:10;uniqueIndex:idx_weight_user_date;not null" json:"date"`
	WeightLbs float64   `gorm:"not null" json:"weight_lbs"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (w *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
