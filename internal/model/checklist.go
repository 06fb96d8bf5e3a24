package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyChecklist holds one row per (user, date). While IsCompleted is false the
// stored TotalPoints stays 0; completing the day computes and freezes it.
type DailyChecklist struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_checklist_user_date;not null" json:"user_id"`
	Date               string    `gorm:"size:10;uniqueIndex:idx_checklist_user_date;not null" json:"date"`
	Workout30Min       bool      `gorm:"column:workout_30min;default:false" json:"workout_30min"`
	WorkoutExtra15Min  bool      `gorm:"column:workout_extra_15min;default:false" json:"workout_extra_15min"`
	FamilyGroupWorkout bool      `gorm:"column:family_group_workout;default:false" json:"family_group_workout"`
	Water82Oz          bool      `gorm:"column:water_82oz;default:false" json:"water_82oz"`
	Sleep6Hours        bool      `gorm:"column:sleep_6hours;default:false" json:"sleep_6hours"`
	PersonalGoalHit    bool      `gorm:"column:personal_goal_hit;default:false" json:"personal_goal_hit"`
	TotalPoints        int       `gorm:"default:0" json:"total_points"`
	IsCompleted        bool      `gorm:"default:false" json:"is_completed"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *DailyChecklist) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
