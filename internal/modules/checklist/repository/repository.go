package repository

import (
	"context"

	"fitfam.app/familyfit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChecklistRepository interface {
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.DailyChecklist, error)
	Upsert(ctx context.Context, checklist *model.DailyChecklist) error
}

type checklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) ChecklistRepository {
	return &checklistRepository{db: db}
}

func (r *checklistRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.DailyChecklist, error) {
	var checklist model.DailyChecklist
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&checklist).Error; err != nil {
		return nil, err
	}

	return &checklist, nil
}

func (r *checklistRepository) Upsert(ctx context.Context, checklist *model.DailyChecklist) error {
	// Using GORM OnConflict for Upsert keyed by (user_id, date)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"workout_30min",
			"workout_extra_15min",
			"family_group_workout",
			"water_82oz",
			"sleep_6hours",
			"personal_goal_hit",
			"total_points",
			"is_completed",
			"updated_at",
		}),
	}).Create(checklist).Error
}
