package repository

import (
	"context"

	"fitfam.app/familyfit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *model.Activity) error
	FindByUser(ctx context.Context, userID uuid.UUID, date string) ([]model.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) FindByUser(ctx context.Context, userID uuid.UUID, date string) ([]model.Activity, error) {
	var activities []model.Activity

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != "" {
		query = query.Where("date = ?", date)
	}

	if err := query.
		Order("date DESC").
		Order("created_at DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}

	return activities, nil
}
