package repository

import (
	"context"

	"fitfam.app/familyfit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityTotals is the per-user aggregate over the activity ledger.
type ActivityTotals struct {
	UserID          uuid.UUID
	TotalActivities int64
	TotalDuration   int64
	ActiveDays      int64
	ActivityPoints  int64
}

// ChecklistTotals is the per-user sum of frozen checklist points. Only
// completed days count; in-progress rows carry 0 and are excluded anyway.
type ChecklistTotals struct {
	UserID          uuid.UUID
	ChecklistPoints int64
}

type LeaderboardRepository interface {
	AggregateActivities(ctx context.Context) ([]ActivityTotals, error)
	AggregateCompletedChecklists(ctx context.Context) ([]ChecklistTotals, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) AggregateActivities(ctx context.Context) ([]ActivityTotals, error) {
	var totals []ActivityTotals

	err := r.db.WithContext(ctx).Model(&model.Activity{}).
		Select("user_id, COUNT(id) as total_activities, COALESCE(SUM(duration), 0) as total_duration, COUNT(DISTINCT date) as active_days, COALESCE(SUM(points), 0) as activity_points").
		Group("user_id").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}

func (r *leaderboardRepository) AggregateCompletedChecklists(ctx context.Context) ([]ChecklistTotals, error) {
	var totals []ChecklistTotals

	err := r.db.WithContext(ctx).Model(&model.DailyChecklist{}).
		Select("user_id, COALESCE(SUM(total_points), 0) as checklist_points").
		Where("is_completed = ?", true).
		Group("user_id").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	return totals, nil
}
