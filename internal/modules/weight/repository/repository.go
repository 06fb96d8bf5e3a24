package repository

import (
	"context"

	"fitfam.app/familyfit/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightRepository interface {
	Upsert(ctx context.Context, entry *model.WeightEntry) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.WeightEntry, error)
	FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.WeightEntry, error)
	FindAll(ctx context.Context) ([]model.WeightEntry, error)
}

type weightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) WeightRepository {
	return &weightRepository{db: db}
}

func (r *weightRepository) Upsert(ctx context.Context, entry *model.WeightEntry) error {
	// Keyed by (user_id, date): logging twice for the same day replaces
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"weight_lbs",
			"updated_at",
		}),
	}).Create(entry).Error
}

func (r *weightRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.WeightEntry, error) {
	var entries []model.WeightEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *weightRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.WeightEntry, error) {
	var entry model.WeightEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *weightRepository) FindAll(ctx context.Context) ([]model.WeightEntry, error) {
	var entries []model.WeightEntry
	if err := r.db.WithContext(ctx).
		Order("user_id").
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
