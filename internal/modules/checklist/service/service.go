package service

import (
	"context"
	"errors"
	"fmt"

	"fitfam.app/familyfit/internal/model"
	"fitfam.app/familyfit/internal/modules/checklist/dto"
	"fitfam.app/familyfit/internal/modules/checklist/repository"
	leaderboard "fitfam.app/familyfit/internal/modules/leaderboard/service"
	"fitfam.app/familyfit/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Point weights per checklist item. The total is only computed and stored when
// a day is completed; until then the stored total stays 0.
const (
	PointsWorkout30Min       = 10
	PointsWorkoutExtra15Min  = 5
	PointsFamilyGroupWorkout = 10
	PointsWater82Oz          = 5
	PointsSleep6Hours        = 5
	PointsPersonalGoalHit    = 10
)

// PointsForChecklist sums the weights of every checked item.
func PointsForChecklist(flags dto.ChecklistFlags) int {
	total := 0
	if flags.Workout30Min {
		total += PointsWorkout30Min
	}
	if flags.WorkoutExtra15Min {
		total += PointsWorkoutExtra15Min
	}
	if flags.FamilyGroupWorkout {
		total += PointsFamilyGroupWorkout
	}
	if flags.Water82Oz {
		total += PointsWater82Oz
	}
	if flags.Sleep6Hours {
		total += PointsSleep6Hours
	}
	if flags.PersonalGoalHit {
		total += PointsPersonalGoalHit
	}
	return total
}

type ChecklistService interface {
	GetChecklist(ctx context.Context, userID uuid.UUID, date string) (*model.DailyChecklist, error)
	SaveChecklist(ctx context.Context, userID uuid.UUID, input dto.SaveChecklistInput) (*model.DailyChecklist, error)
	CompleteChecklist(ctx context.Context, userID uuid.UUID, input dto.CompleteChecklistInput) (*model.DailyChecklist, error)
}

type checklistService struct {
	repo           repository.ChecklistRepository
	leaderboardSvc leaderboard.LeaderboardService
}

func NewChecklistService(repo repository.ChecklistRepository, leaderboardSvc leaderboard.LeaderboardService) ChecklistService {
	return &checklistService{
		repo:           repo,
		leaderboardSvc: leaderboardSvc,
	}
}

// GetChecklist returns the record for the date, or a zero-flag default when no
// record exists yet. A missing day is not an error.
func (s *checklistService) GetChecklist(ctx context.Context, userID uuid.UUID, date string) (*model.DailyChecklist, error) {
	checklist, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.DailyChecklist{
				UserID: userID,
				Date:   date,
			}, nil
		}
		return nil, err
	}

	return checklist, nil
}

// SaveChecklist upserts the day's flags while the day is still open. The stored
// total stays pinned at 0; points only exist once the day is completed.
func (s *checklistService) SaveChecklist(ctx context.Context, userID uuid.UUID, input dto.SaveChecklistInput) (*model.DailyChecklist, error) {
	existing, err := s.repo.FindByUserAndDate(ctx, userID, input.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil && existing.IsCompleted {
		return nil, fmt.Errorf("checklist for %s is already completed: %w", input.Date, apperror.ErrConflict)
	}

	checklist := &model.DailyChecklist{
		UserID:             userID,
		Date:               input.Date,
		Workout30Min:       input.Workout30Min,
		WorkoutExtra15Min:  input.WorkoutExtra15Min,
		FamilyGroupWorkout: input.FamilyGroupWorkout,
		Water82Oz:          input.Water82Oz,
		Sleep6Hours:        input.Sleep6Hours,
		PersonalGoalHit:    input.PersonalGoalHit,
		TotalPoints:        0,
		IsCompleted:        false,
	}
	if existing != nil {
		checklist.ID = existing.ID
	}

	if err := s.repo.Upsert(ctx, checklist); err != nil {
		return nil, err
	}

	return checklist, nil
}

// CompleteChecklist freezes the day: the total is computed from the submitted
// flags and the record becomes immutable. Completing twice is a conflict, so a
// frozen total can never be silently recomputed.
func (s *checklistService) CompleteChecklist(ctx context.Context, userID uuid.UUID, input dto.CompleteChecklistInput) (*model.DailyChecklist, error) {
	existing, err := s.repo.FindByUserAndDate(ctx, userID, input.Date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if existing != nil && existing.IsCompleted {
		return nil, fmt.Errorf("checklist for %s is already completed: %w", input.Date, apperror.ErrConflict)
	}

	checklist := &model.DailyChecklist{
		UserID:             userID,
		Date:               input.Date,
		Workout30Min:       input.Workout30Min,
		WorkoutExtra15Min:  input.WorkoutExtra15Min,
		FamilyGroupWorkout: input.FamilyGroupWorkout,
		Water82Oz:          input.Water82Oz,
		Sleep6Hours:        input.Sleep6Hours,
		PersonalGoalHit:    input.PersonalGoalHit,
		TotalPoints:        PointsForChecklist(input.ChecklistFlags),
		IsCompleted:        true,
	}
	if existing != nil {
		checklist.ID = existing.ID
	}

	if err := s.repo.Upsert(ctx, checklist); err != nil {
		return nil, err
	}

	if s.leaderboardSvc != nil {
		s.leaderboardSvc.BroadcastRefreshAsync()
	}

	return checklist, nil
}
