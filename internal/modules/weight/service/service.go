package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"fitfam.app/familyfit/internal/model"
	"fitfam.app/familyfit/internal/modules/weight/dto"
	"fitfam.app/familyfit/internal/modules/weight/repository"
	userRepo "fitfam.app/familyfit/internal/modules/user/repository"
	"fitfam.app/familyfit/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WeightService interface {
	LogWeight(ctx context.Context, userID uuid.UUID, input dto.LogWeightInput) (*model.WeightEntry, error)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]model.WeightEntry, error)
	GetForDate(ctx context.Context, userID uuid.UUID, date string) (*model.WeightEntry, error)
	GetMyProgress(ctx context.Context, userID uuid.UUID) (*dto.WeightProgress, error)
	GetAdminWeightReport(ctx context.Context, caller *model.User) ([]dto.AdminWeightRow, error)
}

type weightService struct {
	repo     repository.WeightRepository
	userRepo userRepo.UserRepository
}

func NewWeightService(repo repository.WeightRepository, userRepo userRepo.UserRepository) WeightService {
	return &weightService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *weightService) LogWeight(ctx context.Context, userID uuid.UUID, input dto.LogWeightInput) (*model.WeightEntry, error) {
	if input.WeightLbs <= 0 {
		return nil, fmt.Errorf("weight must be greater than 0: %w", apperror.ErrInvalidInput)
	}

	entry := &model.WeightEntry{
		UserID:    userID,
		Date:      input.Date,
		WeightLbs: input.WeightLbs,
	}

	if err := s.repo.Upsert(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *weightService) GetHistory(ctx context.Context, userID uuid.UUID) ([]model.WeightEntry, error) {
	return s.repo.FindByUser(ctx, userID)
}

// GetForDate returns the entry or nil when none exists; a missing day is not
// an error.
func (s *weightService) GetForDate(ctx context.Context, userID uuid.UUID, date string) (*model.WeightEntry, error) {
	entry, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return entry, nil
}

func (s *weightService) GetMyProgress(ctx context.Context, userID uuid.UUID) (*dto.WeightProgress, error) {
	entries, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no weight entries recorded: %w", apperror.ErrNotFound)
	}

	return ComputeProgress(entries)
}

// GetAdminWeightReport lists every user's weight progress ranked by percentage
// lost. The admin check is enforced here as well as in the route group, so a
// non-admin caller never receives partial data.
func (s *weightService) GetAdminWeightReport(ctx context.Context, caller *model.User) ([]dto.AdminWeightRow, error) {
	if caller == nil || !caller.IsAdmin {
		return nil, fmt.Errorf("admin access required: %w", apperror.ErrForbidden)
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uuid.UUID][]model.WeightEntry)
	for _, e := range entries {
		byUser[e.UserID] = append(byUser[e.UserID], e)
	}

	rows := make([]dto.AdminWeightRow, 0, len(users))
	for _, u := range users {
		history := byUser[u.ID]
		if len(history) == 0 {
			// Nothing to rank for this user
			continue
		}

		progress, err := ComputeProgress(history)
		if err != nil {
			return nil, err
		}

		rows = append(rows, dto.AdminWeightRow{
			Name:           u.Name,
			Username:       u.Username,
			WeightProgress: *progress,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PercentageLoss > rows[j].PercentageLoss
	})

	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, nil
}

// ComputeProgress derives loss figures from a user's full history. The
// baseline is the entry with the earliest date regardless of insertion order.
func ComputeProgress(entries []model.WeightEntry) (*dto.WeightProgress, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no weight entries recorded: %w", apperror.ErrNotFound)
	}

	sorted := make([]model.WeightEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	initial := sorted[0].WeightLbs
	current := sorted[len(sorted)-1].WeightLbs

	if initial <= 0 {
		// Guarded on write, but never divide by a zero baseline
		return nil, fmt.Errorf("initial weight must be greater than 0: %w", apperror.ErrInvalidInput)
	}

	loss := initial - current
	percentage := (loss / initial) * 100

	return &dto.WeightProgress{
		InitialWeight:  initial,
		CurrentWeight:  current,
		WeightLoss:     round2(loss),
		PercentageLoss: round2(percentage),
		Entries:        len(entries),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
