package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"fitfam.app/familyfit/internal/model"
	"fitfam.app/familyfit/internal/modules/activity/dto"
	"fitfam.app/familyfit/internal/modules/activity/repository"
	leaderboard "fitfam.app/familyfit/internal/modules/leaderboard/service"
	search "fitfam.app/familyfit/internal/modules/search/service"
	"fitfam.app/familyfit/pkg/apperror"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	ActionLogActivity = "log_activity"

	// Every logged activity is worth the same credit, regardless of type or
	// duration, so nobody games the board by padding minutes.
	PointsPerActivity = 10
)

// PointsForActivity returns the point value for a logged workout.
func PointsForActivity(activityType string, duration int) int {
	return PointsPerActivity
}

type ActivityService interface {
	LogActivity(ctx context.Context, userID uuid.UUID, input dto.CreateActivityInput) (*model.Activity, error)
	ListActivities(ctx context.Context, userID uuid.UUID, date string) ([]model.Activity, error)
	SearchActivities(ctx context.Context, userID uuid.UUID, query string, limit int) ([]search.ActivityDoc, error)
}

type activityService struct {
	repo           repository.ActivityRepository
	redisClient    *redis.Client
	searchService  search.SearchService
	leaderboardSvc leaderboard.LeaderboardService
	rateLimit      time.Duration
}

func NewActivityService(
	repo repository.ActivityRepository,
	redisClient *redis.Client,
	searchService search.SearchService,
	leaderboardSvc leaderboard.LeaderboardService,
	rateLimit time.Duration,
) ActivityService {
	return &activityService{
		repo:           repo,
		redisClient:    redisClient,
		searchService:  searchService,
		leaderboardSvc: leaderboardSvc,
		rateLimit:      rateLimit,
	}
}

func (s *activityService) LogActivity(ctx context.Context, userID uuid.UUID, input dto.CreateActivityInput) (*model.Activity, error) {
	allowed, err := checkAndSetRateLimit(ctx, s.redisClient, userID, ActionLogActivity, s.rateLimit)
	if err != nil {
		// Redis being down should not block workout logging
		log.Printf("Rate limit check failed for user %s: %v", userID, err)
	} else if !allowed {
		return nil, fmt.Errorf("please wait before logging another activity: %w", apperror.ErrRateLimitExceeded)
	}

	activity := &model.Activity{
		UserID:       userID,
		ActivityType: input.ActivityType,
		Duration:     input.Duration,
		Notes:        input.Notes,
		Date:         input.Date,
		Points:       PointsForActivity(input.ActivityType, input.Duration),
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	if s.searchService != nil {
		if err := s.searchService.IndexActivity(activity); err != nil {
			log.Printf("Failed to index activity %s: %v", activity.ID, err)
		}
	}

	if s.leaderboardSvc != nil {
		s.leaderboardSvc.BroadcastRefreshAsync()
	}

	return activity, nil
}

func (s *activityService) ListActivities(ctx context.Context, userID uuid.UUID, date string) ([]model.Activity, error) {
	return s.repo.FindByUser(ctx, userID, date)
}

func (s *activityService) SearchActivities(ctx context.Context, userID uuid.UUID, query string, limit int) ([]search.ActivityDoc, error) {
	if s.searchService == nil {
		return []search.ActivityDoc{}, nil
	}
	if limit < 1 {
		limit = 20
	}
	return s.searchService.SearchActivities(userID, query, limit)
}
