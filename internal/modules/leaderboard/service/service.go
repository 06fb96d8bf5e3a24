package service

import (
	"context"
	"encoding/json"
	"log"
	"sort"

	leaderboardDto "fitfam.app/familyfit/internal/modules/leaderboard/dto"
	leaderboardRepo "fitfam.app/familyfit/internal/modules/leaderboard/repository"
	userRepo "fitfam.app/familyfit/internal/modules/user/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// UpdatesChannel is the redis pub/sub channel carrying fresh leaderboard
// snapshots to connected websocket clients.
const UpdatesChannel = "leaderboard_updates"

type LeaderboardService interface {
	// ComputeLeaderboard recomputes the board from source rows. No caching:
	// the result always reflects the latest committed writes.
	ComputeLeaderboard(ctx context.Context) ([]leaderboardDto.LeaderboardRow, error)
	// BroadcastRefreshAsync recomputes the board in the background and
	// publishes it for live subscribers. Safe to call with no redis configured.
	BroadcastRefreshAsync()
}

type leaderboardService struct {
	repo        leaderboardRepo.LeaderboardRepository
	userRepo    userRepo.UserRepository
	redisClient *redis.Client
}

func NewLeaderboardService(repo leaderboardRepo.LeaderboardRepository, userRepo userRepo.UserRepository, redisClient *redis.Client) LeaderboardService {
	return &leaderboardService{
		repo:        repo,
		userRepo:    userRepo,
		redisClient: redisClient,
	}
}

func (s *leaderboardService) ComputeLeaderboard(ctx context.Context) ([]leaderboardDto.LeaderboardRow, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	activityTotals, err := s.repo.AggregateActivities(ctx)
	if err != nil {
		return nil, err
	}

	checklistTotals, err := s.repo.AggregateCompletedChecklists(ctx)
	if err != nil {
		return nil, err
	}

	activityMap := make(map[uuid.UUID]leaderboardRepo.ActivityTotals, len(activityTotals))
	for _, at := range activityTotals {
		activityMap[at.UserID] = at
	}

	checklistMap := make(map[uuid.UUID]int64, len(checklistTotals))
	for _, ct := range checklistTotals {
		checklistMap[ct.UserID] = ct.ChecklistPoints
	}

	// Every registered user gets a row, even with nothing logged yet
	rows := make([]leaderboardDto.LeaderboardRow, 0, len(users))
	for _, u := range users {
		row := leaderboardDto.LeaderboardRow{
			Name:     u.Name,
			Username: u.Username,
		}

		if at, ok := activityMap[u.ID]; ok {
			row.TotalActivities = at.TotalActivities
			row.TotalDuration = at.TotalDuration
			row.ActiveDays = at.ActiveDays
			row.ActivityPoints = at.ActivityPoints
		}

		row.ChecklistPoints = checklistMap[u.ID]
		row.TotalPoints = row.ActivityPoints + row.ChecklistPoints

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalPoints != rows[j].TotalPoints {
			return rows[i].TotalPoints > rows[j].TotalPoints
		}
		return rows[i].TotalActivities > rows[j].TotalActivities
	})

	for i := range rows {
		rows[i].Position = i + 1
	}

	return rows, nil
}

func (s *leaderboardService) BroadcastRefreshAsync() {
	if s.redisClient == nil {
		return
	}

	// Execute in background
	go func() {
		ctx := context.Background()

		rows, err := s.ComputeLeaderboard(ctx)
		if err != nil {
			log.Printf("Failed to compute leaderboard for broadcast: %v", err)
			return
		}

		payload, err := json.Marshal(rows)
		if err != nil {
			log.Printf("Failed to marshal leaderboard payload: %v", err)
			return
		}

		if err := s.redisClient.Publish(ctx, UpdatesChannel, payload).Err(); err != nil {
			log.Printf("Failed to publish leaderboard update: %v", err)
		}
	}()
}
