package service

import (
	"context"
	"testing"

	"fitfam.app/familyfit/internal/model"
	leaderboardRepo "fitfam.app/familyfit/internal/modules/leaderboard/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaderboardRepo struct {
	activities []leaderboardRepo.ActivityTotals
	checklists []leaderboardRepo.ChecklistTotals
}

func (f *fakeLeaderboardRepo) AggregateActivities(ctx context.Context) ([]leaderboardRepo.ActivityTotals, error) {
	return f.activities, nil
}

func (f *fakeLeaderboardRepo) AggregateCompletedChecklists(ctx context.Context) ([]leaderboardRepo.ChecklistTotals, error) {
	return f.checklists, nil
}

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	return f.users, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error { return nil }

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func TestComputeLeaderboardMergesSources(t *testing.T) {
	alice := &model.User{ID: uuid.New(), Username: "alice", Name: "Alice"}
	bob := &model.User{ID: uuid.New(), Username: "bob", Name: "Bob"}

	repo := &fakeLeaderboardRepo{
		activities: []leaderboardRepo.ActivityTotals{
			{UserID: alice.ID, TotalActivities: 3, TotalDuration: 90, ActiveDays: 2, ActivityPoints: 30},
			{UserID: bob.ID, TotalActivities: 1, TotalDuration: 45, ActiveDays: 1, ActivityPoints: 10},
		},
		checklists: []leaderboardRepo.ChecklistTotals{
			{UserID: bob.ID, ChecklistPoints: 45},
		},
	}

	svc := NewLeaderboardService(repo, &fakeUserRepo{users: []*model.User{alice, bob}}, nil)

	rows, err := svc.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Bob: 10 activity + 45 checklist beats Alice's 30
	assert.Equal(t, "bob", rows[0].Username)
	assert.Equal(t, 1, rows[0].Position)
	assert.Equal(t, int64(55), rows[0].TotalPoints)
	assert.Equal(t, int64(45), rows[0].ChecklistPoints)

	assert.Equal(t, "alice", rows[1].Username)
	assert.Equal(t, 2, rows[1].Position)
	assert.Equal(t, int64(30), rows[1].TotalPoints)
	assert.Equal(t, int64(2), rows[1].ActiveDays)
	assert.Equal(t, int64(90), rows[1].TotalDuration)
}

func TestComputeLeaderboardIncludesIdleUsers(t *testing.T) {
	active := &model.User{ID: uuid.New(), Username: "active", Name: "Active"}
	idle := &model.User{ID: uuid.New(), Username: "idle", Name: "Idle"}

	repo := &fakeLeaderboardRepo{
		activities: []leaderboardRepo.ActivityTotals{
			{UserID: active.ID, TotalActivities: 1, ActivityPoints: 10},
		},
	}

	svc := NewLeaderboardService(repo, &fakeUserRepo{users: []*model.User{active, idle}}, nil)

	rows, err := svc.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "idle", rows[1].Username)
	assert.Equal(t, int64(0), rows[1].TotalPoints)
	assert.Equal(t, int64(0), rows[1].TotalActivities)
	assert.Equal(t, 2, rows[1].Position)
}

func TestComputeLeaderboardTieBreaksOnActivityCount(t *testing.T) {
	few := &model.User{ID: uuid.New(), Username: "few", Name: "Few"}
	many := &model.User{ID: uuid.New(), Username: "many", Name: "Many"}

	// Same total points, "many" has more logged activities
	repo := &fakeLeaderboardRepo{
		activities: []leaderboardRepo.ActivityTotals{
			{UserID: few.ID, TotalActivities: 1, ActivityPoints: 10},
			{UserID: many.ID, TotalActivities: 3, ActivityPoints: 30},
		},
		checklists: []leaderboardRepo.ChecklistTotals{
			{UserID: few.ID, ChecklistPoints: 20},
		},
	}

	svc := NewLeaderboardService(repo, &fakeUserRepo{users: []*model.User{few, many}}, nil)

	rows, err := svc.ComputeLeaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(30), rows[0].TotalPoints)
	assert.Equal(t, int64(30), rows[1].TotalPoints)
	assert.Equal(t, "many", rows[0].Username)
	assert.Equal(t, "few", rows[1].Username)
}

func TestBroadcastRefreshAsyncWithoutRedisIsNoOp(t *testing.T) {
	svc := NewLeaderboardService(&fakeLeaderboardRepo{}, &fakeUserRepo{}, nil)

	// Must not panic or spawn work when no redis is configured
	svc.BroadcastRefreshAsync()
}
