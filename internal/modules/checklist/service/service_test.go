package service

import (
	"context"
	"testing"

	"fitfam.app/familyfit/internal/model"
	"fitfam.app/familyfit/internal/modules/checklist/dto"
	leaderboardDto "fitfam.app/familyfit/internal/modules/leaderboard/dto"
	"fitfam.app/familyfit/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeChecklistRepo struct {
	byKey map[string]*model.DailyChecklist
}

func newFakeChecklistRepo() *fakeChecklistRepo {
	return &fakeChecklistRepo{byKey: make(map[string]*model.DailyChecklist)}
}

func (f *fakeChecklistRepo) key(userID uuid.UUID, date string) string {
	return userID.String() + "|" + date
}

func (f *fakeChecklistRepo) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date string) (*model.DailyChecklist, error) {
	if c, ok := f.byKey[f.key(userID, date)]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeChecklistRepo) Upsert(ctx context.Context, checklist *model.DailyChecklist) error {
	if checklist.ID == uuid.Nil {
		checklist.ID = uuid.New()
	}
	copied := *checklist
	f.byKey[f.key(checklist.UserID, checklist.Date)] = &copied
	return nil
}

type fakeLeaderboardSvc struct {
	broadcasts int
}

func (f *fakeLeaderboardSvc) ComputeLeaderboard(ctx context.Context) ([]leaderboardDto.LeaderboardRow, error) {
	return nil, nil
}

func (f *fakeLeaderboardSvc) BroadcastRefreshAsync() {
	f.broadcasts++
}

func TestPointsForChecklist(t *testing.T) {
	tests := []struct {
		name  string
		flags dto.ChecklistFlags
		want  int
	}{
		{"nothing checked", dto.ChecklistFlags{}, 0},
		{"workout only", dto.ChecklistFlags{Workout30Min: true}, 10},
		{"workout and water", dto.ChecklistFlags{Workout30Min: true, Water82Oz: true}, 15},
		{"extra without base workout", dto.ChecklistFlags{WorkoutExtra15Min: true}, 5},
		{
			"everything checked",
			dto.ChecklistFlags{
				Workout30Min:       true,
				WorkoutExtra15Min:  true,
				FamilyGroupWorkout: true,
				Water82Oz:          true,
				Sleep6Hours:        true,
				PersonalGoalHit:    true,
			},
			45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointsForChecklist(tt.flags))
		})
	}
}

func TestGetChecklistDefaultsWhenMissing(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo, nil)
	userID := uuid.New()

	checklist, err := svc.GetChecklist(context.Background(), userID, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, userID, checklist.UserID)
	assert.Equal(t, "2025-06-01", checklist.Date)
	assert.False(t, checklist.IsCompleted)
	assert.Equal(t, 0, checklist.TotalPoints)
}

func TestSaveChecklistKeepsTotalAtZero(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo, nil)
	userID := uuid.New()

	saved, err := svc.SaveChecklist(context.Background(), userID, dto.SaveChecklistInput{
		Date: "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{
			Workout30Min: true,
			Water82Oz:    true,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, saved.TotalPoints)
	assert.False(t, saved.IsCompleted)

	// Toggling again keeps the same row and the total pinned
	saved2, err := svc.SaveChecklist(context.Background(), userID, dto.SaveChecklistInput{
		Date:           "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{Sleep6Hours: true},
	})
	require.NoError(t, err)
	assert.Equal(t, saved.ID, saved2.ID)
	assert.Equal(t, 0, saved2.TotalPoints)
	assert.False(t, saved2.Workout30Min)
	assert.True(t, saved2.Sleep6Hours)
}

func TestCompleteChecklistFreezesTotal(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo, nil)
	userID := uuid.New()

	completed, err := svc.CompleteChecklist(context.Background(), userID, dto.CompleteChecklistInput{
		Date: "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{
			Workout30Min:    true,
			Water82Oz:       true,
			PersonalGoalHit: true,
		},
	})
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	assert.Equal(t, 25, completed.TotalPoints)

	stored, err := svc.GetChecklist(context.Background(), userID, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.TotalPoints)
}

func TestCompleteChecklistTwiceIsConflict(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo, nil)
	userID := uuid.New()

	input := dto.CompleteChecklistInput{
		Date:           "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{Workout30Min: true},
	}

	_, err := svc.CompleteChecklist(context.Background(), userID, input)
	require.NoError(t, err)

	_, err = svc.CompleteChecklist(context.Background(), userID, input)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	// The frozen total must survive the rejected attempt
	stored, err := svc.GetChecklist(context.Background(), userID, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, 10, stored.TotalPoints)
}

func TestSaveChecklistAfterCompletionIsConflict(t *testing.T) {
	repo := newFakeChecklistRepo()
	svc := NewChecklistService(repo, nil)
	userID := uuid.New()

	_, err := svc.CompleteChecklist(context.Background(), userID, dto.CompleteChecklistInput{
		Date:           "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{Workout30Min: true},
	})
	require.NoError(t, err)

	_, err = svc.SaveChecklist(context.Background(), userID, dto.SaveChecklistInput{
		Date:           "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{},
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	// Another day stays open
	_, err = svc.SaveChecklist(context.Background(), userID, dto.SaveChecklistInput{
		Date:           "2025-06-02",
		ChecklistFlags: dto.ChecklistFlags{Water82Oz: true},
	})
	assert.NoError(t, err)
}

func TestCompleteChecklistBroadcastsRefresh(t *testing.T) {
	repo := newFakeChecklistRepo()
	board := &fakeLeaderboardSvc{}
	svc := NewChecklistService(repo, board)
	userID := uuid.New()

	_, err := svc.SaveChecklist(context.Background(), userID, dto.SaveChecklistInput{
		Date:           "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{Workout30Min: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, board.broadcasts, "saving an open day should not broadcast")

	_, err = svc.CompleteChecklist(context.Background(), userID, dto.CompleteChecklistInput{
		Date:           "2025-06-01",
		ChecklistFlags: dto.ChecklistFlags{Workout30Min: true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, board.broadcasts)
}
