package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitfam.app/familyfit/internal/model"
	checklistDto "fitfam.app/familyfit/internal/modules/checklist/dto"
	checklistService "fitfam.app/familyfit/internal/modules/checklist/service"
	"fitfam.app/familyfit/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecklistService struct {
	completed map[string]bool
}

func newFakeChecklistService() *fakeChecklistService {
	return &fakeChecklistService{completed: make(map[string]bool)}
}

func (f *fakeChecklistService) GetChecklist(ctx context.Context, userID uuid.UUID, date string) (*model.DailyChecklist, error) {
	return &model.DailyChecklist{UserID: userID, Date: date, IsCompleted: f.completed[date]}, nil
}

func (f *fakeChecklistService) SaveChecklist(ctx context.Context, userID uuid.UUID, input checklistDto.SaveChecklistInput) (*model.DailyChecklist, error) {
	if f.completed[input.Date] {
		return nil, fmt.Errorf("checklist for %s is already completed: %w", input.Date, apperror.ErrConflict)
	}
	return &model.DailyChecklist{UserID: userID, Date: input.Date}, nil
}

func (f *fakeChecklistService) CompleteChecklist(ctx context.Context, userID uuid.UUID, input checklistDto.CompleteChecklistInput) (*model.DailyChecklist, error) {
	if f.completed[input.Date] {
		return nil, fmt.Errorf("checklist for %s is already completed: %w", input.Date, apperror.ErrConflict)
	}
	f.completed[input.Date] = true
	return &model.DailyChecklist{
		UserID:      userID,
		Date:        input.Date,
		TotalPoints: checklistService.PointsForChecklist(input.ChecklistFlags),
		IsCompleted: true,
	}, nil
}

func setupChecklistRouter(svc checklistService.ChecklistService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID.String())
	})

	handler := NewChecklistHandler(svc)
	router.GET("/api/checklist", handler.GetChecklist)
	router.PUT("/api/checklist", handler.SaveChecklist)
	router.POST("/api/checklist/complete", handler.CompleteChecklist)
	return router
}

func TestGetChecklistRequiresDate(t *testing.T) {
	router := setupChecklistRouter(newFakeChecklistService(), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checklist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetChecklist(t *testing.T) {
	router := setupChecklistRouter(newFakeChecklistService(), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/checklist?date=2025-06-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"2025-06-01"`)
}

func TestSaveChecklistRejectsBadDate(t *testing.T) {
	router := setupChecklistRouter(newFakeChecklistService(), uuid.New())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/checklist",
		strings.NewReader(`{"date":"06/01/2025","workout_30min":true}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompleteChecklistTwiceReturns409(t *testing.T) {
	router := setupChecklistRouter(newFakeChecklistService(), uuid.New())

	body := `{"date":"2025-06-01","workout_30min":true,"water_82oz":true}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checklist/complete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_points":15`)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/checklist/complete", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}
