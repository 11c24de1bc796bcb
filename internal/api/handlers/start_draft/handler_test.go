package start_draft

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
}

func (f *fakeService) StartDraft(_ context.Context, sessionID string) (*models.DraftView, error) {
	if f.err != nil {
		return nil, f.err
	}
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)
	return &models.DraftView{Snapshot: domain.DraftSnapshot{
		ID:        "d-1",
		SessionID: sessionID,
		State:     domain.StateIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}}, nil
}

func TestHandle_CreatesDraft(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drafts", nil)

	// Session middleware выдает идентификатор новой сессии
	middleware.Session(http.HandlerFunc(NewHandler(&fakeService{}, nopLogger{}).Handle)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.SessionHeader))

	var resp models.DraftResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "d-1", resp.ID)
	assert.Equal(t, "idle", resp.State)
	assert.Nil(t, resp.Price)
	assert.Nil(t, resp.Slot)
	assert.Equal(t, "2026-10-19T15:00:00Z", resp.CreatedAt)
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/drafts", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/drafts", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "session-1"))
	NewHandler(&fakeService{err: errors.New("boom")}, nopLogger{}).Handle(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
