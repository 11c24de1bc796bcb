package get_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	view *models.DraftView
	err  error
}

func (f *fakeService) GetDraft(_ context.Context, _, _ string) (*models.DraftView, error) {
	return f.view, f.err
}

func serve(svc DraftService) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/drafts/{draftId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/drafts/d-1", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "session-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ReturnsDraftWithPrice(t *testing.T) {
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	view := &models.DraftView{
		Snapshot: domain.DraftSnapshot{
			ID:    "d-1",
			State: domain.StateSlotChosen,
			Draft: domain.BookingDraft{
				VehicleClass: domain.VehicleSedan,
				ServiceID:    "full-interior",
				AddOnIDs:     []string{"engine-bay"},
				Slot:         &domain.TimeSlot{Date: date, Label: "09:00 AM"},
			},
		},
		Price: &domain.PriceBreakdown{
			BasePrice:   18000,
			AddOnsTotal: 12500,
			Total:       30500,
			Lines: []domain.LineItem{
				{ID: "full-interior", Title: "Full Interior Detail", Amount: 18000},
				{ID: "engine-bay", Title: "Engine Bay Cleaning", Amount: 12500},
			},
		},
	}

	rec := serve(&fakeService{view: view})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.DraftResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "slot_chosen", resp.State)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "2026-10-21", resp.Slot.Date)
	assert.Equal(t, "09:00 AM", resp.Slot.Label)
	require.NotNil(t, resp.Price)
	assert.Equal(t, int64(30500), resp.Price.Total)
	assert.Equal(t, "$305", resp.Price.TotalFormatted)
	assert.Equal(t, "$125", resp.Price.Lines[1].AmountFormatted)
}

func TestHandle_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: sessions.ErrDraftNotFound}).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: sessions.ErrAccessDenied}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: sessions.ErrInternal}).Code)
}
