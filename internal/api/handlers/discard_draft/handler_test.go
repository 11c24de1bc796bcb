package discard_draft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-DetailingService/internal/api/middleware"
	"github.com/m04kA/SMC-DetailingService/internal/draft"
	"github.com/m04kA/SMC-DetailingService/internal/service/sessions"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err       error
	sessionID string
	draftID   string
}

func (f *fakeService) DiscardDraft(_ context.Context, sessionID, draftID string) error {
	f.sessionID = sessionID
	f.draftID = draftID
	return f.err
}

func serve(svc DraftService, withSession bool) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/drafts/{draftId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

	req := httptest.NewRequest(http.MethodDelete, "/drafts/d-1", nil)
	if withSession {
		req = req.WithContext(middleware.WithSessionID(req.Context(), "session-1"))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Discards(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, true)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "session-1", svc.sessionID)
	assert.Equal(t, "d-1", svc.draftID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: sessions.ErrDraftNotFound, wantStatus: http.StatusNotFound},
		{name: "other session", err: sessions.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "submitting", err: draft.ErrSubmissionInProgress, wantStatus: http.StatusConflict},
		{name: "storage", err: sessions.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, serve(&fakeService{err: tt.err}, true).Code)
		})
	}
}

func TestHandle_MissingSession(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, false).Code)
}
