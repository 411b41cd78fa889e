package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/devconnect/devconnect-go/internal/crypto"
	"github.com/devconnect/devconnect-go/internal/middleware"
)

const testSecret = "test-secret"

// newProfileRouter wires the handler behind the auth middleware the way
// main does, with URL params resolved by chi.
func newProfileRouter(h *ProfileHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/profile/user/{user_id}", h.HandleGetProfileByUserID)
	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(testSecret))
		r.Delete("/api/profile/experience/{exp_id}", h.HandleDeleteExperience)
	})
	return r
}

func TestGetProfileByUserIDMalformedID(t *testing.T) {
	// A malformed id must be rejected before any query runs, so no service
	// or database is needed.
	router := newProfileRouter(NewProfileHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/user/not-a-number", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid user id") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestGetProfileByUserIDNegativeID(t *testing.T) {
	router := newProfileRouter(NewProfileHandler(nil))

	req := httptest.NewRequest(http.MethodGet, "/api/profile/user/-3", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestDeleteExperienceRequiresToken(t *testing.T) {
	router := newProfileRouter(NewProfileHandler(nil))

	req := httptest.NewRequest(http.MethodDelete, "/api/profile/experience/1", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestDeleteExperienceMalformedID(t *testing.T) {
	router := newProfileRouter(NewProfileHandler(nil))

	token, err := crypto.GenerateToken(1, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/profile/experience/abc", nil)
	req.Header.Set(middleware.TokenHeader, token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid experience id") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}
