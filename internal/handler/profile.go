package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devconnect/devconnect-go/internal/middleware"
	"github.com/devconnect/devconnect-go/internal/model"
	"github.com/devconnect/devconnect-go/internal/service"
)

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	service *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleGetMyProfile handles GET /api/profile/me requests.
func (h *ProfileHandler) HandleGetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	profile, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeJSON(w, http.StatusBadRequest, errorResponse("There is no profile for this user"))
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleListProfiles handles GET /api/profile requests. Public.
func (h *ProfileHandler) HandleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.service.List(r.Context())
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// HandleGetProfileByUserID handles GET /api/profile/user/{user_id} requests.
// Public. A malformed id is rejected before any query runs.
func (h *ProfileHandler) HandleGetProfileByUserID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil || userID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid user id"))
		return
	}

	profile, err := h.service.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeJSON(w, http.StatusBadRequest, errorResponse("Profile not found"))
			return
		}
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleUpsertProfile handles POST /api/profile requests: create-if-absent,
// replace-if-present.
func (h *ProfileHandler) HandleUpsertProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	var req model.UpsertProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.Upsert(r.Context(), userID, req)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleAddExperience handles PUT /api/profile/experience requests.
func (h *ProfileHandler) HandleAddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	var req model.ExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.AddExperience(r.Context(), userID, req)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleDeleteExperience handles DELETE /api/profile/experience/{exp_id}
// requests. An unknown sub-id returns the unchanged profile.
func (h *ProfileHandler) HandleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	expID, err := strconv.ParseInt(chi.URLParam(r, "exp_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid experience id"))
		return
	}

	profile, err := h.service.RemoveExperience(r.Context(), userID, expID)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleAddEducation handles PUT /api/profile/education requests.
func (h *ProfileHandler) HandleAddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	var req model.EducationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	profile, err := h.service.AddEducation(r.Context(), userID, req)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleDeleteEducation handles DELETE /api/profile/education/{edu_id}
// requests. An unknown sub-id returns the unchanged profile.
func (h *ProfileHandler) HandleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	eduID, err := strconv.ParseInt(chi.URLParam(r, "edu_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid education id"))
		return
	}

	profile, err := h.service.RemoveEducation(r.Context(), userID, eduID)
	if err != nil {
		h.writeProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleDeleteAccount handles DELETE /api/profile requests: the cascading
// removal of posts, profile, and user.
func (h *ProfileHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("No token, authorization denied"))
		return
	}

	if err := h.service.DeleteAccount(r.Context(), userID); err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"msg": "User deleted"})
}

func (h *ProfileHandler) writeProfileError(w http.ResponseWriter, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		writeValidationError(w, ve)
	case errors.Is(err, service.ErrProfileNotFound):
		writeJSON(w, http.StatusBadRequest, errorResponse("There is no profile for this user"))
	default:
		writeServerError(w, err)
	}
}
