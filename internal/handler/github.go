package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devconnect/devconnect-go/internal/service"
)

// GitHubHandler handles HTTP requests for the GitHub repository proxy.
type GitHubHandler struct {
	service *service.GitHubService
}

// NewGitHubHandler creates a new GitHubHandler.
func NewGitHubHandler(svc *service.GitHubService) *GitHubHandler {
	return &GitHubHandler{service: svc}
}

// HandleListRepos handles GET /api/profile/github/{username} requests.
// Public. Every upstream failure yields the same 404 response.
func (h *GitHubHandler) HandleListRepos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	repos, err := h.service.Repos(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNoGithubProfile) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(repos)
}
