package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrNoGithubProfile = errors.New("No Github profile found")

const (
	githubBaseURL   = "https://api.github.com"
	githubPageSize  = 5
	githubCacheTTL  = 10 * time.Minute
	githubUserAgent = "devconnect-api"
)

// GitHubService proxies read-only repository listings from the GitHub API.
// Every upstream failure collapses to ErrNoGithubProfile; upstream status
// codes and transport errors are never surfaced to clients.
type GitHubService struct {
	httpClient *http.Client
	cache      *redis.Client
	token      string
	baseURL    string
}

// NewGitHubService creates a new GitHubService. The token is attached as a
// bearer credential when non-empty. cache may be nil to disable caching.
func NewGitHubService(token string, cache *redis.Client) *GitHubService {
	return &GitHubService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache,
		token:      token,
		baseURL:    githubBaseURL,
	}
}

// Repos returns the user's five most recent repositories as raw JSON, sorted
// by creation date ascending, relaying GitHub's payload untouched.
func (s *GitHubService) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	if username == "" || len(username) > 39 {
		return nil, ErrNoGithubProfile
	}

	cacheKey := "github:repos:" + username
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			return cached, nil
		}
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created:asc",
		s.baseURL, url.PathEscape(username), githubPageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, ErrNoGithubProfile
	}
	req.Header.Set("User-Agent", githubUserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Debug("github request failed", "username", username, "error", err)
		return nil, ErrNoGithubProfile
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("github returned non-200", "username", username, "status", resp.StatusCode)
		return nil, ErrNoGithubProfile
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || !json.Valid(body) {
		return nil, ErrNoGithubProfile
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, body, githubCacheTTL).Err(); err != nil {
			slog.Warn("github cache write failed", "error", err)
		}
	}

	return body, nil
}
