package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newGitHubTestServer(t *testing.T, status int, body string, gotPath *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.RequestURI()
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestReposSuccess(t *testing.T) {
	var gotPath string
	srv := newGitHubTestServer(t, http.StatusOK, `[{"name":"repo-one"}]`, &gotPath)
	defer srv.Close()

	svc := NewGitHubService("", nil)
	svc.baseURL = srv.URL

	repos, err := svc.Repos(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("Repos() unexpected error: %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal(repos, &parsed); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(parsed) != 1 || parsed[0]["name"] != "repo-one" {
		t.Errorf("unexpected payload: %s", repos)
	}

	if !strings.Contains(gotPath, "/users/octocat/repos") {
		t.Errorf("unexpected request path: %s", gotPath)
	}
	if !strings.Contains(gotPath, "per_page=5") || !strings.Contains(gotPath, "sort=created") {
		t.Errorf("missing query parameters: %s", gotPath)
	}
}

func TestReposSendsCredentials(t *testing.T) {
	var gotAuth, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := NewGitHubService("server-held-token", nil)
	svc.baseURL = srv.URL

	if _, err := svc.Repos(context.Background(), "octocat"); err != nil {
		t.Fatalf("Repos() unexpected error: %v", err)
	}
	if gotAuth != "Bearer server-held-token" {
		t.Errorf("unexpected Authorization header: %q", gotAuth)
	}
	if gotAgent != githubUserAgent {
		t.Errorf("unexpected User-Agent: %q", gotAgent)
	}
}

func TestReposUpstream404(t *testing.T) {
	srv := newGitHubTestServer(t, http.StatusNotFound, `{"message":"Not Found"}`, nil)
	defer srv.Close()

	svc := NewGitHubService("", nil)
	svc.baseURL = srv.URL

	_, err := svc.Repos(context.Background(), "no-such-user")
	if err != ErrNoGithubProfile {
		t.Errorf("expected ErrNoGithubProfile, got %v", err)
	}
}

func TestReposUpstream500(t *testing.T) {
	srv := newGitHubTestServer(t, http.StatusInternalServerError, `boom`, nil)
	defer srv.Close()

	svc := NewGitHubService("", nil)
	svc.baseURL = srv.URL

	_, err := svc.Repos(context.Background(), "octocat")
	if err != ErrNoGithubProfile {
		t.Errorf("expected ErrNoGithubProfile, got %v", err)
	}
}

func TestReposNetworkError(t *testing.T) {
	srv := newGitHubTestServer(t, http.StatusOK, `[]`, nil)
	srv.Close() // force a connection failure

	svc := NewGitHubService("", nil)
	svc.baseURL = srv.URL

	_, err := svc.Repos(context.Background(), "octocat")
	if err != ErrNoGithubProfile {
		t.Errorf("network failure should collapse to ErrNoGithubProfile, got %v", err)
	}
}

func TestReposInvalidPayload(t *testing.T) {
	srv := newGitHubTestServer(t, http.StatusOK, `not json`, nil)
	defer srv.Close()

	svc := NewGitHubService("", nil)
	svc.baseURL = srv.URL

	_, err := svc.Repos(context.Background(), "octocat")
	if err != ErrNoGithubProfile {
		t.Errorf("expected ErrNoGithubProfile for invalid payload, got %v", err)
	}
}

func TestReposRejectsBadUsernames(t *testing.T) {
	svc := NewGitHubService("", nil)

	if _, err := svc.Repos(context.Background(), ""); err != ErrNoGithubProfile {
		t.Errorf("expected ErrNoGithubProfile for empty username, got %v", err)
	}
	if _, err := svc.Repos(context.Background(), strings.Repeat("a", 40)); err != ErrNoGithubProfile {
		t.Errorf("expected ErrNoGithubProfile for oversized username, got %v", err)
	}
}
