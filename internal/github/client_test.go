package github

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-signals/internal/config"
)

type recordingObserver struct {
	mu        sync.Mutex
	endpoints []string
	statuses  []int
	remaining []int
}

func (o *recordingObserver) ObserveUpstream(endpoint string, status int, elapsed time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.endpoints = append(o.endpoints, endpoint)
	o.statuses = append(o.statuses, status)
}

func (o *recordingObserver) ObserveRateLimit(remaining int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remaining = append(o.remaining, remaining)
}

func setupTestClient(t *testing.T) (*Client, *httptest.Server, *recordingObserver) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server := httptest.NewServer(nil)
	t.Cleanup(server.Close)

	cfg := config.DefaultGitHubConfig()
	cfg.Token = "test-token"
	cfg.APIBaseURL = server.URL + "/"

	observer := &recordingObserver{}
	client := NewClient(cfg, logger,
		WithRetryConfig(2, time.Millisecond, 5*time.Millisecond),
		WithObserver(observer),
	)

	return client, server, observer
}

func TestClient_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		client, server, observer := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/repos/test-owner/test-repo", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
			assert.Equal(t, "main", r.URL.Query().Get("ref"))

			w.Header().Set("X-RateLimit-Limit", "5000")
			w.Header().Set("X-RateLimit-Remaining", "4999")
			w.Header().Set("X-RateLimit-Reset", "1234567890")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"name": "test-repo",
				"full_name": "test-owner/test-repo",
				"owner": {"login": "test-owner"},
				"stargazers_count": 200,
				"forks_count": 100,
				"subscribers_count": 12,
				"default_branch": "main",
				"pushed_at": "2024-01-02T00:00:00Z"
			}`))
		})

		var repo Repository
		err := client.Get(ctx, "/repos/test-owner/test-repo", url.Values{"ref": {"main"}}, &repo)
		require.NoError(t, err)
		assert.Equal(t, "test-owner/test-repo", repo.Identity())
		assert.Equal(t, 200, repo.StargazersCount)
		require.NotNil(t, repo.SubscribersCount)
		assert.Equal(t, 12, *repo.SubscribersCount)

		info := client.RateLimit()
		assert.Equal(t, 5000, info.Limit)
		assert.Equal(t, 4999, info.Remaining)
		assert.Equal(t, time.Unix(1234567890, 0), info.ResetTime)

		assert.Equal(t, []string{"repos"}, observer.endpoints)
		assert.Equal(t, []int{http.StatusOK}, observer.statuses)
		assert.Equal(t, []int{4999}, observer.remaining)
	})

	t.Run("path must be absolute", func(t *testing.T) {
		client, _, _ := setupTestClient(t)

		err := client.Get(ctx, "users/alice", nil, nil)
		require.Error(t, err)
		assert.IsType(t, &ValidationError{}, err)
	})

	t.Run("unauthenticated without a token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"login": "alice"}`))
		}))
		defer server.Close()

		cfg := config.DefaultGitHubConfig()
		cfg.APIBaseURL = server.URL
		client := NewClient(cfg, logrus.New())

		var user User
		require.NoError(t, client.Get(ctx, "/users/alice", nil, &user))
		assert.Equal(t, "alice", user.Login)
	})

	t.Run("malformed response", func(t *testing.T) {
		client, server, _ := setupTestClient(t)
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`invalid json`))
		})

		var repo Repository
		err := client.Get(ctx, "/repos/test-owner/test-repo", nil, &repo)
		require.Error(t, err)
		assert.IsType(t, &GitHubError{}, err)
	})
}

func TestClient_StatusMapping(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		status  int
		headers map[string]string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				var target *NotFoundError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, "/users/ghost", target.Path)
			},
		},
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				var target *UnauthorizedError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, http.StatusUnauthorized, target.StatusCode)
			},
		},
		{
			name:   "forbidden without exhausted quota",
			status: http.StatusForbidden,
			headers: map[string]string{
				"X-RateLimit-Remaining": "17",
			},
			check: func(t *testing.T, err error) {
				var target *UnauthorizedError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, http.StatusForbidden, target.StatusCode)
			},
		},
		{
			name:   "forbidden with exhausted quota",
			status: http.StatusForbidden,
			headers: map[string]string{
				"X-RateLimit-Limit":     "60",
				"X-RateLimit-Remaining": "0",
				"X-RateLimit-Reset":     "1234567890",
			},
			check: func(t *testing.T, err error) {
				var target *RateLimitError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, http.StatusForbidden, target.StatusCode)
				assert.Equal(t, 60, target.Limit)
				assert.Equal(t, time.Unix(1234567890, 0), target.ResetTime)
			},
		},
		{
			name:    "secondary rate limit",
			status:  http.StatusForbidden,
			headers: map[string]string{"Retry-After": "30"},
			check: func(t *testing.T, err error) {
				var target *RateLimitError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:   "too many requests",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				var target *RateLimitError
				assert.ErrorAs(t, err, &target)
			},
		},
		{
			name:   "other client error",
			status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, err error) {
				var target *GitHubError
				require.True(t, errors.As(err, &target))
				assert.Equal(t, http.StatusUnprocessableEntity, target.StatusCode)
				assert.Contains(t, target.Message, "validation failed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, server, _ := setupTestClient(t)
			attempts := 0
			server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				attempts++
				for k, v := range tt.headers {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"message": "validation failed"}`))
			})

			err := client.Get(ctx, "/users/ghost", nil, nil)
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, 1, attempts, "client errors are never retried")
		})
	}
}

func TestClient_Retry(t *testing.T) {
	ctx := context.Background()

	t.Run("server error with retry", func(t *testing.T) {
		client, server, _ := setupTestClient(t)
		attempts := 0
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts < 3 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		})

		var events []Event
		require.NoError(t, client.Get(ctx, "/users/alice/events/public", nil, &events))
		assert.Empty(t, events)
		assert.Equal(t, 3, attempts)
	})

	t.Run("retries are bounded", func(t *testing.T) {
		client, server, observer := setupTestClient(t)
		attempts := 0
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		})

		err := client.Get(ctx, "/users/alice/repos", nil, nil)
		require.Error(t, err)
		assert.Equal(t, 3, attempts)
		assert.Contains(t, err.Error(), "max retries exceeded")

		var target *GitHubError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, http.StatusBadGateway, target.StatusCode)
		assert.Equal(t, []string{"users.repos", "users.repos", "users.repos"}, observer.endpoints)
	})

	t.Run("network error", func(t *testing.T) {
		client, server, _ := setupTestClient(t)
		server.Close()

		err := client.Get(ctx, "/users/alice", nil, nil)
		require.Error(t, err)
		var target *GitHubError
		assert.True(t, errors.As(err, &target))
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		cfg := config.DefaultGitHubConfig()
		cfg.APIBaseURL = server.URL
		client := NewClient(cfg, logger, WithRetryConfig(5, time.Hour, time.Hour))

		cctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := client.Get(cctx, "/users/alice", nil, nil)
		require.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestEndpointClass(t *testing.T) {
	tests := map[string]string{
		"/":                           "root",
		"/users/alice":                "users",
		"/users/alice/repos":          "users.repos",
		"/users/alice/events/public":  "users.events",
		"/repos/o/n":                  "repos",
		"/repos/o/n/contents/.github": "repos.contents",
		"/repos/o/n/languages":        "repos.languages",
		"/rate_limit":                 "rate_limit",
	}

	for path, want := range tests {
		assert.Equal(t, want, EndpointClass(path), path)
	}
}
