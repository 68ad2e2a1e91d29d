package signals

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-signals/internal/batch"
	"github.com/Kamar-Folarin/github-signals/internal/config"
	"github.com/Kamar-Folarin/github-signals/internal/github"
)

// testNow is a Wednesday
var testNow = time.Date(2024, time.June, 12, 12, 0, 0, 0, time.UTC)

const testUser = "alice"

// fakeFetcher serves canned JSON bodies keyed by "path?encoded-query", falling back to the bare path.
// Unknown routes answer with a NotFoundError.
type fakeFetcher struct {
	mu     sync.Mutex
	routes map[string]interface{}
	errs   map[string]error
	calls  []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		routes: make(map[string]interface{}),
		errs:   make(map[string]error),
	}
}

func (f *fakeFetcher) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	key := path
	if len(query) > 0 {
		key = path + "?" + query.Encode()
	}

	f.mu.Lock()
	f.calls = append(f.calls, key)
	f.mu.Unlock()

	for _, k := range []string{key, path} {
		if err, ok := f.errs[k]; ok {
			return err
		}
		if body, ok := f.routes[k]; ok {
			raw, err := json.Marshal(body)
			if err != nil {
				return err
			}
			return json.Unmarshal(raw, out)
		}
	}
	return github.NewNotFoundError(path)
}

func (f *fakeFetcher) called(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == key {
			return true
		}
	}
	return false
}

// countingRecorder tallies engine counters
type countingRecorder struct {
	mu     sync.Mutex
	scored map[string]int
	absent map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{scored: map[string]int{}, absent: map[string]int{}}
}

func (r *countingRecorder) RepositoriesScored(signal string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scored[signal] += n
}

func (r *countingRecorder) EnrichmentAbsent(kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.absent[kind]++
}

func testDeps(t *testing.T, f github.Fetcher) Deps {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return Deps{
		Fetcher:   f,
		Logger:    logger,
		Processor: batch.NewProcessor(&config.BatchConfig{Workers: 3}),
		Clock:     func() time.Time { return testNow },
	}
}

func reposKey(user string, page int) string {
	q := url.Values{}
	q.Set("type", "owner")
	q.Set("sort", "pushed")
	q.Set("direction", "desc")
	q.Set("per_page", "100")
	q.Set("page", strconv.Itoa(page))
	return userPath(user, "repos") + "?" + q.Encode()
}

func eventsKey(user string, perPage, page int) string {
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", strconv.Itoa(page))
	return userPath(user, "events", "public") + "?" + q.Encode()
}

func daysBefore(days int) string {
	return testNow.Add(-time.Duration(days) * 24 * time.Hour).Format(time.RFC3339)
}

func ownedRepo(name string, stars int, pushedAt string) github.Repository {
	return github.Repository{
		Name:            name,
		FullName:        testUser + "/" + name,
		Owner:           github.Owner{Login: testUser},
		StargazersCount: stars,
		PushedAt:        pushedAt,
	}
}
