package github

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFetcher serves numbered pages of ints and records the queries it saw
type pagedFetcher struct {
	pages   map[string][]int
	queries []url.Values
	err     error
}

func (f *pagedFetcher) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	seen := url.Values{}
	for k, v := range query {
		seen[k] = append([]string(nil), v...)
	}
	f.queries = append(f.queries, seen)
	if f.err != nil {
		return f.err
	}
	*(out.(*[]int)) = f.pages[query.Get("page")]
	return nil
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()

	t.Run("stops on a short page", func(t *testing.T) {
		f := &pagedFetcher{pages: map[string][]int{
			"1": {1, 2},
			"2": {3},
			"3": {4, 5},
		}}

		all, err := collect(ctx, f, "/items", url.Values{"state": {"open"}}, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, all)
		require.Len(t, f.queries, 2)
		assert.Equal(t, "open", f.queries[1].Get("state"))
		assert.Equal(t, "2", f.queries[1].Get("per_page"))
		assert.Equal(t, "2", f.queries[1].Get("page"))
	})

	t.Run("stops on an empty page", func(t *testing.T) {
		f := &pagedFetcher{pages: map[string][]int{"1": {1, 2}}}

		all, err := collect(ctx, f, "/items", nil, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, all)
		assert.Len(t, f.queries, 2)
	})

	t.Run("never exceeds max pages", func(t *testing.T) {
		f := &pagedFetcher{pages: map[string][]int{"1": {1}, "2": {2}, "3": {3}}}

		all, err := collect(ctx, f, "/items", nil, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, all)
		assert.Len(t, f.queries, 2)
	})

	t.Run("visitor can stop early", func(t *testing.T) {
		f := &pagedFetcher{pages: map[string][]int{"1": {1, 2}, "2": {3, 4}}}

		visited := 0
		err := Paginate(ctx, f, "/items", nil, 2, 5, func(page []int) bool {
			visited++
			return false
		})
		require.NoError(t, err)
		assert.Equal(t, 1, visited)
		assert.Len(t, f.queries, 1)
	})

	t.Run("caller query is not modified", func(t *testing.T) {
		f := &pagedFetcher{pages: map[string][]int{"1": {1}}}
		query := url.Values{"sort": {"pushed"}}

		_, err := collect(ctx, f, "/items", query, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, url.Values{"sort": {"pushed"}}, query)
	})

	t.Run("errors are returned", func(t *testing.T) {
		f := &pagedFetcher{err: NewNotFoundError("/items")}

		_, err := collect(ctx, f, "/items", nil, 10, 3)
		require.Error(t, err)
		assert.IsType(t, &NotFoundError{}, err)
	})
}

func collect(ctx context.Context, f Fetcher, path string, query url.Values, perPage, maxPages int) ([]int, error) {
	var all []int
	err := Paginate(ctx, f, path, query, perPage, maxPages, func(page []int) bool {
		all = append(all, page...)
		return true
	})
	if err != nil {
		return nil, err
	}
	return all, nil
}
