package github

import (
	"context"
	"net/url"
	"strconv"
)

// Paginate requests pages 1..maxPages of a list endpoint, handing each page to visit.
// It stops on an empty page, a page shorter than perPage, or when visit returns false.
func Paginate[T any](ctx context.Context, f Fetcher, path string, query url.Values, perPage, maxPages int, visit func(page []T) bool) error {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("per_page", strconv.Itoa(perPage))

	for page := 1; page <= maxPages; page++ {
		q.Set("page", strconv.Itoa(page))

		var items []T
		if err := f.Get(ctx, path, q, &items); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		if !visit(items) {
			return nil
		}
		if len(items) < perPage {
			return nil
		}
	}

	return nil
}
