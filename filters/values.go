package filters

import (
	"context"
	"fmt"
)

// ValuesFetcher returns one page of distinct values for a field, plus
// whether more pages remain. Implemented against whatever source backs the
// dataset (SQL in this service, a REST collaborator in others).
type ValuesFetcher func(ctx context.Context, field, business string, offset, limit int) (values []string, hasMore bool, err error)

// CollectDistinctValues pages through a fetcher until it reports no more
// data, de-duplicating while preserving first-seen order. Used to populate
// string-column filter value pickers.
func CollectDistinctValues(ctx context.Context, fetch ValuesFetcher, field, business string, pageSize int) ([]string, error) {
	if pageSize <= 0 {
		pageSize = 100
	}

	seen := map[string]bool{}
	var out []string
	offset := 0
	for {
		page, hasMore, err := fetch(ctx, field, business, offset, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching values for %s at offset %d: %w", field, offset, err)
		}
		for _, v := range page {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
		if !hasMore {
			return out, nil
		}
		if len(page) == 0 {
			// A source claiming more data while returning none would loop
			// forever; treat it as exhausted.
			return out, nil
		}
		offset += len(page)
	}
}
