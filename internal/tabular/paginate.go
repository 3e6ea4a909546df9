package tabular

import (
	"context"
	"fmt"

	"github.com/ignite/pipeline-portal/internal/pkg/logger"
)

const (
	// DefaultPageSize matches the hosted store's per-request row cap.
	DefaultPageSize = 1000

	// MaxPages bounds the fetch loop against misbehaving data. 100 pages at
	// 1000 rows is far beyond any real reporting window.
	MaxPages = 100
)

// FetchAll pages through a query until a short page signals exhaustion,
// accumulating every matching row. Any page failing aborts the whole fetch
// and discards partial results; returning a partial accumulation would
// silently under-count.
func FetchAll(ctx context.Context, s Store, q Query, pageSize int) ([]Row, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	var all []Row
	for page := 0; page < MaxPages; page++ {
		rows, err := s.Execute(ctx, q.Page(page*pageSize, pageSize))
		if err != nil {
			return nil, fmt.Errorf("fetch %s page %d: %w", q.Table, page, err)
		}
		all = append(all, rows...)
		if len(rows) < pageSize {
			return all, nil
		}
	}

	logger.Warn("paginated fetch hit the page cap, result may be truncated",
		"table", q.Table, "pages", MaxPages, "rows", len(all))
	return all, nil
}
