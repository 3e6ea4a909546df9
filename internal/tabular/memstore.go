package tabular

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore is an in-memory Store used by tests and the stub server. It
// applies the same filter/order/page semantics the hosted store does.
type MemStore struct {
	mu     sync.RWMutex
	tables map[string][]Row
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{tables: make(map[string][]Row)}
}

// Seed replaces the rows of a table.
func (m *MemStore) Seed(table string, rows []Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = rows
}

// Append adds rows to a table.
func (m *MemStore) Append(table string, rows ...Row) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[table] = append(m.tables[table], rows...)
}

// Execute filters, orders, and pages the seeded rows.
func (m *MemStore) Execute(_ context.Context, q Query) ([]Row, error) {
	m.mu.RLock()
	source := m.tables[q.Table]
	m.mu.RUnlock()

	var matched []Row
	for _, row := range source {
		if matchesAll(row, q.Filters) {
			matched = append(matched, row)
		}
	}

	if q.OrderBy != "" {
		col, desc := q.OrderBy, q.Desc
		sort.SliceStable(matched, func(i, j int) bool {
			less := compareValues(matched[i][col], matched[j][col]) < 0
			if desc {
				return !less
			}
			return less
		})
	}

	if q.Offset >= len(matched) {
		return nil, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}

	// Copy so callers can't mutate seeded rows through the result slice.
	out := make([]Row, len(matched))
	copy(out, matched)
	return out, nil
}

func matchesAll(row Row, filters []Filter) bool {
	for _, f := range filters {
		cmp := compareValues(row[f.Column], f.Value)
		switch f.Op {
		case OpEq:
			if cmp != 0 {
				return false
			}
		case OpGTE:
			if cmp < 0 {
				return false
			}
		case OpLT:
			if cmp >= 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// compareValues orders two cell values, preferring time comparison, then
// numeric, then string. Mixed representations (RFC3339 string vs time.Time)
// compare correctly because both sides go through the same coercion.
func compareValues(a, b any) int {
	if at, aok := asTime(a); aok {
		if bt, bok := asTime(b); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}
	as, bs := Row{"v": a}.String("v"), Row{"v": b}.String("v")
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}

func asTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case string:
		t := parseTime(val)
		return t, !t.IsZero()
	default:
		return time.Time{}, false
	}
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}
