package tabular

import "time"

// Op is a filter operator. The store contract only needs equality plus the
// two range operators that give half-open date windows.
type Op string

const (
	OpEq  Op = "eq"
	OpGTE Op = "gte"
	OpLT  Op = "lt"
)

// Filter is one predicate on a column.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Query describes one request against a table. Zero Limit means the backend
// default; FetchAll always sets Offset/Limit explicitly.
type Query struct {
	Table    string
	Columns  []string
	Filters  []Filter
	OrderBy  string
	Desc     bool
	Offset   int
	Limit    int
}

// NewQuery starts a query against the named table.
func NewQuery(table string) Query {
	return Query{Table: table}
}

// Select restricts the returned columns.
func (q Query) Select(cols ...string) Query {
	q.Columns = cols
	return q
}

// Eq adds an equality filter. Empty values are skipped so optional client or
// campaign filters can be passed through unconditionally.
func (q Query) Eq(col string, val string) Query {
	if val == "" {
		return q
	}
	q.Filters = append(q.Filters, Filter{Column: col, Op: OpEq, Value: val})
	return q
}

// DateRange adds the half-open window [start, end) on a timestamp column.
// The caller builds end as start-of-day-after-end-date so every timestamp on
// the end date is captured.
func (q Query) DateRange(col string, start, end time.Time) Query {
	q.Filters = append(q.Filters,
		Filter{Column: col, Op: OpGTE, Value: start},
		Filter{Column: col, Op: OpLT, Value: end},
	)
	return q
}

// Order sets the sort column. Pagination needs a stable order; every fetch
// in this codebase orders by its date column.
func (q Query) Order(col string, desc bool) Query {
	q.OrderBy = col
	q.Desc = desc
	return q
}

// Page returns a copy of the query with the given offset/limit.
func (q Query) Page(offset, limit int) Query {
	q.Offset = offset
	q.Limit = limit
	return q
}
