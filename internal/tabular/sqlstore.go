package tabular

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// SQLStore runs tabular queries against a database/sql connection. The
// placeholder function abstracts the dialect difference between Postgres
// ($1, $2, ...) and Snowflake (?).
type SQLStore struct {
	db          *sql.DB
	placeholder func(i int) string
}

// Execute builds and runs the SELECT for one page of a query.
func (s *SQLStore) Execute(ctx context.Context, q Query) ([]Row, error) {
	query, args := s.buildSQL(q)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", q.Table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns %s: %w", q.Table, err)
	}

	var out []Row
	for rows.Next() {
		values := make([]any, len(cols))
		scanners := make([]any, len(cols))
		for i := range values {
			scanners[i] = &values[i]
		}
		if err := rows.Scan(scanners...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.Table, err)
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", q.Table, err)
	}
	return out, nil
}

var opSQL = map[Op]string{
	OpEq:  "=",
	OpGTE: ">=",
	OpLT:  "<",
}

func (s *SQLStore) buildSQL(q Query) (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(q.Columns) == 0 {
		b.WriteString("*")
	} else {
		b.WriteString(strings.Join(q.Columns, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(q.Table)

	var args []any
	for i, f := range q.Filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		args = append(args, normalizeArg(f.Value))
		fmt.Fprintf(&b, "%s %s %s", f.Column, opSQL[f.Op], s.placeholder(len(args)))
	}

	if q.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(q.OrderBy)
		if q.Desc {
			b.WriteString(" DESC")
		} else {
			b.WriteString(" ASC")
		}
	}

	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
	}
	if q.Offset > 0 {
		fmt.Fprintf(&b, " OFFSET %d", q.Offset)
	}

	return b.String(), args
}

// normalizeArg keeps timestamp comparisons driver-friendly: both supported
// dialects accept UTC time.Time directly, everything else passes through.
func normalizeArg(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC()
	}
	return v
}
