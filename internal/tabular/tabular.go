// Package tabular is the portal's client for the hosted tabular store.
//
// The store is an external collaborator: it exposes named tables with
// equality filters, half-open date-range filters, ordering, and offset
// pagination. This package owns the query shape, the paginated fetch loop,
// and the concrete backends (PostgreSQL, Snowflake, REST, in-memory). It
// never writes to source tables.
package tabular

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Table names the aggregation views read from.
const (
	TableReplies           = "replies"
	TableEngagedLeads      = "engaged_leads"
	TableMeetingsBooked    = "meetings_booked"
	TableCampaignReporting = "campaign_reporting"
	TableCRMLeads          = "crm_leads"
)

// Row is one record as returned by a backend. Values are whatever the
// backend produced: string, float64, int64, bool, time.Time, or nil.
// The typed accessors below normalize across backends.
type Row map[string]any

// Store executes a single query against one table and returns the matching
// rows. Implementations must honor Query.Offset/Limit so FetchAll can page.
type Store interface {
	Execute(ctx context.Context, q Query) ([]Row, error)
}

// String returns the column as a string, or "" when absent or null.
func (r Row) String(col string) string {
	switch v := r[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case nil:
		return ""
	case float64:
		// JSON backends decode numerics as float64
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Int returns the column as an int, treating missing or unparseable values
// as 0 per the engine's never-throw contract.
func (r Row) Int(col string) int {
	switch v := r[col].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	case []byte:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Bool returns the column as a bool. SQL backends may surface booleans as
// strings ("t"/"true") or numerics.
func (r Row) Bool(col string) bool {
	switch v := r[col].(type) {
	case bool:
		return v
	case string:
		return v == "t" || v == "true" || v == "TRUE" || v == "1"
	case []byte:
		s := string(v)
		return s == "t" || s == "true" || s == "TRUE" || s == "1"
	case float64:
		return v != 0
	case int64:
		return v != 0
	default:
		return false
	}
}

// timeLayouts covers the timestamp encodings seen across backends: RFC3339
// from REST, driver-native strings from SQL, and bare dates.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time returns the column as a time, or the zero time when absent or
// unparseable.
func (r Row) Time(col string) time.Time {
	switch v := r[col].(type) {
	case time.Time:
		return v
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	default:
		return time.Time{}
	}
}

// TimePtr is Time but nil for absent/unparseable values, for nullable
// timestamp columns.
func (r Row) TimePtr(col string) *time.Time {
	t := r.Time(col)
	if t.IsZero() {
		return nil
	}
	return &t
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
