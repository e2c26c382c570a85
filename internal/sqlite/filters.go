// Shared filter and timestamp helpers for the table accessors.
package sqlite

import (
	"fmt"
	"time"

	"github.com/calebmuhia/farmmarket/pkg/types"
)

// timeFormat is the canonical timestamp encoding for all tables.
const timeFormat = time.RFC3339

// formatTime encodes a timestamp for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeFormat)
}

// parseTime decodes a stored timestamp.
func parseTime(s string) (time.Time, error) {
	return time.Parse(timeFormat, s)
}

// limitOffsetClause appends LIMIT and OFFSET clauses from the filter.
// Returns ErrInvalidFilter if either value is present but not an int.
func limitOffsetClause(filter types.Filter) (string, error) {
	if filter == nil {
		return "", nil
	}
	var clause string
	if v, ok := filter["limit"]; ok {
		limit, ok := v.(int)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if limit > 0 {
			clause += fmt.Sprintf(" LIMIT %d", limit)
		}
	}
	if v, ok := filter["offset"]; ok {
		offset, ok := v.(int)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if offset > 0 {
			if clause == "" {
				// OFFSET without LIMIT needs a LIMIT in SQLite.
				clause += " LIMIT -1"
			}
			clause += fmt.Sprintf(" OFFSET %d", offset)
		}
	}
	return clause, nil
}

// int64Filter extracts an int64 filter value, accepting int and int64.
func int64Filter(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
