package sqlite

import (
	"fmt"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string,
// reporting the field name on failure.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}
