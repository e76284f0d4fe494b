package pricing

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// Period is a rental interval. Either bound may be absent.
type Period struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

// Complete reports whether both bounds are set.
func (p Period) Complete() bool {
	return p.Start != nil && p.End != nil
}

// Days returns the billable rental days of the period.
func (p Period) Days() int {
	return RentalDays(p.Start, p.End)
}

// RentalDays rounds the interval up to whole days. Missing bounds and
// intervals where end <= start count as zero days.
func RentalDays(start, end *time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	elapsed := end.Sub(*start)
	if elapsed <= 0 {
		return 0
	}
	days := int(elapsed / day)
	if elapsed%day != 0 {
		days++
	}
	return days
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTime reads a date or date-time form value. Values that match none of
// the accepted layouts are treated as absent.
func ParseTime(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
