package surcharge

import (
	"errors"
	"sort"
	"strings"
)

// ErrItemNotFound is returned by Update when the id is not in the ledger.
var ErrItemNotFound = errors.New("surcharge not found")

// Violations maps a field name to a user-facing message.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// ValidationError rejects a surcharge input; nothing was applied.
type ValidationError struct {
	Violations Violations
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for f := range e.Violations {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+e.Violations[f])
	}
	return "invalid surcharge: " + strings.Join(parts, ", ")
}
