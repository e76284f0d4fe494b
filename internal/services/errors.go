package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/sjperalta/rental-desk/internal/session"
	"github.com/sjperalta/rental-desk/internal/statemachine"
	"github.com/sjperalta/rental-desk/internal/surcharge"
)

// Common service errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("not allowed to access this draft")
	ErrInvalidState = errors.New("invalid state transition")
	ErrSuperseded   = errors.New("superseded by a newer request")
)

// ValidationError carries user-facing messages keyed by field. Nothing was
// changed when it is returned.
type ValidationError struct {
	Message string
	Details map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Details[k])
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// translate maps package-level errors onto the service sentinels
func translate(err error) error {
	if err == nil {
		return nil
	}

	var sv *surcharge.ValidationError
	if errors.As(err, &sv) {
		details := make(map[string]string, len(sv.Violations))
		for k, v := range sv.Violations {
			details[k] = v
		}
		return &ValidationError{Message: "Invalid surcharge", Details: details}
	}

	var inc *session.IncompleteError
	if errors.As(err, &inc) {
		details := make(map[string]string, len(inc.Fields))
		for k, v := range inc.Fields {
			details[k] = v
		}
		return &ValidationError{Message: "Contract is incomplete", Details: details}
	}

	if errors.Is(err, surcharge.ErrItemNotFound) {
		return errors.Join(ErrNotFound, err)
	}
	if errors.Is(err, statemachine.ErrTransition) {
		return errors.Join(ErrInvalidState, err)
	}
	return err
}
