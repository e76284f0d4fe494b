package rentalapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every non-2xx response. Body holds the parsed
// JSON payload when the backend sent JSON, otherwise the raw text.
type APIError struct {
	Status     int
	StatusText string
	Body       any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rental api: request failed: %d %s", e.Status, e.StatusText)
}

// Detail extracts the server-provided message, if any. FastAPI style bodies
// carry it in "detail", either as a string or as a list of {msg} objects.
func (e *APIError) Detail() string {
	switch body := e.Body.(type) {
	case map[string]any:
		switch detail := body["detail"].(type) {
		case string:
			return detail
		case []any:
			msgs := make([]string, 0, len(detail))
			for _, d := range detail {
				if m, ok := d.(map[string]any); ok {
					if msg, ok := m["msg"].(string); ok {
						msgs = append(msgs, msg)
					}
				}
			}
			return strings.Join(msgs, "; ")
		}
		if msg, ok := body["message"].(string); ok {
			return msg
		}
	case string:
		return strings.TrimSpace(body)
	}
	return ""
}

// IsNotFound reports whether err is an APIError with status 404
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}

// StatusOf returns the upstream status carried by err, or 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
