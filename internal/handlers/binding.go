package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var errEmptyBody = errors.New("request body is empty")

// BindNestedOrFlat decodes the request body into obj. The desk frontend
// sends either a wrapped object ({"surcharge": {...}}) or the fields at the
// top level; both are accepted. When key is present its value must decode
// into obj. The body is restored so it can be read again.
func BindNestedOrFlat(c *gin.Context, key string, obj any) error {
	var body []byte
	if c.Request.Body != nil {
		var err error
		if body, err = io.ReadAll(c.Request.Body); err != nil {
			return err
		}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if len(bytes.TrimSpace(body)) == 0 {
		return errEmptyBody
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if inner, ok := wrapped[key]; ok {
			return json.Unmarshal(inner, obj)
		}
	}
	return json.Unmarshal(body, obj)
}
