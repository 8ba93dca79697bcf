package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is the normalized shape of an upstream failure.
type Error struct {
	Status  int
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.Status, e.Message)
}

// AsError unwraps err into *Error when the failure came from an upstream
// non-2xx response.
func AsError(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// newError extracts a human-readable message from an upstream error body.
// FastAPI reports either {"detail": "..."} or a validation array of
// {"loc": [...], "msg": "..."} entries; the latter is joined into
// "field: msg" lines. A plain {"message": "..."} is used as a fallback.
func newError(status int, raw []byte) *Error {
	e := &Error{Status: status, Message: "An error occurred"}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return e
	}
	e.Data = data

	if msg, ok := data["message"].(string); ok && msg != "" {
		e.Message = msg
	}

	switch detail := data["detail"].(type) {
	case string:
		e.Message = detail
	case []any:
		lines := make([]string, 0, len(detail))
		for _, entry := range detail {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			msg, _ := m["msg"].(string)
			field := ""
			if loc, ok := m["loc"].([]any); ok && len(loc) > 1 {
				field = fmt.Sprint(loc[1])
			}
			lines = append(lines, fmt.Sprintf("%s: %s", field, msg))
		}
		if len(lines) > 0 {
			e.Message = strings.Join(lines, "\n")
		}
	}

	return e
}
