package annict

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingToken is returned before any request is made when the client was
// built without an API token.
var ErrMissingToken = errors.New("no Annict API token configured")

// APIError is a non-200 response from the Annict API. Body holds the JSON
// error body when the response parses as JSON, otherwise the raw text.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Annict API returned status %d: %s", e.StatusCode, e.Body)
}

// errorBody normalizes a failed response body for display: indented JSON
// when the body parses, raw text otherwise.
func errorBody(body []byte) string {
	var buf bytes.Buffer
	if json.Indent(&buf, bytes.TrimSpace(body), "", "  ") == nil {
		return buf.String()
	}
	return string(body)
}
