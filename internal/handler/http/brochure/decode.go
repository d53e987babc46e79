package brochure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errBodyRequired = errors.New("request body is required")

// decodeJSON reads a single JSON object from the request body into v.
// The returned errors are safe to show to clients.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return errBodyRequired
		case errors.As(err, &maxErr):
			return fmt.Errorf("request body too large (limit %d bytes)", maxErr.Limit)
		default:
			return errors.New("request body must be a valid JSON object")
		}
	}
	return nil
}
