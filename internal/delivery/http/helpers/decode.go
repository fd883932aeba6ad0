package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest. Unknown fields are allowed
// and no field-level validation is applied: the endpoints deliberately accept
// incomplete payloads and let the rendered mail degrade to placeholder text.
func DecodeJSON(r *http.Request, dest any) error {
	return json.NewDecoder(r.Body).Decode(dest)
}
