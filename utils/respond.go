package utils

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response body shape shared by every endpoint.
type Envelope map[string]any

// OK writes a success envelope with the given status code.
func OK(w http.ResponseWriter, status int, data Envelope) {
	if data == nil {
		data = Envelope{}
	}
	data["success"] = true
	write(w, status, data)
}

// Fail writes a failure envelope with a human-readable message.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, Envelope{"success": false, "message": message})
}

func write(w http.ResponseWriter, status int, data Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeBody reads a JSON request body into v. A malformed or empty body is
// not an error here: v keeps its zero values and the caller's field
// validation reports what is missing.
func DecodeBody(r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(v)
}
