// Package response provides helpers for writing consistent JSON HTTP
// responses.
//
// Success responses may carry any JSON shape (a student, a list…), but
// every error response uses the same envelope, so API consumers always
// know where to look for the detail text:
//
//	{ "status": "error", "error": "student not found" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

// Status string constants — use these instead of raw string literals so
// a typo is caught by the compiler rather than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code. data can be a struct, map, slice, or primitive — anything the
// encoder accepts.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// json.NewEncoder(w) streams straight into the response body,
	// avoiding an intermediate buffer. Encode() appends a newline —
	// handy when poking the API with curl.
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope.
// Use this for everything that is not a validation failure.
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError converts the per-field errors produced by the
// go-playground/validator package into a single human-readable
// envelope, e.g.:
//
//	{ "status": "error", "error": "field Name is required, field Age is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be a valid email address", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
