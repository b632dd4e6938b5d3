package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes caps the camp request bodies read by DecodeAndValidate.
const MaxBodyBytes = 1 << 20

// Validator is implemented by request models. An empty result means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads a single JSON object into dest, rejecting unknown fields,
// trailing data and bodies over MaxBodyBytes, then runs dest's Validate if it has one.
// It writes the 400 itself and returns false on any failure.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if msg := decodeBody(w, r, dest); msg != "" {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, msg)
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}

// decodeBody returns a client-facing message, or "" on success.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) string {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return "request body is empty"
		case errors.As(err, &tooLarge):
			return "request body is too large"
		default:
			return "invalid request body: " + err.Error()
		}
	}
	if dec.More() {
		return "request body must contain a single JSON object"
	}
	return ""
}
