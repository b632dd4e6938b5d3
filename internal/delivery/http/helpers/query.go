package helpers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ParseBoolQuery reads a boolean query parameter. Missing or empty values return def.
func ParseBoolQuery(r *http.Request, name string, def bool) (bool, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean", name)
	}
	return v, nil
}

// ParseDateQuery reads a required date query parameter in YYYY-MM-DD or RFC 3339 form.
func ParseDateQuery(r *http.Request, name string) (time.Time, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%s must be a date (YYYY-MM-DD)", name)
}
