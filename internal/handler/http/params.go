package http

import (
	"net/http"
	"strconv"
)

// queryInt reads an optional integer query parameter. ok is false when the
// parameter is present but not a number.
func queryInt(r *http.Request, key string) (value *int, ok bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &n, true
}

func queryString(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}
