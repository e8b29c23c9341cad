package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// pathParam returns the decoded value of a route parameter. chi matches
// against r.URL.RawPath when it is set and the already decoded r.URL.Path
// otherwise, so only the former needs unescaping.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return raw
	}
	if value, err := url.PathUnescape(raw); err == nil {
		return value
	}
	return raw
}
