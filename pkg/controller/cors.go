package controller

import (
	"net/http"
	"strings"
)

type CORSOptions struct {
	// AllowOrigin defaults to "*".
	AllowOrigin string
	// AllowMethods defaults to GET, POST and OPTIONS.
	AllowMethods []string
}

// WithCORS sets CORS headers on every response and answers OPTIONS preflight
// requests with 204 No Content without calling next.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	origin := opts.AllowOrigin
	if origin == "" {
		origin = "*"
	}
	methods := opts.AllowMethods
	if len(methods) == 0 {
		methods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	}
	allowMethods := strings.Join(methods, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept, X-Request-Id")
			h.Set("Access-Control-Allow-Methods", allowMethods)
			if origin != "*" {
				h.Add("Vary", "Origin")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
