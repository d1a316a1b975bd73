// Package handler implements the HTTP endpoints of the search proxy: the
// JSON /search API, the search history and the server-rendered page.
package handler

import (
	"checkups/internal/history"
	"checkups/pkg/controller"
	"checkups/pkg/metrics"
	"checkups/pkg/upstream"
)

// maxBodyBytes caps request bodies read by the JSON endpoints.
const maxBodyBytes = 1 << 20

type Deps struct {
	Upstream upstream.Client
	// History is optional; a nil History disables recording and the
	// history endpoint.
	History history.History
	// Metrics is optional.
	Metrics *metrics.Search
	// Verifier guards searches run from the page. A nil Verifier leaves them
	// public; POST /search is guarded by the server middleware.
	Verifier *controller.TokenVerifier
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}
