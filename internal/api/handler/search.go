package handler

import (
	"checkups/internal/history"
	"checkups/pkg/controller"
	"checkups/pkg/domain"
	"checkups/pkg/logger"
	"checkups/pkg/serrors"
	"checkups/pkg/wire"
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Search handles POST /search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := readQuery(w, r)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	ctx = logger.WithFields(ctx, zap.String("query", query.String()))
	result, err := h.search(ctx, query)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, wire.EncodeResult(result))
}

// readQuery decodes and validates the request body.
func readQuery(w http.ResponseWriter, r *http.Request) (domain.Query, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, MessageInvalidJSON)
	}

	raw, err := wire.DecodeRequest(body)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, MessageInvalidJSON)
	}

	query, err := domain.NewQuery(raw)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, MessageQueryRequired)
	}

	return query, nil
}

// search asks the upstream and records the outcome in metrics and history.
// Every search, from the API or from the page, goes through it.
func (h *Handler) search(ctx context.Context, query domain.Query) (domain.SearchResult, error) {
	started := time.Now()
	result, err := h.deps.Upstream.Search(ctx, query)
	h.observe(ctx, query, result, err, time.Since(started))

	return result, err //nolint: wrapcheck
}

// fetcherFunc adapts a search function to searchui.Fetcher.
type fetcherFunc func(ctx context.Context, query domain.Query) (domain.SearchResult, error)

func (f fetcherFunc) Search(ctx context.Context, query domain.Query) (domain.SearchResult, error) {
	return f(ctx, query)
}

func (h *Handler) observe(ctx context.Context, query domain.Query, result domain.SearchResult, err error, took time.Duration) {
	rec := history.NewRecord(query, result, err, took, controller.RequestID(ctx))
	h.deps.Metrics.Observe(rec.Outcome, rec.PackageCount, took)

	if h.deps.History == nil {
		return
	}

	// the request context may be canceled as soon as the response is written
	if err := h.deps.History.Record(context.WithoutCancel(ctx), rec); err != nil {
		logger.Warn(ctx, "could not record search", zap.Error(err))
	}
}
