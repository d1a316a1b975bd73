package handler

import (
	"checkups/pkg/controller"
	"checkups/pkg/domain"
	"checkups/pkg/serrors"
	"encoding/json"
	"net/http"
	"strconv"
)

// History handles GET /search/history?limit=N.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.deps.History == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "Search history is disabled"))

		return
	}

	var limit uint64
	if v := r.URL.Query().Get("limit"); v != "" {
		var err error
		limit, err = strconv.ParseUint(v, 10, 32)
		if err != nil {
			writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "limit must be a positive integer"))

			return
		}
	}

	records, err := h.deps.History.Recent(ctx, uint(limit))
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	if records == nil {
		records = []domain.SearchRecord{}
	}

	body, err := json.Marshal(map[string]any{"searches": records})
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	controller.WriteJSON(w, http.StatusOK, body)
}
