package handler

import (
	"checkups/pkg/controller"
	"checkups/pkg/logger"
	"checkups/pkg/serrors"
	"checkups/pkg/upstream"
	"checkups/pkg/wire"
	"net/http"

	"go.uber.org/zap"
)

// KnowledgeBase serves an upstream.Client (usually a knowledgebase.Engine)
// the way the API Gateway integration expects: POST / with {"query"} or an
// envelope {"body": "<json string>"}. Every failure other than a missing
// query is a 500 carrying the error text.
type KnowledgeBase struct {
	engine upstream.Client
}

func NewKnowledgeBase(engine upstream.Client) *KnowledgeBase {
	return &KnowledgeBase{engine: engine}
}

func (kb *KnowledgeBase) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST, OPTIONS")
		controller.WriteJSONError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))

		return
	}

	query, err := readQuery(w, r)
	if err != nil {
		controller.WriteJSONError(w, http.StatusBadRequest, serrors.MessageOf(err))

		return
	}

	ctx = logger.WithFields(ctx, zap.String("query", query.String()))
	logger.Info(ctx, "processing knowledge base query")

	result, err := kb.engine.Search(ctx, query)
	if err != nil {
		logger.Error(ctx, "could not answer query", zap.Error(err))
		controller.WriteJSONError(w, http.StatusInternalServerError, err.Error())

		return
	}

	controller.WriteJSON(w, http.StatusOK, wire.EncodeResult(result))
}
