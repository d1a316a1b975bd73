package handler

import (
	"checkups/pkg/controller"
	"checkups/pkg/logger"
	"checkups/pkg/serrors"
	"context"
	"net/http"

	"go.uber.org/zap"
)

const (
	MessageInvalidJSON     = "Invalid JSON format"
	MessageQueryRequired   = "Query is required"
	MessageUnexpectedError = "An unexpected error occurred: "
)

// StatusOf maps the semantic kind of err to an HTTP status code.
func StatusOf(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	case serrors.ErrBadGateway:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorBody picks the message returned to the caller. Errors without a
// semantic kind are reported as unexpected.
func errorBody(err error) string {
	if serrors.KindOf(err) == nil {
		return MessageUnexpectedError + err.Error()
	}

	if msg := serrors.MessageOf(err); msg != "" {
		return msg
	}

	return err.Error()
}

// writeError logs err and answers with {"error": msg}.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Int("status", status), zap.Error(err))
	} else {
		logger.Info(ctx, "request rejected", zap.Int("status", status), zap.Error(err))
	}

	controller.WriteJSONError(w, status, errorBody(err))
}
