package controller

import (
	"checkups/pkg/logger"
	"checkups/pkg/serrors"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenVerifier validates RS256 bearer tokens.
type TokenVerifier struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

// NewTokenVerifier parses a PEM encoded RSA public key.
func NewTokenVerifier(publicKeyPEM string) (*TokenVerifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &TokenVerifier{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
		),
		keyFn: func(*jwt.Token) (any, error) { return key, nil },
	}, nil
}

// Verify returns the token subject. Every failure is ErrUnauthorized.
func (v *TokenVerifier) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	if _, err := v.parser.ParseWithClaims(token, &claims, v.keyFn); err != nil {
		return "", serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return "", serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return claims.Subject, nil
}

// Subject returns the authenticated subject stored by WithBearerAuth.
func Subject(ctx context.Context) string {
	s, _ := ctx.Value(SubjectKey).(string)

	return s
}

const (
	MessageMissingToken = "Missing bearer token"
	MessageInvalidToken = "Invalid bearer token"
)

// Authenticate verifies the bearer token of r and returns r's context
// carrying the token subject. A nil verifier accepts every request. Failures
// are ErrUnauthorized with a user-facing message.
func (v *TokenVerifier) Authenticate(r *http.Request) (context.Context, error) {
	if v == nil {
		return r.Context(), nil
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, MessageMissingToken)
	}

	subject, err := v.Verify(strings.TrimSpace(token))
	if err != nil {
		logger.Info(r.Context(), "rejected bearer token", zap.Error(err))

		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, MessageInvalidToken)
	}

	ctx := context.WithValue(r.Context(), SubjectKey, subject)

	return logger.WithFields(ctx, zap.String(string(SubjectKey), subject)), nil
}

// WithBearerAuth rejects requests without a valid bearer token. A nil
// verifier disables authentication.
func WithBearerAuth(v *TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if v == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)

				return
			}

			ctx, err := v.Authenticate(r)
			if err != nil {
				WriteJSONError(w, http.StatusUnauthorized, serrors.MessageOf(err))

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
