package httpadapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"foodshare/internal/core/domain"
)

type contextKey string

const actorContextKey = contextKey("actor")

// TokenClaims is the payload of the access tokens issued by the account
// service.
type TokenClaims struct {
	ID           string `json:"id"`
	Role         string `json:"role,omitempty"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}

// authenticate verifies the bearer token and resolves it into an actor
// against the stored user, so revoked tokens and blocked accounts are
// rejected even while the token itself is still valid.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get("Authorization"))
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
		if raw == "" {
			h.writeError(w, r, fmt.Errorf("%w: authorization token missing", domain.ErrUnauthenticated))
			return
		}

		claims, err := h.parseToken(raw)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: invalid or expired token", domain.ErrUnauthenticated))
			return
		}

		actor, err := h.svc.Auth.ResolveActor(r.Context(), claims.ID, claims.TokenVersion)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorContextKey, actor)))
	})
}

func (h *Handler) parseToken(raw string) (*TokenClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if h.opts.JWTIssuer != "" {
		opts = append(opts, jwt.WithIssuer(h.opts.JWTIssuer))
	}
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(h.opts.JWTSecret), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("token carries no user id")
	}
	return claims, nil
}

// actorFrom returns the actor stored by authenticate.
func actorFrom(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorContextKey).(domain.Actor)
	return actor
}
