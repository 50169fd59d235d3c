package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/vfg2006/business-overview-api/internal/domain"
	"github.com/vfg2006/business-overview-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-overview-api/pkg/apiErrors"
	"github.com/vfg2006/business-overview-api/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"

	// Token renovado a cada requisição autenticada; o cliente deve passar a usá-lo
	HeaderSessionToken          = "X-Session-Token"
	HeaderSessionTokenExpiresAt = "X-Session-Token-Expires-At"
)

// Rotas que não exigem token de sessão
var publicRoutes = map[string]string{
	"/healthcheck":          http.MethodGet,
	"/v1/overview/sessions": http.MethodPost,
	"/v1/overview/options":  http.MethodGet,
	"/v1/cron/status":       http.MethodGet,
}

func isPublic(r *http.Request) bool {
	method, ok := publicRoutes[r.URL.Path]
	return ok && method == r.Method
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de sessão inválido", nil)
				return
			}

			refreshToken(w, r, authService, claims)

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionClaims devolve as claims colocadas no contexto pelo AuthMiddleware
func SessionClaims(ctx context.Context) (*domain.SessionClaims, bool) {
	claims, ok := ctx.Value(ContextKeySession).(*domain.SessionClaims)
	return claims, ok
}

// refreshToken emite um novo token para a sessão do token recebido, acompanhando a
// expiração por ociosidade da sessão. Falha na emissão mantém o token atual.
func refreshToken(w http.ResponseWriter, r *http.Request, authService authenticating.Authenticator, claims *domain.SessionClaims) {
	token, expiresAt, err := authService.IssueToken(claims.SessionID)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).WithField("session_id", claims.SessionID).Warn("Não foi possível renovar o token da sessão")
		return
	}

	w.Header().Set(HeaderSessionToken, token)
	w.Header().Set(HeaderSessionTokenExpiresAt, expiresAt.UTC().Format(time.RFC3339))
}
