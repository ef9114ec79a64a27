package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/authenticating"
	"github.com/jgm-source/cliente-davi-gomez/pkg/apiErrors"
	"github.com/jgm-source/cliente-davi-gomez/pkg/log"
)

type contextKeyUser string

// ContextKeyUser é a chave usada para as claims autenticadas no contexto
const ContextKeyUser contextKeyUser = "user"

// Rotas que não exigem autenticação
var openPaths = map[string]bool{
	"/healthcheck": true,
}

// AuthMiddleware valida o token Bearer e injeta as claims no contexto da
// requisição. Requisições OPTIONS passam direto para o CORS responder.
func AuthMiddleware(authenticator authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || openPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de autenticação ausente", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Formato do cabeçalho de autorização inválido", nil)
				return
			}

			claims, err := authenticator.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token rejeitado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
