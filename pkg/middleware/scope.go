package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/pkg/apiErrors"
)

// AccountScoped cria um middleware que exige uma sessão com escopo de conta.
// Rotas de painel e credenciais sempre operam na conta do token.
func AccountScoped() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if claims.AccountID == "" {
				logrus.Warningf("Acesso negado para sessão sem conta, email=%s", claims.AccountEmail)
				apiErrors.WriteError(w, apiErrors.ErrMissingAccountScope, "Sessão sem escopo de conta", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext extrai as claims autenticadas do contexto da requisição
func ClaimsFromContext(r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
