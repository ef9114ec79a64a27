package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as credenciais de sessão emitidas pelo provedor de identidade
// externo. AccountID delimita o escopo de conta de todas as leituras.
type Claims struct {
	AccountID    string `json:"account_id"`
	AccountEmail string `json:"email"`
	jwt.RegisteredClaims
}
