package credentialing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de credenciais
var (
	// Erros de validação (resolvidos antes de qualquer escrita no banco)
	ErrPixelIDRequired     = errors.New("Pixel ID é obrigatório")
	ErrAccessTokenRequired = errors.New("Access Token é obrigatório")
	ErrPixelIDNotNumeric   = errors.New("Pixel ID deve ser numérico")
	ErrPageIDNotNumeric    = errors.New("Page ID deve ser numérico")

	// Condições normais de configuração
	ErrNotConfigured = errors.New("credenciais ainda não cadastradas")
	ErrNothingToCopy = errors.New("nenhum valor disponível para copiar")
	ErrUnknownField  = errors.New("campo desconhecido para cópia")

	// Erros de banco de dados
	ErrFetchCredentials = errors.New("erro ao buscar credenciais no banco de dados")
	ErrSaveCredentials  = errors.New("erro ao salvar credenciais no banco de dados")
)

// CredentialError é um erro com contexto adicional para credenciais
type CredentialError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Field   string // Campo envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CredentialError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CredentialError) Unwrap() error {
	return e.Err
}

// NewCredentialError cria um novo CredentialError
func NewCredentialError(err error, code string, details string) *CredentialError {
	return &CredentialError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewFieldError cria um CredentialError de validação apontando o campo
func NewFieldError(err error, code string, field string) *CredentialError {
	return &CredentialError{
		Err:   err,
		Code:  code,
		Field: field,
	}
}
