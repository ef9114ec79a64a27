package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/credentialing"
	"github.com/jgm-source/cliente-davi-gomez/pkg/apiErrors"
)

// GetCredentials retorna o registro de credenciais para a tela de
// configuração. Com ?reveal=true o access token sai em claro.
func GetCredentials(service credentialing.ConfigurationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reveal := r.URL.Query().Get("reveal") == "true"

		response, err := service.GetCredentials(r.Context(), reveal)
		if err != nil {
			logrus.Error("Error fetching credentials:", err)
			writeCredentialError(w, err, "Erro ao buscar credenciais")
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// SaveCredentials valida e persiste os campos editáveis da credencial
func SaveCredentials(service credentialing.ConfigurationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.SaveCredentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		saved, err := service.SaveCredentials(r.Context(), &request)
		if err != nil {
			logrus.Error("Error saving credentials:", err)
			writeCredentialError(w, err, "Erro ao salvar credenciais")
			return
		}

		response := domain.SaveCredentialsResponse{
			Message:    "Configurações salvas com sucesso!",
			Credential: saved,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// CopyCredentialValue entrega o valor bruto de um campo copiável
// (?field=access_token ou ?field=webhook)
func CopyCredentialValue(service credentialing.ConfigurationService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		field := r.URL.Query().Get("field")
		if field == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo para cópia não especificado", nil)
			return
		}

		value, err := service.CopyValue(r.Context(), field)
		if err != nil {
			// Valor ausente é uma condição esperada da tela, não vai para o log de erros
			if !errors.Is(err, credentialing.ErrNothingToCopy) &&
				!errors.Is(err, credentialing.ErrNotConfigured) {
				logrus.Error("Error copying credential value:", err)
			}
			writeCredentialError(w, err, "Erro ao copiar valor")
			return
		}

		response := domain.CopyValueResponse{
			Field: field,
			Value: value,
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// writeCredentialError traduz erros do caso de uso para a resposta da API
func writeCredentialError(w http.ResponseWriter, err error, fallback string) {
	var credErr *credentialing.CredentialError
	if errors.As(err, &credErr) {
		var details any
		if credErr.Field != "" {
			details = map[string]string{"field": credErr.Field}
		}
		apiErrors.WriteError(w, credErr.Code, credErr.Error(), details)
		return
	}

	// Erros inesperados saem com a mensagem amigável e a causa nos detalhes
	apiErr := apiErrors.FromError(err, apiErrors.ErrInternalServer)
	apiErrors.WriteError(w, apiErr.Code, fallback, map[string]string{"cause": apiErr.Message})
}
