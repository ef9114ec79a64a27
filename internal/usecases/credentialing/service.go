package credentialing

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/repository"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/pkg/apiErrors"
)

// Campos aceitos pela operação de cópia
const (
	CopyFieldAccessToken = "access_token"
	CopyFieldWebhook     = "webhook"
)

// ConfigurationService é a fachada da tela de configuração: carrega e salva
// o registro de credenciais da Meta e entrega valores brutos para cópia.
type ConfigurationService interface {
	GetCredentials(ctx context.Context, reveal bool) (*domain.CredentialResponse, error)
	SaveCredentials(ctx context.Context, request *domain.SaveCredentialsRequest) (*domain.Credential, error)
	CopyValue(ctx context.Context, field string) (string, error)
}

type Service struct {
	credentialRepo repository.CredentialRepository
}

func NewService(credentialRepo repository.CredentialRepository) ConfigurationService {
	return &Service{
		credentialRepo: credentialRepo,
	}
}

// GetCredentials retorna a visão da credencial para a tela de configuração.
// Ausência de registro é o estado "não configurado", não um erro. O access
// token sai mascarado a menos que a revelação seja solicitada.
func (s *Service) GetCredentials(ctx context.Context, reveal bool) (*domain.CredentialResponse, error) {
	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais")
		return nil, NewCredentialError(ErrFetchCredentials, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if credential == nil {
		return &domain.CredentialResponse{Configured: false}, nil
	}

	response := &domain.CredentialResponse{
		Configured:       true,
		PixelID:          strconv.FormatInt(credential.PixelID, 10),
		AccessToken:      maskToken(credential.AccessToken),
		TokenRevealed:    reveal,
		WebhookURL:       credential.WebhookURL,
		InstructionsLink: credential.InstructionsLink,
	}

	if credential.PageID != nil {
		response.PageID = strconv.FormatInt(*credential.PageID, 10)
	}

	if reveal {
		response.AccessToken = credential.AccessToken
	}

	return response, nil
}

// SaveCredentials valida e persiste os campos editáveis. A escolha entre
// inserir e atualizar é feita pelo id do registro carregado previamente;
// webhook e link_instrucao nunca são tocados na atualização.
func (s *Service) SaveCredentials(ctx context.Context, request *domain.SaveCredentialsRequest) (*domain.Credential, error) {
	fields, err := s.validate(request)
	if err != nil {
		return nil, err
	}

	existing, err := s.credentialRepo.Get(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais antes do salvamento")
		return nil, NewCredentialError(ErrFetchCredentials, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if existing == nil {
		saved, err := s.credentialRepo.Insert(ctx, fields)
		if err != nil {
			logrus.WithError(err).Error("Erro ao inserir credenciais")
			return nil, NewCredentialError(ErrSaveCredentials, apiErrors.ErrDatabaseOperation, err.Error())
		}

		logrus.WithField("credential_id", saved.ID).Info("Credenciais cadastradas com sucesso")
		return saved, nil
	}

	// Atualização em lugar: mantém o id e os campos derivados do registro
	existing.PixelID = fields.PixelID
	existing.PageID = fields.PageID
	existing.AccessToken = fields.AccessToken

	if err := s.credentialRepo.Update(ctx, existing); err != nil {
		logrus.WithError(err).Error("Erro ao atualizar credenciais")
		return nil, NewCredentialError(ErrSaveCredentials, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithField("credential_id", existing.ID).Info("Credenciais atualizadas com sucesso")
	return existing, nil
}

// CopyValue entrega o valor bruto de um campo copiável. Valor ausente é uma
// condição reportada, não uma falha.
func (s *Service) CopyValue(ctx context.Context, field string) (string, error) {
	if field != CopyFieldAccessToken && field != CopyFieldWebhook {
		return "", NewFieldError(ErrUnknownField, apiErrors.ErrInvalidRequest, field)
	}

	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar credenciais para cópia")
		return "", NewCredentialError(ErrFetchCredentials, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if credential == nil {
		return "", NewFieldError(ErrNotConfigured, apiErrors.ErrNotConfigured, field)
	}

	var value string
	switch field {
	case CopyFieldAccessToken:
		value = credential.AccessToken
	case CopyFieldWebhook:
		value = credential.WebhookURL
	}

	if value == "" {
		return "", NewFieldError(ErrNothingToCopy, apiErrors.ErrNothingToCopy, field)
	}

	return value, nil
}

// validate aplica a checagem de campos obrigatórios antes de qualquer
// chamada de persistência e converte os identificadores numéricos. Entrada
// não numérica é rejeitada, nunca coagida para um valor sentinela.
func (s *Service) validate(request *domain.SaveCredentialsRequest) (*domain.Credential, error) {
	pixelIDInput := strings.TrimSpace(request.PixelID)
	pageIDInput := strings.TrimSpace(request.PageID)
	accessToken := strings.TrimSpace(request.AccessToken)

	if pixelIDInput == "" {
		return nil, NewFieldError(ErrPixelIDRequired, apiErrors.ErrMissingRequiredData, "pixel_id")
	}

	if accessToken == "" {
		return nil, NewFieldError(ErrAccessTokenRequired, apiErrors.ErrMissingRequiredData, "access_token")
	}

	pixelID, err := strconv.ParseInt(pixelIDInput, 10, 64)
	if err != nil {
		return nil, NewFieldError(ErrPixelIDNotNumeric, apiErrors.ErrInvalidFormat, "pixel_id")
	}

	credential := &domain.Credential{
		PixelID:     pixelID,
		AccessToken: accessToken,
	}

	if pageIDInput != "" {
		pageID, err := strconv.ParseInt(pageIDInput, 10, 64)
		if err != nil {
			return nil, NewFieldError(ErrPageIDNotNumeric, apiErrors.ErrInvalidFormat, "page_id")
		}
		credential.PageID = &pageID
	}

	return credential, nil
}

// maskToken preserva apenas os últimos 4 caracteres do access token
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
