package credentialing_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/repository/mocks"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/credentialing"
	"github.com/jgm-source/cliente-davi-gomez/pkg/apiErrors"
)

func TestSaveCredentialsValidacao(t *testing.T) {
	tests := []struct {
		name         string
		request      *domain.SaveCredentialsRequest
		expectedErr  error
		expectedCode string
		field        string
	}{
		{
			name:         "pixel_id ausente",
			request:      &domain.SaveCredentialsRequest{AccessToken: "EAAtoken"},
			expectedErr:  credentialing.ErrPixelIDRequired,
			expectedCode: apiErrors.ErrMissingRequiredData,
			field:        "pixel_id",
		},
		{
			name:         "pixel_id em branco",
			request:      &domain.SaveCredentialsRequest{PixelID: "   ", AccessToken: "EAAtoken"},
			expectedErr:  credentialing.ErrPixelIDRequired,
			expectedCode: apiErrors.ErrMissingRequiredData,
			field:        "pixel_id",
		},
		{
			name:         "access_token ausente",
			request:      &domain.SaveCredentialsRequest{PixelID: "123456"},
			expectedErr:  credentialing.ErrAccessTokenRequired,
			expectedCode: apiErrors.ErrMissingRequiredData,
			field:        "access_token",
		},
		{
			name:         "pixel_id não numérico",
			request:      &domain.SaveCredentialsRequest{PixelID: "abc123", AccessToken: "EAAtoken"},
			expectedErr:  credentialing.ErrPixelIDNotNumeric,
			expectedCode: apiErrors.ErrInvalidFormat,
			field:        "pixel_id",
		},
		{
			name:         "page_id não numérico",
			request:      &domain.SaveCredentialsRequest{PixelID: "123456", PageID: "12x", AccessToken: "EAAtoken"},
			expectedErr:  credentialing.ErrPageIDNotNumeric,
			expectedCode: apiErrors.ErrInvalidFormat,
			field:        "page_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// Nenhuma chamada ao repositório: a validação barra antes
			credentialRepo := mocks.NewMockCredentialRepository(ctrl)
			service := credentialing.NewService(credentialRepo)

			_, err := service.SaveCredentials(context.Background(), tt.request)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)

			var credErr *credentialing.CredentialError
			require.ErrorAs(t, err, &credErr)
			assert.Equal(t, tt.expectedCode, credErr.Code)
			assert.Equal(t, tt.field, credErr.Field)
		})
	}
}

func TestSaveCredentialsInsereQuandoNaoHaRegistro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	credentialRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)
	credentialRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, credential *domain.Credential) (*domain.Credential, error) {
			assert.Equal(t, int64(123456), credential.PixelID)
			assert.Nil(t, credential.PageID)
			assert.Equal(t, "EAAtoken", credential.AccessToken)
			credential.ID = 1
			return credential, nil
		})

	service := credentialing.NewService(credentialRepo)

	saved, err := service.SaveCredentials(context.Background(), &domain.SaveCredentialsRequest{
		PixelID:     "123456",
		AccessToken: "EAAtoken",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
}

func TestSaveCredentialsAtualizaRegistroExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pageID := int64(777)
	existing := &domain.Credential{
		ID:               42,
		PixelID:          111,
		AccessToken:      "EAAantigo",
		WebhookURL:       "https://hooks.exemplo.com/abc",
		InstructionsLink: "https://docs.exemplo.com/instrucoes",
	}

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	credentialRepo.EXPECT().Get(gomock.Any()).Return(existing, nil)
	credentialRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, credential *domain.Credential) error {
			assert.Equal(t, int64(42), credential.ID)
			assert.Equal(t, int64(123456), credential.PixelID)
			require.NotNil(t, credential.PageID)
			assert.Equal(t, pageID, *credential.PageID)
			assert.Equal(t, "EAAnovo", credential.AccessToken)
			// Campos derivados não são tocados pela atualização
			assert.Equal(t, "https://hooks.exemplo.com/abc", credential.WebhookURL)
			assert.Equal(t, "https://docs.exemplo.com/instrucoes", credential.InstructionsLink)
			return nil
		})

	service := credentialing.NewService(credentialRepo)

	saved, err := service.SaveCredentials(context.Background(), &domain.SaveCredentialsRequest{
		PixelID:     "123456",
		PageID:      "777",
		AccessToken: "EAAnovo",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
}

func TestGetCredentialsNaoConfigurado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	credentialRepo.EXPECT().Get(gomock.Any()).Return(nil, nil)

	service := credentialing.NewService(credentialRepo)

	response, err := service.GetCredentials(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, response.Configured)
	assert.Empty(t, response.AccessToken)
}

func TestGetCredentialsMascaraToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pageID := int64(777)
	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	credentialRepo.EXPECT().Get(gomock.Any()).Return(&domain.Credential{
		ID:          1,
		PixelID:     123456,
		PageID:      &pageID,
		AccessToken: "EAAtokensecreto9876",
	}, nil)

	service := credentialing.NewService(credentialRepo)

	response, err := service.GetCredentials(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, response.Configured)
	assert.Equal(t, "123456", response.PixelID)
	assert.Equal(t, "777", response.PageID)
	assert.Equal(t, "****9876", response.AccessToken)
	assert.False(t, response.TokenRevealed)
}

func TestGetCredentialsRevelaToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	credentialRepo.EXPECT().Get(gomock.Any()).Return(&domain.Credential{
		ID:          1,
		PixelID:     123456,
		AccessToken: "EAAtokensecreto9876",
	}, nil)

	service := credentialing.NewService(credentialRepo)

	response, err := service.GetCredentials(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "EAAtokensecreto9876", response.AccessToken)
	assert.True(t, response.TokenRevealed)
}

func TestCopyValue(t *testing.T) {
	tests := []struct {
		name          string
		field         string
		credential    *domain.Credential
		expectedValue string
		expectedErr   error
		expectedCode  string
	}{
		{
			name:          "copia access_token",
			field:         credentialing.CopyFieldAccessToken,
			credential:    &domain.Credential{ID: 1, AccessToken: "EAAtoken"},
			expectedValue: "EAAtoken",
		},
		{
			name:          "copia webhook",
			field:         credentialing.CopyFieldWebhook,
			credential:    &domain.Credential{ID: 1, AccessToken: "EAAtoken", WebhookURL: "https://hooks.exemplo.com/abc"},
			expectedValue: "https://hooks.exemplo.com/abc",
		},
		{
			name:         "webhook ausente",
			field:        credentialing.CopyFieldWebhook,
			credential:   &domain.Credential{ID: 1, AccessToken: "EAAtoken"},
			expectedErr:  credentialing.ErrNothingToCopy,
			expectedCode: apiErrors.ErrNothingToCopy,
		},
		{
			name:         "sem registro de credenciais",
			field:        credentialing.CopyFieldAccessToken,
			credential:   nil,
			expectedErr:  credentialing.ErrNotConfigured,
			expectedCode: apiErrors.ErrNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			credentialRepo := mocks.NewMockCredentialRepository(ctrl)
			credentialRepo.EXPECT().Get(gomock.Any()).Return(tt.credential, nil)

			service := credentialing.NewService(credentialRepo)

			value, err := service.CopyValue(context.Background(), tt.field)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)

				var credErr *credentialing.CredentialError
				require.ErrorAs(t, err, &credErr)
				assert.Equal(t, tt.expectedCode, credErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestCopyValueCampoDesconhecido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Campo inválido é rejeitado antes de consultar o repositório
	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	service := credentialing.NewService(credentialRepo)

	_, err := service.CopyValue(context.Background(), "pixel_id")
	require.Error(t, err)
	assert.ErrorIs(t, err, credentialing.ErrUnknownField)
}

func TestSaveCredentialsErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	credentialRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("conexão recusada"))

	service := credentialing.NewService(credentialRepo)

	_, err := service.SaveCredentials(context.Background(), &domain.SaveCredentialsRequest{
		PixelID:     "123456",
		AccessToken: "EAAtoken",
	})
	require.Error(t, err)

	var credErr *credentialing.CredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, credErr.Code)
}
