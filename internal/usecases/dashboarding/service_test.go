package dashboarding_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/repository/mocks"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/dashboarding"
)

func TestDayCountsUsaInicioDoDiaNoFusoConfigurado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 30/08/2026 01:30 UTC ainda é 29/08 em São Paulo
	asOf := time.Date(2026, 8, 30, 1, 30, 0, 0, time.UTC)
	expectedDayStart := time.Date(2026, 8, 29, 0, 0, 0, 0, saoPaulo)

	eventRepo := mocks.NewMockEventRepository(ctrl)
	eventRepo.EXPECT().
		CountSuccessfulByType(gomock.Any(), "conta-1", domain.EventTypeLead, gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID string, eventType domain.EventType, since time.Time) (int, error) {
			assert.True(t, since.Equal(expectedDayStart), "esperava %s, recebeu %s", expectedDayStart, since)
			return 4, nil
		})
	eventRepo.EXPECT().
		CountSuccessfulByType(gomock.Any(), "conta-1", domain.EventTypeConversion, gomock.Any()).
		DoAndReturn(func(ctx context.Context, accountID string, eventType domain.EventType, since time.Time) (int, error) {
			assert.True(t, since.Equal(expectedDayStart))
			return 2, nil
		})

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	service := dashboarding.NewService(eventRepo, credentialRepo, saoPaulo, 5)

	counts, err := service.DayCounts(context.Background(), "conta-1", asOf)
	require.NoError(t, err)
	assert.Equal(t, 4, counts.LeadCount)
	assert.Equal(t, 2, counts.ConversionCount)
}

func TestDayCountsSemEventos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	eventRepo.EXPECT().
		CountSuccessfulByType(gomock.Any(), "conta-1", domain.EventTypeLead, gomock.Any()).
		Return(0, nil)
	eventRepo.EXPECT().
		CountSuccessfulByType(gomock.Any(), "conta-1", domain.EventTypeConversion, gomock.Any()).
		Return(0, nil)

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	service := dashboarding.NewService(eventRepo, credentialRepo, time.UTC, 5)

	counts, err := service.DayCounts(context.Background(), "conta-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, counts.LeadCount)
	assert.Equal(t, 0, counts.ConversionCount)
}

func TestDayCountsPropagaErroDoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	eventRepo.EXPECT().
		CountSuccessfulByType(gomock.Any(), "conta-1", domain.EventTypeLead, gomock.Any()).
		Return(0, errors.New("conexão recusada"))

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	service := dashboarding.NewService(eventRepo, credentialRepo, time.UTC, 5)

	_, err := service.DayCounts(context.Background(), "conta-1", time.Now())
	require.Error(t, err)
}

func TestHasCredentials(t *testing.T) {
	tests := []struct {
		name       string
		credential *domain.Credential
		expected   bool
	}{
		{name: "com registro", credential: &domain.Credential{ID: 1}, expected: true},
		{name: "sem registro", credential: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			eventRepo := mocks.NewMockEventRepository(ctrl)
			credentialRepo := mocks.NewMockCredentialRepository(ctrl)
			credentialRepo.EXPECT().Get(gomock.Any()).Return(tt.credential, nil)

			service := dashboarding.NewService(eventRepo, credentialRepo, time.UTC, 5)

			hasCredentials, err := service.HasCredentials(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hasCredentials)
		})
	}
}

func TestRecentActivityRespeitaLimite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	events := []*domain.Event{
		{ID: 10, EventType: domain.EventTypeLead, Status: domain.EventStatusSuccess, EventName: "Lead"},
		{ID: 9, EventType: domain.EventTypeConversion, Status: domain.EventStatusFailed, EventName: "Purchase"},
	}

	eventRepo := mocks.NewMockEventRepository(ctrl)
	eventRepo.EXPECT().
		ListRecent(gomock.Any(), "conta-1", 5).
		Return(events, nil)

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	service := dashboarding.NewService(eventRepo, credentialRepo, time.UTC, 5)

	recent, err := service.RecentActivity(context.Background(), "conta-1")
	require.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, int64(10), recent[0].ID)
}

func TestRecentActivitySemEventosRetornaListaVazia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := mocks.NewMockEventRepository(ctrl)
	eventRepo.EXPECT().
		ListRecent(gomock.Any(), "conta-1", 5).
		Return(nil, nil)

	credentialRepo := mocks.NewMockCredentialRepository(ctrl)
	service := dashboarding.NewService(eventRepo, credentialRepo, time.UTC, 5)

	recent, err := service.RecentActivity(context.Background(), "conta-1")
	require.NoError(t, err)
	assert.NotNil(t, recent)
	assert.Empty(t, recent)
}
