package dashboarding

import (
	"context"
	"time"

	"github.com/jgm-source/cliente-davi-gomez/infrastructure/repository"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/pkg/utils"
)

type Service struct {
	eventRepo      repository.EventRepository
	credentialRepo repository.CredentialRepository
	location       *time.Location
	recentLimit    int
}

func NewService(
	eventRepo repository.EventRepository,
	credentialRepo repository.CredentialRepository,
	location *time.Location,
	recentLimit int,
) Dashboarder {
	return &Service{
		eventRepo:      eventRepo,
		credentialRepo: credentialRepo,
		location:       location,
		recentLimit:    recentLimit,
	}
}

// DayCounts computa os totais do dia por tipo de evento. Somente leitura:
// zero linhas resulta em {0, 0}, nunca em erro. Tipos de evento fora de
// lead/conversão ficam fora das duas contagens pelo próprio filtro.
func (s *Service) DayCounts(ctx context.Context, accountID string, asOf time.Time) (*domain.EventCounts, error) {
	dayStart := utils.StartOfDay(asOf, s.location)

	leadCount, err := s.eventRepo.CountSuccessfulByType(ctx, accountID, domain.EventTypeLead, dayStart)
	if err != nil {
		return nil, err
	}

	conversionCount, err := s.eventRepo.CountSuccessfulByType(ctx, accountID, domain.EventTypeConversion, dayStart)
	if err != nil {
		return nil, err
	}

	return &domain.EventCounts{
		LeadCount:       leadCount,
		ConversionCount: conversionCount,
	}, nil
}

// HasCredentials checa a existência do registro de credenciais
func (s *Service) HasCredentials(ctx context.Context) (bool, error) {
	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		return false, err
	}

	return credential != nil, nil
}

// RecentActivity re-consulta a janela de atividade a cada chamada; uma conta
// sem eventos produz uma lista vazia
func (s *Service) RecentActivity(ctx context.Context, accountID string) ([]*domain.Event, error) {
	events, err := s.eventRepo.ListRecent(ctx, accountID, s.recentLimit)
	if err != nil {
		return nil, err
	}

	if events == nil {
		events = []*domain.Event{}
	}

	return events, nil
}
