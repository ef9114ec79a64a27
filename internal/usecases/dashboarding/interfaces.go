package dashboarding

import (
	"context"
	"time"

	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
)

// Dashboarder define as leituras agregadas consumidas pelo painel de eventos
type Dashboarder interface {
	// DayCounts conta os eventos de lead e conversão enviados com sucesso no
	// dia corrente de asOf, no fuso horário de referência da instalação
	DayCounts(ctx context.Context, accountID string, asOf time.Time) (*domain.EventCounts, error)

	// HasCredentials informa se já existe um registro de credenciais
	// (existência apenas; a validade dos campos não é checada aqui)
	HasCredentials(ctx context.Context) (bool, error)

	// RecentActivity retorna os eventos mais recentes da conta, limitados à
	// janela de atividade configurada
	RecentActivity(ctx context.Context, accountID string) ([]*domain.Event, error)
}
