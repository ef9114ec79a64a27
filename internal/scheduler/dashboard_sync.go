package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/jgm-source/cliente-davi-gomez/internal/config"
	"github.com/jgm-source/cliente-davi-gomez/internal/domain"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/dashboarding"
	"github.com/jgm-source/cliente-davi-gomez/pkg/utils"
)

// DashboardSyncConfig representa a configuração do agendador do painel
type DashboardSyncConfig struct {
	PollInterval time.Duration
}

// DashboardSyncService gerencia as sessões de painel por conta: cada sessão
// mantém o snapshot agregado fresco via polling periódico e aceita
// atualização manual coalescida.
type DashboardSyncService struct {
	dashboards dashboarding.Dashboarder
	config     DashboardSyncConfig

	mu       sync.Mutex
	sessions map[string]*DashboardSession
	appCtx   context.Context
}

// NewDashboardSyncService cria uma nova instância do serviço de sessões do painel
func NewDashboardSyncService(
	dashboards dashboarding.Dashboarder,
	appConfig *config.Config,
) *DashboardSyncService {
	syncConfig := DashboardSyncConfig{
		PollInterval: appConfig.Dashboard.PollInterval(),
	}

	logrus.WithFields(logrus.Fields{
		"poll_interval": syncConfig.PollInterval.String(),
	}).Info("Configuração do agendador do painel carregada")

	return &DashboardSyncService{
		dashboards: dashboards,
		config:     syncConfig,
		sessions:   make(map[string]*DashboardSession),
	}
}

// Start registra o contexto de vida da aplicação; quando ele é cancelado,
// todas as sessões são encerradas e nenhum tick posterior dispara.
func (s *DashboardSyncService) Start(ctx context.Context) error {
	s.mu.Lock()
	s.appCtx = ctx
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		logrus.Info("Encerrando sessões de painel")
		s.Shutdown()
	}()

	return nil
}

// Session retorna a sessão ativa da conta, ativando uma nova quando
// necessário. A ativação dispara uma primeira atualização imediata, que
// corre fora da seção crítica do serviço: uma conta com ativação lenta não
// segura as operações das demais.
func (s *DashboardSyncService) Session(accountID string) *DashboardSession {
	s.mu.Lock()

	if session, ok := s.sessions[accountID]; ok && session.isActive() {
		s.mu.Unlock()
		return session
	}

	ctx := s.appCtx
	if ctx == nil {
		ctx = context.Background()
	}

	session := newDashboardSession(ctx, accountID, s.dashboards, s.config.PollInterval)
	s.sessions[accountID] = session
	s.mu.Unlock()

	session.activate()

	return session
}

// Deactivate encerra a sessão da conta, se houver
func (s *DashboardSyncService) Deactivate(accountID string) bool {
	s.mu.Lock()
	session, ok := s.sessions[accountID]
	if ok {
		delete(s.sessions, accountID)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}

	session.Deactivate()
	return true
}

// Shutdown encerra todas as sessões ativas
func (s *DashboardSyncService) Shutdown() {
	s.mu.Lock()
	sessions := make([]*DashboardSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.sessions = make(map[string]*DashboardSession)
	s.mu.Unlock()

	for _, session := range sessions {
		session.Deactivate()
	}
}

// GetStatus retorna o status atual do agendador
func (s *DashboardSyncService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"poll_interval":   s.config.PollInterval.String(),
		"active_sessions": len(s.sessions),
	}
}

// DashboardSession é a sessão de painel de uma conta. Todas as mutações do
// snapshot passam pelo mutex; atualizações sobrepostas são coalescidas pelo
// flag refreshRunning, no mesmo padrão dos agendadores de sincronização.
//
// Toda atualização (ativação, tick periódico ou disparo manual) corre no
// contexto de vida da sessão, nunca no contexto da requisição HTTP que a
// solicitou: a resposta 202 é enviada antes de a leitura terminar.
type DashboardSession struct {
	id           string
	accountID    string
	dashboards   dashboarding.Dashboarder
	lifecycle    context.Context
	pollInterval time.Duration

	mu             sync.Mutex
	scheduler      *gocron.Scheduler
	state          domain.DashboardState
	snapshot       *domain.DashboardSnapshot
	refreshRunning bool
	active         bool
}

func newDashboardSession(
	ctx context.Context,
	accountID string,
	dashboards dashboarding.Dashboarder,
	pollInterval time.Duration,
) *DashboardSession {
	sessionID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar ID de sessão do painel")
		sessionID = "--------"
	}

	logrus.WithFields(logrus.Fields{
		"session_id": sessionID,
		"account_id": accountID,
	}).Info("Sessão de painel ativada")

	return &DashboardSession{
		id:           sessionID,
		accountID:    accountID,
		dashboards:   dashboards,
		lifecycle:    ctx,
		pollInterval: pollInterval,
		state:        domain.DashboardStateIdle,
		active:       true,
	}
}

// activate dispara a primeira atualização e liga o polling periódico
func (d *DashboardSession) activate() {
	d.Refresh(d.lifecycle)

	scheduler := gocron.NewScheduler(time.Local)
	if _, err := scheduler.Every(d.pollInterval).Do(func() {
		d.Refresh(d.lifecycle)
	}); err != nil {
		logrus.WithError(err).Error("Erro ao agendar atualização periódica do painel")
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// A sessão pode ter sido encerrada durante a primeira atualização
	if !d.active {
		return
	}

	d.scheduler = scheduler
	scheduler.StartAsync()
}

// Refresh recomputa o snapshot do painel. Uma atualização já em andamento
// faz a nova solicitação ser ignorada; uma sessão encerrada descarta o
// resultado de leituras que ainda estavam em voo.
func (d *DashboardSession) Refresh(ctx context.Context) {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return
	}
	if d.refreshRunning {
		logrus.WithFields(logrus.Fields{
			"session_id": d.id,
			"account_id": d.accountID,
		}).Info("Atualização do painel já em andamento, ignorando")
		d.mu.Unlock()
		return
	}
	d.refreshRunning = true
	d.state = domain.DashboardStateRefreshing
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.refreshRunning = false
		d.mu.Unlock()
	}()

	counts, err := d.dashboards.DayCounts(ctx, d.accountID, time.Now())

	var hasCredentials bool
	if err == nil {
		hasCredentials, err = d.dashboards.HasCredentials(ctx)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	// Resultado atrasado depois do encerramento da sessão é descartado
	if !d.active {
		return
	}

	if err != nil {
		// Mantém o último snapshot válido na tela; degradação silenciosa
		d.state = domain.DashboardStateUnavailable
		logrus.WithFields(logrus.Fields{
			"session_id": d.id,
			"account_id": d.accountID,
			"error":      err.Error(),
		}).Error("Erro ao atualizar o painel de eventos")
		return
	}

	d.snapshot = &domain.DashboardSnapshot{
		LeadCount:       counts.LeadCount,
		ConversionCount: counts.ConversionCount,
		HasCredentials:  hasCredentials,
		LastRefreshedAt: time.Now(),
	}
	d.state = domain.DashboardStateRefreshed

	logrus.Debugf("Snapshot do painel %s atualizado: %s", d.id, utils.PrettyJson(d.snapshot))
}

// TriggerRefresh inicia manualmente uma atualização do painel, no contexto
// de vida da sessão. Retorna falso quando a solicitação foi coalescida com
// uma atualização em andamento.
func (d *DashboardSession) TriggerRefresh() bool {
	d.mu.Lock()
	if !d.active || d.refreshRunning {
		d.mu.Unlock()
		logrus.WithFields(logrus.Fields{
			"session_id": d.id,
			"account_id": d.accountID,
		}).Info("Ignorando solicitação manual de atualização do painel")
		return false
	}
	d.mu.Unlock()

	go d.Refresh(d.lifecycle)
	return true
}

// Snapshot retorna o estado da sessão e uma cópia do último snapshot válido
func (d *DashboardSession) Snapshot() *domain.DashboardResponse {
	d.mu.Lock()
	defer d.mu.Unlock()

	response := &domain.DashboardResponse{State: d.state}

	if d.snapshot != nil {
		snapshot := *d.snapshot
		snapshot.IsRefreshing = d.refreshRunning
		response.Snapshot = &snapshot
	}

	return response
}

// Deactivate encerra a sessão: para o polling e garante que nenhuma leitura
// em voo mute o estado depois do encerramento
func (d *DashboardSession) Deactivate() {
	d.mu.Lock()
	if !d.active {
		d.mu.Unlock()
		return
	}
	d.active = false
	d.state = domain.DashboardStateDeactivated
	d.snapshot = nil
	scheduler := d.scheduler
	d.mu.Unlock()

	if scheduler != nil {
		scheduler.Stop()
	}

	logrus.WithFields(logrus.Fields{
		"session_id": d.id,
		"account_id": d.accountID,
	}).Info("Sessão de painel encerrada")
}

func (d *DashboardSession) isActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}
