package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/jgm-source/cliente-davi-gomez/internal/scheduler"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/dashboarding"
	"github.com/jgm-source/cliente-davi-gomez/pkg/apiErrors"
	"github.com/jgm-source/cliente-davi-gomez/pkg/middleware"
)

// GetDashboard ativa (ou reaproveita) a sessão de painel da conta e retorna
// o estado com o último snapshot válido. O primeiro acesso dispara a
// atualização inicial antes de responder.
func GetDashboard(syncService *scheduler.DashboardSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		session := syncService.Session(claims.AccountID)
		response := session.Snapshot()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// RefreshDashboard dispara manualmente uma atualização do painel. Uma
// atualização já em andamento absorve a solicitação.
func RefreshDashboard(syncService *scheduler.DashboardSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		session := syncService.Session(claims.AccountID)

		// A atualização corre no contexto de vida da sessão: a resposta 202
		// volta antes de a leitura terminar e o cancelamento da requisição
		// não pode derrubar o refresh
		message := "Atualização do painel iniciada"
		if !session.TriggerRefresh() {
			message = "Atualização do painel já em andamento"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)

		if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta da atualização do painel")
		}
	})
}

// GetRecentEvents retorna a janela de atividade recente da conta. A lista é
// re-consultada a cada chamada, nunca servida do snapshot.
func GetRecentEvents(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		events, err := service.RecentActivity(r.Context(), claims.AccountID)
		if err != nil {
			logrus.Error("Error listing recent events:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar eventos recentes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(events); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// DeactivateDashboard encerra a sessão de painel da conta; o polling para e
// leituras em voo são descartadas
func DeactivateDashboard(syncService *scheduler.DashboardSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		message := "Sessão de painel encerrada"
		if !syncService.Deactivate(claims.AccountID) {
			message = "Nenhuma sessão de painel ativa para a conta"
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(map[string]string{"message": message}); err != nil {
			logrus.WithError(err).Error("Erro ao codificar resposta do encerramento do painel")
		}
	})
}

// GetDashboardStatus retorna o status do agendador de sessões do painel
func GetDashboardStatus(syncService *scheduler.DashboardSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := syncService.GetStatus()

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(status); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
