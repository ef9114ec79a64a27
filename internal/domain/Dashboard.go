package domain

import "time"

// DashboardState é o estado da sessão de painel de uma conta
type DashboardState string

const (
	DashboardStateIdle        DashboardState = "idle"
	DashboardStateRefreshing  DashboardState = "refreshing"
	DashboardStateRefreshed   DashboardState = "refreshed"
	DashboardStateUnavailable DashboardState = "unavailable"
	DashboardStateDeactivated DashboardState = "deactivated"
)

// DashboardSnapshot é a visão derivada e efêmera exibida no painel.
// Recalculada a cada ciclo de polling ou atualização manual; descartada
// quando a sessão é encerrada.
type DashboardSnapshot struct {
	LeadCount       int       `json:"lead_count"`
	ConversionCount int       `json:"conversion_count"`
	HasCredentials  bool      `json:"has_credentials"`
	LastRefreshedAt time.Time `json:"last_refreshed_at"`
	IsRefreshing    bool      `json:"is_refreshing"`
}

// DashboardResponse combina o estado da sessão com o último snapshot válido
type DashboardResponse struct {
	State    DashboardState     `json:"state"`
	Snapshot *DashboardSnapshot `json:"snapshot,omitempty"`
}
