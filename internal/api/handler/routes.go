package handler

import (
	"net/http"

	"github.com/jgm-source/cliente-davi-gomez/internal/api/handler/router"
	"github.com/jgm-source/cliente-davi-gomez/internal/scheduler"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/credentialing"
	"github.com/jgm-source/cliente-davi-gomez/internal/usecases/dashboarding"
	"github.com/jgm-source/cliente-davi-gomez/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Credentials(service credentialing.ConfigurationService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/credentials",
			Method:      http.MethodGet,
			Handler:     GetCredentials(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
		{
			Path:        "/v1/credentials",
			Method:      http.MethodPut,
			Handler:     SaveCredentials(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
		{
			Path:        "/v1/credentials/copy",
			Method:      http.MethodGet,
			Handler:     CopyCredentialValue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
	}
}

func Dashboard(
	syncService *scheduler.DashboardSyncService,
	dashboardService dashboarding.Dashboarder,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
		{
			Path:        "/v1/dashboard/events",
			Method:      http.MethodGet,
			Handler:     GetRecentEvents(dashboardService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodDelete,
			Handler:     DeactivateDashboard(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
		{
			Path:        "/v1/dashboard/status",
			Method:      http.MethodGet,
			Handler:     GetDashboardStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AccountScoped()},
		},
	}
}
