package handler

import (
	"net/http"

	"github.com/mmisra/sales-dashboard-api/internal/api/handler/router"
	"github.com/mmisra/sales-dashboard-api/internal/scheduler"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/authenticating"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/dashboarding"
	"github.com/mmisra/sales-dashboard-api/internal/usecases/presetting"
	"github.com/mmisra/sales-dashboard-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

// Dashboard read endpoints stay open; the dashboard is a single-user tool
// and only dataset administration requires a session.
func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service),
		},
		{
			Path:    "/v1/dashboard/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

func Dataset(service dashboarding.Dashboarder, refreshService *scheduler.DatasetRefreshService, auth authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(service, refreshService),
		},
		{
			Path:    "/v1/dataset/reload",
			Method:  http.MethodPost,
			Handler: ReloadDataset(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.RequireAuth(auth),
				middleware.AdminOnly(),
			},
		},
	}
}

func Presets(service presetting.PresetService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/presets",
			Method:  http.MethodGet,
			Handler: ListPresets(service),
		},
		{
			Path:    "/v1/presets",
			Method:  http.MethodPost,
			Handler: CreatePreset(service),
		},
		{
			Path:    "/v1/presets/:id",
			Method:  http.MethodGet,
			Handler: GetPreset(service),
		},
		{
			Path:    "/v1/presets/:id",
			Method:  http.MethodDelete,
			Handler: DeletePreset(service),
		},
	}
}
