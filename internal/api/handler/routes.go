package handler

import (
	"net/http"

	"github.com/vfg2006/ads-health-monitor/internal/api/handler/router"
	"github.com/vfg2006/ads-health-monitor/internal/usecases/auditing"
	"github.com/vfg2006/ads-health-monitor/pkg/middleware"
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

func Audits(auditor auditing.Auditor, runner AuditRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/audits/run",
			Method:      http.MethodPost,
			Handler:     RunAudit(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.OperatorOnly()},
		},
		{
			Path:        "/v1/audits/latest",
			Method:      http.MethodGet,
			Handler:     GetLatestReport(auditor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/audits",
			Method:      http.MethodGet,
			Handler:     ListReports(auditor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(runner AuditRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
