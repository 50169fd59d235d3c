package handler

import (
	"net/http"

	"github.com/vfg2006/business-overview-api/internal/api/handler/router"
	"github.com/vfg2006/business-overview-api/internal/usecases/overview"
)

const sessionPath = "/v1/overview/sessions/:id"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Overview retorna as rotas do formulário de visão geral do negócio
func Overview(service overview.OverviewService) []router.Route {
	return []router.Route{
		{Path: "/v1/overview/options", Method: http.MethodGet, Handler: GetOptions()},
		{Path: "/v1/overview/sessions", Method: http.MethodPost, Handler: CreateSession(service)},
		{Path: sessionPath, Method: http.MethodGet, Handler: GetSnapshot(service)},
		{Path: sessionPath, Method: http.MethodDelete, Handler: EndSession(service)},
		{Path: sessionPath + "/fields/:field", Method: http.MethodPut, Handler: SetField(service)},

		{Path: sessionPath + "/employees", Method: http.MethodPost, Handler: AppendEmployee(service)},
		{Path: sessionPath + "/employees/:index", Method: http.MethodDelete, Handler: RemoveEmployee(service)},
		{Path: sessionPath + "/employees/:index/:field", Method: http.MethodPut, Handler: SetEmployeeField(service)},

		{Path: sessionPath + "/clients", Method: http.MethodPost, Handler: AppendClient(service)},
		{Path: sessionPath + "/clients/:index", Method: http.MethodDelete, Handler: RemoveClient(service)},
		{Path: sessionPath + "/clients/:index/:field", Method: http.MethodPut, Handler: SetClientField(service)},

		{Path: sessionPath + "/submit", Method: http.MethodPost, Handler: Submit(service)},
	}
}

func CronJobs(cleanup CleanupStatus) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(cleanup),
		},
	}
}
