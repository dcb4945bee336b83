package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/expense-insights-api/internal/api/handler/router"
	"github.com/vfg2006/expense-insights-api/internal/usecases/insighting"
)

const (
	HealthPath   = "/api/health"
	InsightsPath = "/api/insights"
	RootPath     = "/"
)

func Healthcheck(serviceName string) []router.Route {
	return []router.Route{
		{
			Path:    HealthPath,
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(serviceName, time.Now),
		},
	}
}

// Insights registra o POST na raiz (contrato original do app) e em /api/insights.
// authMiddlewares fica vazio quando a autenticação está desligada.
func Insights(service insighting.Insighter, authMiddlewares ...func(http.Handler) http.Handler) []router.Route {
	return []router.Route{
		{
			Path:        RootPath,
			Method:      http.MethodPost,
			Handler:     GenerateInsight(service),
			Middlewares: authMiddlewares,
		},
		{
			Path:        InsightsPath,
			Method:      http.MethodPost,
			Handler:     GenerateInsight(service),
			Middlewares: authMiddlewares,
		},
	}
}
