package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/expense-insights-api/internal/domain"
	"github.com/vfg2006/expense-insights-api/pkg/apiErrors"
)

func HealthcheckHandler(serviceName string, now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, domain.NewHealthStatus(serviceName, now()))
	})
}
