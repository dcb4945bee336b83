package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/expense-insights-api/internal/metrics"
)

const (
	unmatchedRoute = "unmatched"
	preflightRoute = "preflight"
)

// Metrics registra contagem e duração por rota. Rotas não encontradas
// entram como "unmatched" para não explodir a cardinalidade.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := newStatusRecorder(w)
			start := time.Now()

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			switch {
			case r.Method == http.MethodOptions:
				route = preflightRoute
			case rec.statusCode == http.StatusNotFound:
				route = unmatchedRoute
			}
			metrics.ObserveHTTPRequest(r.Method, route, rec.statusCode, time.Since(start))
		})
	}
}
