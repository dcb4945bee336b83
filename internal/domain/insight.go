package domain

import "time"

// InsightResponse é o único formato de resposta do endpoint de insight.
// Sucesso leva Insight, falha leva Error.
type InsightResponse struct {
	Success bool   `json:"success"`
	Insight string `json:"insight,omitempty"`
	Error   string `json:"error,omitempty"`
}

func InsightSucceeded(insight string) InsightResponse {
	return InsightResponse{Success: true, Insight: insight}
}

// HealthStatus é devolvido pelo healthcheck
type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// ISOTimestampLayout é ISO-8601 em UTC com milissegundos
const ISOTimestampLayout = "2006-01-02T15:04:05.000Z"

func NewHealthStatus(service string, now time.Time) HealthStatus {
	return HealthStatus{
		Status:    "ok",
		Service:   service,
		Timestamp: now.UTC().Format(ISOTimestampLayout),
	}
}
