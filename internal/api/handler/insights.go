package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/vfg2006/expense-insights-api/internal/domain"
	"github.com/vfg2006/expense-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/expense-insights-api/pkg/apiErrors"
	"github.com/vfg2006/expense-insights-api/pkg/log"
)

// maxBodyBytes limita o corpo do POST; milhares de despesas cabem com folga
const maxBodyBytes = 1 << 20

// GenerateInsight recebe as despesas e devolve {success, insight} ou {success, error}
func GenerateInsight(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("Erro ao ler corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, insighting.MsgInvalidExpenses)
			return
		}

		req, err := insighting.ParseRequest(body)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		insight, err := service.GenerateInsight(r.Context(), req)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.InsightSucceeded(insight))
	}
}

func writeInsightError(w http.ResponseWriter, err error) {
	var insightErr *insighting.InsightError
	if errors.As(err, &insightErr) {
		apiErrors.WriteError(w, insightErr.Code, insightErr.Message())
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, apiErrors.MsgInternal)
}
