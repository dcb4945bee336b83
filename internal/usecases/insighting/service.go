package insighting

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/expense-insights-api/internal/domain"
	"github.com/vfg2006/expense-insights-api/internal/metrics"
	"github.com/vfg2006/expense-insights-api/pkg/log"
)

// Service encadeia formatação, prompt e chamada ao backend.
// Não guarda estado entre requisições.
type Service struct {
	generator TextGenerator
	now       func() time.Time
}

// NewService cria uma nova instância do serviço de insights
func NewService(generator TextGenerator) *Service {
	return &Service{
		generator: generator,
		now:       time.Now,
	}
}

// GenerateInsight formata as despesas, monta o prompt e chama o backend uma única vez
func (s *Service) GenerateInsight(ctx context.Context, req *domain.InsightRequest) (string, error) {
	if req == nil || len(req.Expenses) == 0 {
		return "", newValidationError()
	}

	logger := log.ForContext(ctx).WithField("expenses", len(req.Expenses))

	prompt := BuildPrompt(FormatExpenses(req.Expenses))
	logger.Debugf("Prompt montado com %d caracteres", len(prompt))

	start := s.now()
	insight, err := s.generator.Generate(ctx, BuildTranscript(prompt))
	metrics.ObserveBackendCall(s.now().Sub(start), err)
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar insight no backend de texto")
		return "", newBackendError(err)
	}

	insight = strings.TrimSpace(insight)
	if insight == "" {
		logger.Warn("Backend de texto devolveu insight vazio")
		return "", newBackendError(ErrEmptyInsight)
	}

	logger.Info("Insight gerado com sucesso")
	return insight, nil
}
