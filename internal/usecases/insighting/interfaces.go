package insighting

import (
	"context"

	"github.com/vfg2006/expense-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TextGenerator é o backend de geração de texto (LLM hospedado).
// Recebe o transcript e devolve o texto completo ou um erro com mensagem legível.
type TextGenerator interface {
	Generate(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

// Insighter gera um insight curto a partir de uma lista de despesas
type Insighter interface {
	GenerateInsight(ctx context.Context, req *domain.InsightRequest) (string, error)
}
