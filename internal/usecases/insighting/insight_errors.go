package insighting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/expense-insights-api/pkg/apiErrors"
)

// Mensagens devolvidas ao cliente
const (
	MsgInvalidExpenses = "No expenses provided or invalid format"
	MsgBackendFailure  = apiErrors.MsgInternal
)

var (
	ErrInvalidExpenses = errors.New("invalid expenses payload")
	ErrBackendFailure  = errors.New("text generation backend failed")
	ErrEmptyInsight    = errors.New("text generation backend returned an empty insight")
)

// InsightError é um erro com contexto adicional para a geração de insights
type InsightError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Mensagem segura para o cliente
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

// Message devolve o texto que vai no campo "error" da resposta
func (e *InsightError) Message() string {
	if strings.TrimSpace(e.Details) != "" {
		return e.Details
	}

	switch {
	case errors.Is(e.Err, ErrInvalidExpenses):
		return MsgInvalidExpenses
	default:
		return MsgBackendFailure
	}
}

func newValidationError() *InsightError {
	return &InsightError{
		Err:     ErrInvalidExpenses,
		Code:    apiErrors.ErrInvalidFormat,
		Details: MsgInvalidExpenses,
	}
}

func newBackendError(cause error) *InsightError {
	details := ""
	if cause != nil {
		details = strings.TrimSpace(cause.Error())
	}

	return &InsightError{
		Err:     ErrBackendFailure,
		Code:    apiErrors.ErrExternalService,
		Details: details,
	}
}
