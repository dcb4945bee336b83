package insighting

import (
	"fmt"
	"strings"

	"github.com/vfg2006/expense-insights-api/internal/domain"
)

// FormatExpense gera a linha "- <categoria>: <valor> on <data> for '<descrição>'"
func FormatExpense(e domain.ExpenseRecord) string {
	return fmt.Sprintf("- %s: %s on %s for '%s'", e.CategoryOrDefault(), e.Amount.String(), e.Date, e.Description)
}

// FormatExpenses formata uma linha por despesa, mantendo a ordem recebida
func FormatExpenses(expenses []domain.ExpenseRecord) string {
	lines := make([]string, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, FormatExpense(e))
	}
	return strings.Join(lines, "\n")
}
