package insighting

import (
	"fmt"

	"github.com/vfg2006/expense-insights-api/internal/domain"
)

// SystemPrompt define a persona do conselheiro financeiro
const SystemPrompt = "You are a chill, money-savvy friend who gives short, practical spending advice in a casual Gen-Z tone. Be honest, helpful and never preachy."

// Os valores são sempre tratados como rúpias, independente do símbolo que vier no valor.
const promptTemplate = `Here are my recent expenses:
%s

Analyze them and:
1. Identify the categories where I'm spending the most.
2. Give one practical tip to save money.
3. Point out any trends or irregular spending.

Treat every amount as Indian Rupees (₹), even if another currency symbol appears.
Respond in at most 2 sentences, in a casual Gen-Z tone, and skip any introduction.`

// BuildPrompt embute as linhas de despesas no template fixo
func BuildPrompt(formattedExpenses string) string {
	return fmt.Sprintf(promptTemplate, formattedExpenses)
}

// BuildTranscript monta as duas mensagens enviadas ao backend
func BuildTranscript(prompt string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: SystemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}
}
