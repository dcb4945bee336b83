package domain

import (
	"bytes"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/expense-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultCategory é usada quando a despesa chega sem categoria
const DefaultCategory = "Uncategorized"

// ExpenseRecord representa uma despesa enviada pelo app. Não é persistida.
type ExpenseRecord struct {
	Category    *string `json:"category"`
	Amount      Amount  `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// CategoryOrDefault aplica a categoria padrão para valores ausentes ou vazios
func (e ExpenseRecord) CategoryOrDefault() string {
	if e.Category == nil || strings.TrimSpace(*e.Category) == "" {
		return DefaultCategory
	}
	return *e.Category
}

// InsightRequest é o corpo esperado no POST de geração de insight
type InsightRequest struct {
	Expenses []ExpenseRecord `json:"expenses"`
}

// Amount guarda o valor como texto pronto para o prompt. Aceita número ou
// string no JSON; strings (ex.: "₹120") passam sem alteração.
type Amount struct {
	text string
}

func NewAmount(v float64) Amount {
	return Amount{text: utils.FormatNumber(v)}
}

func NewAmountText(s string) Amount {
	return Amount{text: s}
}

// String devolve o valor como aparece no prompt; ausente vira "0"
func (a Amount) String() string {
	if a.text == "" {
		return "0"
	}
	return a.text
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.text = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		a.text = s
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	a.text = utils.FormatNumber(f)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if f, err := strconv.ParseFloat(a.String(), 64); err == nil {
		return []byte(utils.FormatNumber(f)), nil
	}
	return json.Marshal(a.text)
}
