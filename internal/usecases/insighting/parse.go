package insighting

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/expense-insights-api/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// requestSchema descreve o corpo aceito no POST: "expenses" obrigatório,
// lista com pelo menos um item, cada item um objeto.
const requestSchema = `{
	"type": "object",
	"required": ["expenses"],
	"properties": {
		"expenses": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"properties": {
					"category":    {"type": ["string", "null"]},
					"amount":      {"type": ["number", "string", "null"]},
					"date":        {"type": ["string", "null"]},
					"description": {"type": ["string", "null"]}
				}
			}
		}
	}
}`

var compiledRequestSchema = mustCompileSchema(requestSchema)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(err)
	}
	return compiled
}

// ParseRequest valida o corpo contra o schema e decodifica o InsightRequest.
// Qualquer falha (JSON malformado ou fora do schema) vira ErrInvalidExpenses.
func ParseRequest(body []byte) (*domain.InsightRequest, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, newValidationError()
	}

	result, err := compiledRequestSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		logrus.WithError(err).Debug("Corpo da requisição não é um JSON válido")
		return nil, newValidationError()
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		logrus.WithField("errors", errs).Debug("Corpo da requisição fora do schema")
		return nil, newValidationError()
	}

	var req domain.InsightRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logrus.WithError(err).Debug("Erro ao decodificar despesas")
		return nil, newValidationError()
	}

	if len(req.Expenses) == 0 {
		return nil, newValidationError()
	}

	return &req, nil
}
