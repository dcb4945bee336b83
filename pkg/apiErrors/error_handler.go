package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro internos; o cliente só recebe o status e a mensagem
const (
	// Erros de autenticação
	ErrInvalidToken = "AUTH_001" // Token inválido ou ausente

	// Erros de validação
	ErrInvalidRequest = "VAL_001" // Requisição inválida
	ErrInvalidFormat  = "VAL_002" // Formato de dados inválido

	// Erros de rota
	ErrNotFound = "ROUTE_001" // Endpoint inexistente

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_002" // Erro no backend de geração de texto
)

// MsgInternal é a mensagem genérica para falhas sem mensagem própria
const MsgInternal = "Failed to process expense data"

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:    http.StatusUnauthorized,
	ErrInvalidRequest:  http.StatusBadRequest,
	ErrInvalidFormat:   http.StatusBadRequest,
	ErrNotFound:        http.StatusNotFound,
	ErrInternalServer:  http.StatusInternalServerError,
	ErrExternalService: http.StatusInternalServerError,
}

// APIError é o formato uniforme de erro: {"success": false, "error": "..."}
type APIError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StatusFor devolve o status HTTP de um código; desconhecido vira 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string) {
	WriteJSON(w, StatusFor(code), APIError{
		Success: false,
		Error:   message,
	})
}

// WriteJSON escreve qualquer corpo JSON com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("Erro ao escrever resposta JSON")
	}
}
