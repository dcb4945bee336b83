package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/expense-insights-api/pkg/apiErrors"
)

var (
	ErrMissingToken = errors.New("token ausente")
	ErrInvalidToken = errors.New("token inválido")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func NewAuthError(err error, details string) *AuthError {
	return &AuthError{
		Err:     err,
		Code:    apiErrors.ErrInvalidToken,
		Details: details,
	}
}
