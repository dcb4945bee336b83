package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims do token aceito no endpoint de insight quando a autenticação está ligada.
// O app envia o ID do usuário no subject.
type Claims struct {
	UserEmail string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
