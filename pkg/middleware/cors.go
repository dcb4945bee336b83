package middleware

import (
	"net/http"
)

// Cabeçalhos CORS fixos enviados em todas as respostas
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Access-Control-Max-Age":       "86400", // Cache do preflight por 24 horas
}

// SetCorsHeaders aplica o conjunto fixo de cabeçalhos CORS
func SetCorsHeaders(h http.Header) {
	for key, value := range corsHeaders {
		h.Set(key, value)
	}
}

// Cors aplica os cabeçalhos em toda resposta e responde o preflight
// com 204 sem corpo, antes de qualquer validação ou autenticação.
func Cors() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			SetCorsHeaders(w.Header())

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
