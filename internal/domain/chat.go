package domain

type ChatRole string

const (
	RoleSystem ChatRole = "system"
	RoleUser   ChatRole = "user"
)

// ChatMessage é uma mensagem do transcript enviado ao modelo
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
