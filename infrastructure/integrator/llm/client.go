package llm

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/vfg2006/expense-insights-api/internal/config"
	"github.com/vfg2006/expense-insights-api/internal/domain"
	"github.com/vfg2006/expense-insights-api/pkg/log"
)

var (
	ErrMissingAPIKey   = errors.New("llm: api key not configured")
	ErrEmptyCompletion = errors.New("llm: empty completion")
)

// Client fala com qualquer API de chat completions compatível com a da OpenAI
// (OpenAI, Groq, OpenRouter, servidores locais). Não faz retry.
type Client struct {
	api         *openai.Client
	apiKey      string
	model       string
	temperature float32
	maxTokens   int
}

func NewClient(cfg config.LLM) *Client {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Generate envia o transcript e devolve o texto da primeira escolha
func (c *Client) Generate(ctx context.Context, messages []domain.ChatMessage) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    toChatCompletionMessages(messages),
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		log.ForContext(ctx).WithField("model", c.model).WithError(err).Error("Erro ao chamar o LLM")
		return "", describeError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"model":             resp.Model,
		"prompt_tokens":     resp.Usage.PromptTokens,
		"completion_tokens": resp.Usage.CompletionTokens,
	}).Debug("Resposta do LLM recebida")

	return content, nil
}

func toChatCompletionMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == domain.RoleSystem {
			role = openai.ChatMessageRoleSystem
		}
		out = append(out, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return out
}

// describeError prefere a mensagem legível devolvida pelo provedor
func describeError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && strings.TrimSpace(apiErr.Message) != "" {
		return errors.New(apiErr.Message)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return errors.Errorf("llm: request failed with status %d", reqErr.HTTPStatusCode)
	}

	return errors.Wrap(err, "llm: request failed")
}
