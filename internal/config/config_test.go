package config

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for key, value := range overrides {
		v.Set(key, value)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "expense-insights", cfg.App.Name)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "9090", cfg.Metrics.Port)
	assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 150, cfg.LLM.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.False(t, cfg.Auth.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(newTestViper(map[string]any{
		"LLM_BASE_URL":    "https://api.groq.com/openai/v1/",
		"LLM_API_KEY":     "  sk-test  ",
		"LLM_TIMEOUT":     "5s",
		"METRICS_ENABLED": "false",
		"AUTH_ENABLED":    "true",
		"AUTH_SECRET":     "secret",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Auth.Enabled)
}

func TestLoad_AuthWithoutSecret(t *testing.T) {
	_, err := Load(newTestViper(map[string]any{"AUTH_ENABLED": true}))
	assert.Error(t, err)
}

type fakeSecretStorage struct {
	secrets map[string]string
	err     error
	calls   int
}

func (f *fakeSecretStorage) ListSecrets(serviceID string) (map[string]string, error) {
	f.calls++
	return f.secrets, f.err
}

func TestResolveLLMAPIKey(t *testing.T) {
	t.Run("chave já configurada não consulta o Render", func(t *testing.T) {
		storage := &fakeSecretStorage{}
		cfg := &Config{LLM: LLM{APIKey: "sk-env"}, Render: Render{ServiceID: "srv-1"}}

		require.NoError(t, cfg.ResolveLLMAPIKey(storage))
		assert.Equal(t, "sk-env", cfg.LLM.APIKey)
		assert.Zero(t, storage.calls)
	})

	t.Run("busca a chave no secret file", func(t *testing.T) {
		storage := &fakeSecretStorage{secrets: map[string]string{LLMAPIKeySecret: "sk-render\n"}}
		cfg := &Config{Render: Render{ServiceID: "srv-1"}}

		require.NoError(t, cfg.ResolveLLMAPIKey(storage))
		assert.Equal(t, "sk-render", cfg.LLM.APIKey)
	})

	t.Run("secret ausente", func(t *testing.T) {
		storage := &fakeSecretStorage{secrets: map[string]string{}}
		cfg := &Config{Render: Render{ServiceID: "srv-1"}}

		assert.Error(t, cfg.ResolveLLMAPIKey(storage))
	})

	t.Run("erro do Render", func(t *testing.T) {
		storage := &fakeSecretStorage{err: errors.New("unauthorized")}
		cfg := &Config{Render: Render{ServiceID: "srv-1"}}

		assert.ErrorContains(t, cfg.ResolveLLMAPIKey(storage), "unauthorized")
	})
}

func TestRenderClient_ListSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer rnd-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"secretFile": {"name": "llm_api_key", "content": "sk-123"}, "cursor": "a"},
			{"secretFile": {"name": "other", "content": "x"}, "cursor": "b"}
		]`))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{BaseURL: server.URL + "/", APIKey: "rnd-key"}})

	secrets, err := client.ListSecrets("srv-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"llm_api_key": "sk-123", "other": "x"}, secrets)
}

func TestRenderClient_ListSecretsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	}))
	defer server.Close()

	client := NewRenderClient(&Config{Render: Render{BaseURL: server.URL}})

	_, err := client.ListSecrets("srv-1")
	assert.ErrorContains(t, err, "invalid api key")
}
