package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LLMAPIKeySecret é o nome do secret file no Render que guarda a chave do LLM
const LLMAPIKeySecret = "llm_api_key"

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Metrics Metrics `mapstructure:",squash"`
	LLM     LLM     `mapstructure:",squash"`
	Auth    Auth    `mapstructure:",squash"`
	Render  Render  `mapstructure:",squash"`
}

type App struct {
	Name     string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Port    string `mapstructure:"metrics_port"`
}

// LLM configura o backend de geração de texto (API compatível com OpenAI)
type LLM struct {
	BaseURL     string        `mapstructure:"llm_base_url"`
	APIKey      string        `mapstructure:"llm_api_key"`
	Model       string        `mapstructure:"llm_model"`
	Temperature float32       `mapstructure:"llm_temperature"`
	MaxTokens   int           `mapstructure:"llm_max_tokens"`
	Timeout     time.Duration `mapstructure:"llm_timeout"`
}

type Auth struct {
	Enabled bool   `mapstructure:"auth_enabled"`
	Secret  string `mapstructure:"auth_secret"`
}

type Render struct {
	BaseURL   string `mapstructure:"render_base_url"`
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "expense-insights")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PORT", "9090")

	v.SetDefault("LLM_BASE_URL", "https://api.openai.com/v1")
	v.SetDefault("LLM_API_KEY", "")
	v.SetDefault("LLM_MODEL", "gpt-4o-mini")
	v.SetDefault("LLM_TEMPERATURE", 0.7)
	v.SetDefault("LLM_MAX_TOKENS", 150)
	v.SetDefault("LLM_TIMEOUT", "30s")

	v.SetDefault("AUTH_ENABLED", false)
	v.SetDefault("AUTH_SECRET", "")

	v.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")
	v.SetDefault("RENDER_API_KEY", "")
	v.SetDefault("RENDER_SERVICE_ID", "")
}

// NewConfig carrega .env (quando existir), variáveis de ambiente e defaults
func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	return Load(v)
}

// Load decodifica a configuração a partir de uma instância do viper
func Load(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: unmarshal")
	}

	config.LLM.APIKey = strings.TrimSpace(config.LLM.APIKey)
	config.LLM.BaseURL = strings.TrimRight(config.LLM.BaseURL, "/")

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checa combinações que impedem o serviço de subir
func (c *Config) Validate() error {
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.Secret) == "" {
		return errors.New("config: AUTH_SECRET is required when AUTH_ENABLED=true")
	}
	if c.LLM.Timeout <= 0 {
		return errors.New("config: LLM_TIMEOUT must be positive")
	}
	if strings.TrimSpace(c.LLM.Model) == "" {
		return errors.New("config: LLM_MODEL is required")
	}
	return nil
}

// ResolveLLMAPIKey busca a chave do LLM nos secret files do Render quando
// ela não veio por variável de ambiente.
func (c *Config) ResolveLLMAPIKey(storage SecretStorage) error {
	if c.LLM.APIKey != "" || c.Render.ServiceID == "" || storage == nil {
		return nil
	}

	secrets, err := storage.ListSecrets(c.Render.ServiceID)
	if err != nil {
		return errors.Wrap(err, "config: list render secrets")
	}

	key, ok := secrets[LLMAPIKeySecret]
	if !ok || strings.TrimSpace(key) == "" {
		return errors.Errorf("config: secret %q not found on render service %s", LLMAPIKeySecret, c.Render.ServiceID)
	}

	c.LLM.APIKey = strings.TrimSpace(key)
	logrus.Info("Chave do LLM carregada dos secrets do Render")
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, seguindo com variáveis de ambiente")
}
