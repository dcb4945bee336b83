package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/expense-insights-api/infrastructure/integrator/llm"
	"github.com/vfg2006/expense-insights-api/internal/api"
	"github.com/vfg2006/expense-insights-api/internal/config"
	"github.com/vfg2006/expense-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/expense-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/expense-insights-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Sem LLM_API_KEY no ambiente, tenta os secret files do Render
	if cfg.Render.ServiceID != "" {
		if err := cfg.ResolveLLMAPIKey(config.NewRenderClient(cfg)); err != nil {
			logrus.WithError(err).Warn("Não foi possível carregar a chave do LLM do Render")
		}
	}

	if cfg.LLM.APIKey == "" {
		logrus.Warn("LLM_API_KEY não configurada; as requisições de insight vão falhar")
	}

	llmClient := llm.NewClient(cfg.LLM)
	logrus.WithFields(logrus.Fields{
		"base_url": cfg.LLM.BaseURL,
		"model":    cfg.LLM.Model,
	}).Info("Backend de geração de texto configurado")

	insightService := insighting.NewService(llmClient)
	authenticator := authenticating.NewService(cfg)

	if cfg.Auth.Enabled {
		logrus.Info("Autenticação por token habilitada nas rotas de insight")
	}

	server, err := api.New(cfg, insightService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
