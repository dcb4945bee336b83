package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/expense-insights-api/internal/api/handler"
	"github.com/vfg2006/expense-insights-api/internal/api/handler/router"
	"github.com/vfg2006/expense-insights-api/internal/config"
	"github.com/vfg2006/expense-insights-api/internal/metrics"
	"github.com/vfg2006/expense-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/expense-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/expense-insights-api/pkg/middleware"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer    *http.Server
	metricsServer *http.Server
}

// NewHandler monta o router e a cadeia de middlewares da API pública.
// authenticator só é usado quando cfg.Auth.Enabled.
func NewHandler(cfg *config.Config, insightService insighting.Insighter, authenticator authenticating.Authenticator) http.Handler {
	var insightMiddlewares []func(http.Handler) http.Handler
	if cfg.Auth.Enabled && authenticator != nil {
		insightMiddlewares = append(insightMiddlewares, middleware.AuthMiddleware(authenticator))
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(cfg.App.Name)...),
		router.WithRoutes(handler.Insights(insightService, insightMiddlewares...)...),
		router.WithNotFound(handler.NotFoundHandler()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}
	if cfg.Metrics.Enabled {
		middlewares = append(middlewares, middleware.Metrics())
	}
	middlewares = append(middlewares, middleware.Cors())

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, insightService insighting.Insighter, authenticator authenticating.Authenticator) (*Server, error) {
	if insightService == nil {
		return nil, fmt.Errorf("api: insight service is required")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, insightService, authenticator),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv.metricsServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Metrics.Port),
			Handler:           mux,
			ReadHeaderTimeout: 2 * time.Second,
		}
	}

	return srv, nil
}

// Run sobe os listeners e bloqueia até sinal de término, cancelamento do
// contexto ou falha de um dos servidores.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return listen("api", s.httpServer)
	})

	if s.metricsServer != nil {
		g.Go(func() error {
			return listen("metrics", s.metricsServer)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func listen(name string, srv *http.Server) error {
	logrus.WithFields(logrus.Fields{
		"listener": name,
		"address":  srv.Addr,
	}).Info("Servidor iniciando")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s listener: %w", name, err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logrus.WithError(err).Warn("Erro ao desligar o servidor de métricas")
		}
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
