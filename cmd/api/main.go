package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nxtgenhub/lead-relay/internal/config"
	"github.com/nxtgenhub/lead-relay/internal/infra/database"
	"github.com/nxtgenhub/lead-relay/internal/infra/http/handlers"
	"github.com/nxtgenhub/lead-relay/internal/infra/http/middleware"
	"github.com/nxtgenhub/lead-relay/internal/infra/http/router"
	"github.com/nxtgenhub/lead-relay/internal/infra/mail"
	"github.com/nxtgenhub/lead-relay/internal/infra/queue"
	"github.com/nxtgenhub/lead-relay/internal/logger"
	"github.com/nxtgenhub/lead-relay/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		var missing *config.MissingError
		if errors.As(err, &missing) {
			for _, key := range missing.Keys {
				logger.Log.Error("missing required environment variable", "key", key)
			}
		}
		logger.Log.Error("invalid configuration", "error", err)
		return 1
	}
	logger.Init(cfg.LogLevel)

	// 1. Optional infrastructure
	var (
		dbProbe handlers.DBProbe
		broker  handlers.BrokerStatus
		events  usecase.EventPublisher
	)

	if cfg.DatabaseURL != "" {
		db, err := database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			logger.Log.Error("invalid DATABASE_URL", "error", err)
			return 1
		}
		defer db.Close()
		// The relay does not need the database; /health keeps probing it.
		dbProbe = database.NewProbe(db)
		if err := database.Ping(ctx, db); err != nil {
			logger.Log.Error("database unavailable at startup", "error", err)
		} else {
			logger.Log.Info("database connected")
		}
	}

	if cfg.RabbitMQURL != "" {
		rabbit, err := queue.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			logger.Log.Error("rabbitmq unavailable, relay events disabled", "error", err)
			broker = &queue.RabbitMQ{}
		} else {
			defer rabbit.Close()
			broker = rabbit
			events = queue.NewProducer(rabbit.Ch)
			logger.Log.Info("rabbitmq connected", "exchange", queue.ExchangeName)
		}
	}

	// 2. SMTP transport and use case
	transport := mail.NewEmailSender(mail.SMTPSettings{
		Host:          cfg.SMTP.Host,
		Port:          cfg.SMTP.Port,
		User:          cfg.SMTP.User,
		Password:      cfg.SMTP.Password,
		TLSSkipVerify: cfg.SMTP.TLSSkipVerify,
	})
	relayUC := usecase.NewRelayEmailUseCase(transport, events, cfg.SMTP.From, cfg.SMTP.Recipient)

	// 3. HTTP
	done := make(chan struct{})
	defer close(done)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute, done)
	}

	handler := router.New(router.Deps{
		EmailHandler:   handlers.NewEmailHandler(relayUC),
		HealthHandler:  handlers.NewHealthHandler(dbProbe, broker),
		RateLimiter:    limiter,
		AllowedOrigins: cfg.AllowedOrigins(),
		AccessLog:      true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("lead relay listening",
			"port", cfg.Port,
			"smtp_host", cfg.SMTP.Host,
			"smtp_port", cfg.SMTP.Port,
			"origins", cfg.AllowedOrigins(),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server stopped", "error", err)
			return 1
		}
	case <-ctx.Done():
		logger.Log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
		return 1
	}
	return 0
}
