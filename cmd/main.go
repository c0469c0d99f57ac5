package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"riderequest/api"
	"riderequest/config"
	"riderequest/pkg/bot"
	"riderequest/pkg/logger"
	"riderequest/pkg/metrics"
	"riderequest/service"
	"riderequest/storage"
	"riderequest/storage/postgres"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	// 3. Initialize Storage (Postgres). The gateway starts even when the store does not.
	var stg storage.IStorage
	pgStore, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		log.Error("Postgres store could not be initialized, writes will be logged only", logger.Error(err))
		stg = storage.NewUnavailable(err)
	} else {
		stg = pgStore
	}
	defer stg.Close()

	// 4. Optional dispatch notifier
	var notifier service.Notifier
	if cfg.TelegramBotToken != "" && cfg.DispatchChatID != 0 {
		dispatcher, err := bot.New(cfg.TelegramBotToken, cfg.DispatchChatID, log)
		if err != nil {
			log.Error("Failed to initialize dispatch bot", logger.Error(err))
		} else {
			notifier = dispatcher
			log.Info("Dispatch notifications enabled", logger.Int64("chat_id", cfg.DispatchChatID))
		}
	}

	// 5. Services and HTTP router
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	svc := service.New(stg, log, notifier)

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           api.New(svc, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 Server is running", logger.String("addr", fmt.Sprintf("http://localhost:%d", cfg.AppPort)))
		log.Info("📡 API endpoints", logger.String("submit", "POST /api/ride-request"), logger.String("list", "GET /api/ride-requests"))
		log.Info("💚 Health check", logger.String("path", "GET /health"))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	// 6. Graceful Shutdown listener
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", logger.Error(err))
	}
}
