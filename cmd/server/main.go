package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/controller"
	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/middleware"
	"github.com/api-sage/payment-instruction-processor/internal/adapter/http/router"
	"github.com/api-sage/payment-instruction-processor/internal/config"
	"github.com/api-sage/payment-instruction-processor/internal/logger"
	"github.com/api-sage/payment-instruction-processor/internal/pipeline"
	"github.com/api-sage/payment-instruction-processor/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("server load config failed", err, nil)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel)

	paymentInstructionService := services.NewPaymentInstructionService(pipeline.New())
	paymentInstructionController := controller.NewPaymentInstructionController(paymentInstructionService)
	healthController := controller.NewHealthController()

	var authMiddleware func(http.Handler) http.Handler
	if cfg.AuthEnabled() {
		authMiddleware = middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey, cfg.ChannelKeyHash)
	}

	mux := router.New(paymentInstructionController, healthController, authMiddleware)
	handler := middleware.Recovery(middleware.RequestID(mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", logger.Fields{
			"port":        cfg.Port,
			"authEnabled": cfg.AuthEnabled(),
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped unexpectedly", err, nil)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", err, nil)
		os.Exit(1)
	}

	logger.Info("server exited", nil)
}
