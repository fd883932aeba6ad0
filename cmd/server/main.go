package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storemailer/config"
	"storemailer/internal/adapters/email"
	httpdelivery "storemailer/internal/delivery/http"
	"storemailer/internal/delivery/http/controllers"
	"storemailer/internal/delivery/http/middleware"
	"storemailer/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := config.NewLogger()

	mailer, err := email.NewMailer(cfg.Mail)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	inquiryService := services.NewInquiryService(mailer, renderer, cfg.Mail.SalesAddress, cfg.Mail.InfoAddress)
	invoiceService := services.NewInvoiceService(mailer, renderer, cfg.Mail.SalesAddress, cfg.Mail.OwnerEmail)

	mailController := controllers.NewMailController(logger, inquiryService, invoiceService)
	healthController := controllers.NewHealthController()

	mux := httpdelivery.NewRouter(mailController, healthController)
	handler := middleware.RequestID(
		middleware.CORS(cfg.AllowedOrigins,
			middleware.LoggingMiddleware(logger, mux)))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server listening",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"mail_provider", cfg.Mail.Provider,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}
