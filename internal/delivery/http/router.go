package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"storemailer/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(mailController *controllers.MailController, healthController *controllers.HealthController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /api/send-email", mailController.SendEmail)
	mux.HandleFunc("POST /api/send-invoice", mailController.SendInvoice)

	// Health
	mux.HandleFunc("GET /healthz", healthController.Check)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
