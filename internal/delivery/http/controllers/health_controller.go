package controllers

import (
	"net/http"

	"storemailer/internal/delivery/http/helpers"
)

// HealthController serves the liveness endpoint.
type HealthController struct{}

// NewHealthController creates a HealthController.
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
