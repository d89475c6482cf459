package health

import (
	"time"

	"partflow-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for diagnostics.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes. Both are public.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", h.HandleHealth)
	app.Get("/cron/keepalive", h.HandleKeepalive)
}

// HandleHealth runs the diagnostics.
// @Summary Health Diagnostics
// @Description Reports database state, credential shape, an offline signing test, a Google auth test and a sheet access test.
// @Tags health
// @Produce json
// @Success 200 {object} Report "Diagnostics"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.Report(c.UserContext())
	l.Info("Health check completed",
		zap.Bool("database_exists", report.DatabaseExists),
		zap.String("credentials_source", report.CredentialsSource),
		zap.String("google_auth_test", report.GoogleAuthTest))

	return c.JSON(report)
}

// HandleKeepalive answers scheduled pings that keep the instance warm.
// @Summary Keepalive
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Alive"
// @Router /cron/keepalive [get]
func (h *Handler) HandleKeepalive(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "alive",
		"timestamp": h.service.now().UTC().Format(time.RFC3339),
	})
}
