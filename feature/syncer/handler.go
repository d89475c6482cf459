package syncer

import (
	"errors"
	"strings"

	"partflow-sync/core/logger"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync bridge.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the sync route behind guard.
func (h *Handler) RegisterRoutes(app fiber.Router, guard fiber.Handler) {
	app.Post("/sync", guard, h.HandleSync)
}

// HandleSync pushes client batches and returns the pulled tables.
// @Summary Sync Records
// @Description Merges customers, items and orders into the spreadsheet, then returns every table as stored.
// @Tags sync
// @Accept json
// @Produce json
// @Param X-API-KEY header string true "Shared secret"
// @Param request body Request true "Sync batch"
// @Success 200 {object} Result "Pulled tables"
// @Failure 400 {object} map[string]interface{} "Bad Request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Sync failed"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	// Modes are matched case-insensitively, as reconcile.ParsePolicy does
	req.Mode = strings.ToLower(strings.TrimSpace(req.Mode))
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": validationMessage(err),
		})
	}

	l.Info("Sync requested",
		zap.String("spreadsheet_id", req.SpreadsheetID),
		zap.String("mode", req.Mode),
		zap.Int("customers", len(req.Customers)),
		zap.Int("items", len(req.Items)),
		zap.Int("orders", len(req.Orders)),
	)

	res, err := h.service.Sync(c.UserContext(), req)
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, ErrInvalidRequest) {
			status = fiber.StatusBadRequest
		}
		l.Error("Sync failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	return c.JSON(res)
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "SpreadsheetID":
			return "Spreadsheet ID is required"
		case "Mode":
			return "Mode must be upsert or overwrite"
		}
	}
	return err.Error()
}
