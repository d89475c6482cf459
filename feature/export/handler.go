package export

import (
	"fmt"

	"partflow-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for exports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export route behind guard.
func (h *Handler) RegisterRoutes(app fiber.Router, guard fiber.Handler) {
	app.Get("/export/:spreadsheetId", guard, h.HandleExport)
}

// HandleExport downloads the synced tables as an xlsx workbook.
// @Summary Export Workbook
// @Description Returns Customers, Inventory, Orders and OrderLines as one xlsx file.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param X-API-KEY header string true "Shared secret"
// @Param spreadsheetId path string true "Spreadsheet ID"
// @Success 200 {file} file "Workbook"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /export/{spreadsheetId} [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	id := c.Params("spreadsheetId")
	l := logger.WithSpreadsheet(logger.WithRayID(h.service.logger, c), id)

	f, err := h.service.Export(c.UserContext(), id)
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		l.Error("Failed to serialise workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.xlsx"`, id))
	return c.Send(buf.Bytes())
}
