package export

import (
	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	guard   fiber.Handler
}

// NewFeature creates the export feature. guard protects the export route.
func NewFeature(service *Service, guard fiber.Handler) *Feature {
	return &Feature{handler: NewHandler(service), guard: guard}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "export"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, f.guard)
	return nil
}
