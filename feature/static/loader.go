package static

import (
	"net/http"

	"devserve/core/middleware/mimetype"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the static file feature.
func NewFeature(root http.FileSystem, index string, overrides mimetype.Overrides, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(root, index, overrides),
		logger:  logger,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "static"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.logger.Debug("Static files mounted",
		zap.String("index", f.handler.index),
		zap.Strings("mime_overrides", f.handler.overrides.Extensions()))
	return nil
}
