package newsletter

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	cfg     Config
	service *Service
	handler *Handler
}

// NewFeature creates a new Newsletter feature.
func NewFeature(cfg Config, logger *zap.Logger) (*Feature, error) {
	store, err := NewStore(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	svc := NewService(store, logger)
	h := NewHandler(svc)
	return &Feature{cfg: cfg, service: svc, handler: h}, nil
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "newsletter"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.cfg.Enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
