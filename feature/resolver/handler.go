package resolver

import (
	"errors"

	"release-manager/core/logger"
	"release-manager/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for asset resolution.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the resolver routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/resolve")
	group.Get("/audio/:day", h.HandleResolveAudio)
	group.Get("/cover/:day", h.HandleResolveCover)
}

// HandleResolveAudio resolves the playable audio URL for a day.
// @Summary Resolve Audio Source
// @Description Probe candidate audio sources in order and return the first available one.
// @Tags resolver
// @Accept json
// @Produce json
// @Param day path int true "Absolute day of year (1-365)"
// @Success 200 {object} Resolution "Resolved Source"
// @Failure 400 {object} map[string]string "Invalid Day"
// @Failure 404 {object} map[string]string "No Release For Day"
// @Failure 502 {object} map[string]string "All Sources Unavailable"
// @Router /resolve/audio/{day} [get]
func (h *Handler) HandleResolveAudio(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil || day < 1 || day > catalog.DaysInYear {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day must be between 1 and 365",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	res, err := h.service.ResolveAudio(c.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, ErrSuperseded):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		case errors.Is(err, ErrExhausted):
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		default:
			l.Warn("Audio resolution failed", zap.Int("day", day), zap.Error(err))
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}
	return c.JSON(res)
}

// HandleResolveCover resolves the cover art URL for a day.
// @Summary Resolve Cover Art
// @Description Probe candidate cover sources and return the first available one, or a generated placeholder.
// @Tags resolver
// @Accept json
// @Produce json
// @Param day path int true "Absolute day of year (1-365)"
// @Success 200 {object} CoverResolution "Resolved Cover"
// @Failure 400 {object} map[string]string "Invalid Day"
// @Failure 404 {object} map[string]string "No Release For Day"
// @Router /resolve/cover/{day} [get]
func (h *Handler) HandleResolveCover(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil || day < 1 || day > catalog.DaysInYear {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day must be between 1 and 365",
		})
	}

	res, err := h.service.ResolveCover(c.Context(), day)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(res)
}
