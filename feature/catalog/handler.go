package catalog

import (
	"strconv"

	"release-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the release catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/", h.HandleGetCatalog)
	group.Get("/releases", h.HandleGetReleases)
	group.Get("/releases/:day", h.HandleGetRelease)
	group.Get("/releases/:day/lyrics", h.HandleGetLyricFrame)
	group.Get("/stats", h.HandleGetStats)
	group.Post("/rebuild", h.HandleRebuild)
}

// HandleGetCatalog returns the full catalog artifact.
// @Summary Get Catalog
// @Description Get the full release catalog, including project metadata and stats.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} models.Catalog "Catalog"
// @Failure 503 {object} map[string]string "Catalog Not Built"
// @Router /catalog [get]
func (h *Handler) HandleGetCatalog(c *fiber.Ctx) error {
	cat, ok := h.service.Catalog()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "catalog not built yet",
		})
	}
	return c.JSON(cat)
}

// HandleGetReleases returns all releases.
// @Summary List Releases
// @Description Get every merged release in calendar order.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {array} models.Release "Releases"
// @Failure 503 {object} map[string]string "Catalog Not Built"
// @Router /catalog/releases [get]
func (h *Handler) HandleGetReleases(c *fiber.Ctx) error {
	cat, ok := h.service.Catalog()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "catalog not built yet",
		})
	}
	return c.JSON(cat.Releases)
}

// HandleGetRelease returns the release for an absolute day of the year.
// @Summary Get Release By Day
// @Description Get a single release by its absolute day number (1-365).
// @Tags catalog
// @Accept json
// @Produce json
// @Param day path int true "Absolute day of year (1-365)"
// @Success 200 {object} models.Release "Release"
// @Failure 400 {object} map[string]string "Invalid Day"
// @Failure 404 {object} map[string]string "No Release For Day"
// @Router /catalog/releases/{day} [get]
func (h *Handler) HandleGetRelease(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil || day < 1 || day > DaysInYear {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day must be between 1 and 365",
		})
	}

	release, ok := h.service.ReleaseByDay(day)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no release for day",
		})
	}
	return c.JSON(release)
}

// HandleGetLyricFrame returns the lyric state at a playback timestamp.
// @Summary Get Lyric Frame
// @Description Get the active lyric word and line for a release at a playback time.
// @Tags catalog
// @Accept json
// @Produce json
// @Param day path int true "Absolute day of year (1-365)"
// @Param t query number false "Playback time in seconds"
// @Success 200 {object} LyricFrame "Lyric Frame"
// @Failure 400 {object} map[string]string "Invalid Day"
// @Failure 404 {object} map[string]string "No Release For Day"
// @Router /catalog/releases/{day}/lyrics [get]
func (h *Handler) HandleGetLyricFrame(c *fiber.Ctx) error {
	day, err := c.ParamsInt("day")
	if err != nil || day < 1 || day > DaysInYear {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "day must be between 1 and 365",
		})
	}

	t, err := strconv.ParseFloat(c.Query("t", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "t must be a number of seconds",
		})
	}

	release, ok := h.service.ReleaseByDay(day)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no release for day",
		})
	}

	return c.JSON(BuildLyricFrame(release, t))
}

// HandleGetStats returns aggregate catalog stats.
// @Summary Get Catalog Stats
// @Description Get aggregate counts over the merged releases.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} models.Stats "Stats"
// @Failure 503 {object} map[string]string "Catalog Not Built"
// @Router /catalog/stats [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	stats, ok := h.service.Stats()
	if !ok {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "catalog not built yet",
		})
	}
	return c.JSON(stats)
}

// HandleRebuild re-runs the reconciliation pipeline.
// @Summary Rebuild Catalog
// @Description Reload the manifest and datasets and rebuild the catalog in place.
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} models.Stats "Stats Of Rebuilt Catalog"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/rebuild [post]
func (h *Handler) HandleRebuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Rebuilding catalog")

	cat, err := h.service.Build(c.Context())
	if err != nil {
		l.Error("Catalog rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(cat.Stats)
}
