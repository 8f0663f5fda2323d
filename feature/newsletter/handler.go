package newsletter

import (
	"release-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for newsletter signups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the newsletter routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/newsletter")
	group.Post("/subscribe", h.HandleSubscribe)
	group.Get("/count", h.HandleCount)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// HandleSubscribe records a newsletter signup.
// @Summary Subscribe To Newsletter
// @Description Add an email address to the release newsletter.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body subscribeRequest true "Signup"
// @Success 200 {object} map[string]interface{} "Subscribed"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /newsletter/subscribe [post]
func (h *Handler) HandleSubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Subscribe(req.Email); err != nil {
		if err.Error() == "invalid email address" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Subscription failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"subscribed": true,
		"count":      h.service.Count(),
	})
}

// HandleCount returns the subscriber count.
// @Summary Get Subscriber Count
// @Description Get the current number of newsletter subscribers.
// @Tags newsletter
// @Accept json
// @Produce json
// @Success 200 {object} map[string]int "Count"
// @Router /newsletter/count [get]
func (h *Handler) HandleCount(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"count": h.service.Count()})
}
