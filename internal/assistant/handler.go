package assistant

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
)

// Handler wires the questionnaire endpoints. The engine itself stays pure;
// event recording happens here at the boundary.
type Handler struct {
	service  *Service
	recorder analytics.Recorder
}

func NewHandler(service *Service, recorder analytics.Recorder) *Handler {
	return &Handler{service: service, recorder: recorder}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/assistant/questions/:goal", h.getQuestions)
	app.Post("/api/v1/assistant/recommendation", h.postRecommendation)
}

func (h *Handler) getQuestions(c *fiber.Ctx) error {
	// unknown goals yield an empty list, mirroring the engine's no-match policy
	return c.JSON(h.service.Questions(catalog.Goal(c.Params("goal"))))
}

func (h *Handler) postRecommendation(c *fiber.Ctx) error {
	answers := new(Answers)
	if err := c.BodyParser(answers); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	rec := h.service.Recommend(*answers)

	h.recorder.Record("assistant_recommendations_generated", map[string]any{
		"goal":         string(answers.Goal),
		"productCount": len(rec.RecommendedProducts),
		"hasKit":       rec.RecommendedKit != nil,
	})

	return c.JSON(rec)
}
