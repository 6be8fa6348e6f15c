package analytics

import (
	"github.com/gofiber/fiber/v2"
)

// Handler exposes the event log to the frontend debug page.
type Handler struct {
	recorder Recorder
}

func NewHandler(recorder Recorder) *Handler {
	return &Handler{recorder: recorder}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/events", h.recordEvent)
	app.Get("/api/v1/events", h.getEvents)
	app.Delete("/api/v1/events", h.clearEvents)
}

type recordEventRequest struct {
	Event string         `json:"event"`
	Data  map[string]any `json:"data,omitempty"`
}

func (h *Handler) recordEvent(c *fiber.Ctx) error {
	payload := new(recordEventRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Event == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "event is required"})
	}
	h.recorder.Record(payload.Event, payload.Data)
	return c.SendStatus(fiber.StatusAccepted)
}

func (h *Handler) getEvents(c *fiber.Ctx) error {
	return c.JSON(h.recorder.Events())
}

func (h *Handler) clearEvents(c *fiber.Ctx) error {
	h.recorder.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
