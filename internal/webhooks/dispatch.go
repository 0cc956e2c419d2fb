package webhooks

import (
	"log"

	"github.com/gofiber/fiber/v3"
)

type unsupportedEventResponse struct {
	Error string `json:"error"`
	Event string `json:"event"`
}

// Dispatch fans a delivery out by the X-GitHub-Event header. Ping is
// acknowledged without touching the body; push goes through the size guard
// and strict parse; anything else is answered as not implemented.
func (h *Handler) Dispatch(c fiber.Ctx) error {
	headers := HeadersFromRequest(c)
	log.Printf("delivery %s: event=%q hook=%s target=%s/%s agent=%q",
		headers.Delivery, headers.Event, headers.HookID,
		headers.InstallationTargetType, headers.InstallationTargetID,
		headers.UserAgent,
	)

	event := ParseEvent(headers.Event)

	switch event.Kind {
	case EventPing:
		return c.Status(fiber.StatusOK).Send(nil)
	case EventPush:
		return h.handlePush(c)
	default:
		return c.Status(fiber.StatusNotImplemented).JSON(unsupportedEventResponse{
			Error: "not supported",
			Event: event.Name,
		})
	}
}
