// Package webhooks exposes the GitHub webhook dispatch endpoint.
package webhooks

import (
	"database/sql"
	"io"
	"os"

	"github.com/gofiber/fiber/v3"
)

// Handler carries the dependencies shared by webhook requests. The pool is
// constructor-injected rather than read from package state; it is opened at
// startup and held for future use, never queried during dispatch.
type Handler struct {
	Pool *sql.DB

	// Out receives the pretty-printed push payloads.
	Out io.Writer
}

func NewHandler(pool *sql.DB) *Handler {
	return &Handler{
		Pool: pool,
		Out:  os.Stdout,
	}
}

// Routes wires the catch-all dispatch endpoint. GitHub posts deliveries to
// whatever path the hook was configured with, so every method and path not
// claimed by an earlier route lands here.
func Routes(app fiber.Router, h *Handler) {
	app.All("/*", h.Dispatch)
}
