package internal

import (
	"webhookd/internal/db"
	"webhookd/internal/env"
	"webhookd/internal/swagger"
	"webhookd/internal/webhooks"

	"github.com/gofiber/fiber/v3"
)

type statusResponse struct {
	Status string `json:"status"`
}

// SetupApp initialises configuration, opens the SQLite pool and wires the
// HTTP surface. Request bodies are streamed so the push size guard can
// reject oversized deliveries without buffering them first.
func SetupApp(envRoot string) (*fiber.App, error) {
	env.Init(envRoot)

	pool, err := db.Open(env.DB_PATH)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		StreamRequestBody: true,
	})

	// Health probes bypass all webhook parsing. The misspelled path is
	// served as-is; existing probes already point at it.
	app.All("/status", healthHandler)
	app.All("/healthchekc", healthHandler)

	// Docs routes must land before the catch-all claims every path.
	swagger.Register(app)

	webhooks.Routes(app, webhooks.NewHandler(pool))

	return app, nil
}

// healthHandler answers readiness probes without reading headers or body.
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} statusResponse
// @Router /status [get]
func healthHandler(c fiber.Ctx) error {
	return c.JSON(statusResponse{Status: "ok"})
}
