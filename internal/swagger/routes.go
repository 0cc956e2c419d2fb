// Package swagger serves the embedded API documentation.
package swagger

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
)

const (
	embedJSONPath = "docs/swagger.json"
	swaggerUIPath = "https://unpkg.com/swagger-ui-dist@5"
)

var uiTemplate = fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Webhookd API Docs</title>
  <link rel="stylesheet" href="%s/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="%s/swagger-ui-bundle.js"></script>
  <script src="%s/swagger-ui-standalone-preset.js"></script>
  <script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/docs/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
      layout: 'StandaloneLayout',
      deepLinking: true,
    });
  };
  </script>
</body>
</html>`, swaggerUIPath, swaggerUIPath, swaggerUIPath)

// Register wires the swagger-ui routes backed by the embedded doc file.
func Register(router fiber.Router) {
	if router == nil {
		return
	}

	router.Get("/docs", func(c fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(uiTemplate)
	})

	router.Get("/docs/doc.json", func(c fiber.Ctx) error {
		data, err := swaggerDocs.ReadFile(embedJSONPath)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(map[string]string{
				"message": "swagger document unavailable",
			})
		}

		c.Type("json", "utf-8")
		return c.Send(data)
	})
}
