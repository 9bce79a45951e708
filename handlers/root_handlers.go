package handlers

import "github.com/gofiber/fiber/v2"

// Version is overridden at build time with -ldflags.
var Version = "1.0.0"

// HandleRoot identifies the service.
// GET /
func HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Project Kisan API Server",
		"version": Version,
		"status":  "running",
	})
}
