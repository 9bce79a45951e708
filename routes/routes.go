package routes

import (
	"kisan/handlers"
	"kisan/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application. When jwtSecret is
// non-empty the price routes require a bearer token.
func SetupRoutes(app *fiber.App, h *handlers.PriceHandler, jwtSecret string) {
	app.Get("/", handlers.HandleRoot)
	app.Get("/health", h.HandleHealth)

	api := app.Group("/api")

	// --- Price Routes ---
	prices := api.Group("/prices")
	if jwtSecret != "" {
		prices.Use(middleware.Authenticate(jwtSecret))
	}
	prices.Get("/current", h.HandleGetCurrentPrices)
	prices.Post("/recommendation", h.HandleGetRecommendation)
	prices.Post("/explain", h.HandleExplainRecommendation)
	prices.Post("/ask", h.HandleAskPrices)
	prices.Get("/compare", h.HandleCompareMandis)
}
