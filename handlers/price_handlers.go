package handlers

import (
	"log"
	"strings"

	"kisan/models"
	"kisan/services"
	"kisan/utils"

	"github.com/gofiber/fiber/v2"
)

// PriceHandler serves the market price routes.
type PriceHandler struct {
	prices *services.PriceService
	engine *services.RecommendationEngine
}

// NewPriceHandler wires the price routes to their services.
func NewPriceHandler(prices *services.PriceService, engine *services.RecommendationEngine) *PriceHandler {
	return &PriceHandler{prices: prices, engine: engine}
}

// HandleGetCurrentPrices returns normalized mandi prices, the trend and insights.
// GET /api/prices/current?crop&state&district
func (h *PriceHandler) HandleGetCurrentPrices(c *fiber.Ctx) error {
	crop := strings.TrimSpace(c.Query("crop"))
	if crop == "" {
		return respondError(c, fiber.StatusBadRequest, "Crop parameter is required")
	}

	log.Printf("[%s] Price request: %s, %s, %s", requestID(c), crop,
		utils.ValueOrDefault(c.Query("state"), "All India"), utils.ValueOrDefault(c.Query("district"), "All districts"))

	snap := h.prices.GetSnapshot(crop, c.Query("state"), c.Query("district"))
	if snap.UpstreamFailed() {
		return respondError(c, fiber.StatusInternalServerError, "Failed to fetch price data from APIs")
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"commodity": snap.Commodity,
		"mandis":    snap.MandiQuotes,
		"trends":    snap.Trend,
		"insights":  services.GenerateInsights(snap),
		"timestamp": snap.Timestamp,
	})
}

// HandleGetRecommendation returns selling advice for the farmer's quantity.
// POST /api/prices/recommendation
func (h *PriceHandler) HandleGetRecommendation(c *fiber.Ctx) error {
	var req models.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing recommendation request: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	crop := strings.TrimSpace(req.Crop)
	quantity := float64(req.Quantity)
	if msg := missingFields(map[string]bool{"crop": crop == "", "quantity": quantity <= 0}, "crop", "quantity"); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}
	unit := utils.ValueOrDefault(req.Unit, "kg")

	log.Printf("[%s] Recommendation request: %s %s of %s", requestID(c), utils.FormatAmount(quantity), unit, crop)

	snap := h.prices.GetSnapshot(crop, req.State, req.District)
	best, ok := snap.BestQuote()
	if !ok {
		return respondError(c, fiber.StatusNotFound, "No mandi data available for this crop and location")
	}

	rec := h.engine.Recommend(c.UserContext(), snap, models.UserContext{
		Quantity:       quantity,
		Unit:           unit,
		State:          req.State,
		PreferredMandi: req.PreferredMandi,
	})

	return c.JSON(fiber.Map{
		"success":   true,
		"commodity": crop,
		"quantity":  utils.FormatAmount(quantity) + " " + unit,
		"recommendation": models.RecommendationView{
			SellingRecommendation: rec,
			ExpectedEarnings:      utils.ExpectedEarnings(best.ModalPrice, quantity, unit),
		},
		"mandis":    snap.TopQuotes(5),
		"trends":    snap.Trend,
		"insights":  services.GenerateInsights(snap),
		"timestamp": snap.Timestamp,
	})
}

// HandleExplainRecommendation justifies a previously issued recommendation.
// POST /api/prices/explain
func (h *PriceHandler) HandleExplainRecommendation(c *fiber.Ctx) error {
	var req models.ExplainRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing explain request: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	crop := strings.TrimSpace(req.Crop)
	if msg := missingFields(map[string]bool{"crop": crop == "", "recommendation": req.Recommendation == nil}, "crop", "recommendation"); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	rec := *req.Recommendation
	if rec.ActionText == "" {
		rec.ActionText = models.ActionText(rec.Action)
	}

	log.Printf("[%s] Explanation request for %s", requestID(c), crop)

	snap := h.prices.GetSnapshot(crop, req.State, req.District)
	explanation := h.engine.Explain(c.UserContext(), snap, rec)

	return c.JSON(fiber.Map{
		"success":     true,
		"explanation": explanation,
		"priceData": fiber.Map{
			"mandis": snap.TopQuotes(3),
			"trends": snap.Trend,
		},
	})
}

// HandleAskPrices answers a free-form price question.
// POST /api/prices/ask
func (h *PriceHandler) HandleAskPrices(c *fiber.Ctx) error {
	var req models.AskRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing ask request: %v", err)
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	query := strings.TrimSpace(req.Query)
	crop := strings.TrimSpace(req.Crop)
	if msg := missingFields(map[string]bool{"query": query == "", "crop": crop == ""}, "query", "crop"); msg != "" {
		return respondError(c, fiber.StatusBadRequest, msg)
	}

	log.Printf("[%s] Price query %q for %s", requestID(c), query, crop)

	snap := h.prices.GetSnapshot(crop, req.State, req.District)
	answer, ok := h.engine.Answer(c.UserContext(), query, snap, req.ConversationHistory)
	if !ok {
		log.Printf("[%s] No AI answer for %q, returning notice", requestID(c), query)
	}

	top := snap.TopQuotes(3)
	summary := make([]models.QuoteSummary, len(top))
	for i, q := range top {
		summary[i] = models.QuoteSummary{Name: q.Name, Price: q.ModalPrice}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"query":   query,
		"answer":  answer,
		"context": fiber.Map{
			"commodity": crop,
			"mandis":    summary,
			"trend":     snap.Trend.Trend,
		},
	})
}

// HandleCompareMandis compares modal prices across mandis.
// GET /api/prices/compare?crop&state&mandis=a,b
func (h *PriceHandler) HandleCompareMandis(c *fiber.Ctx) error {
	crop := strings.TrimSpace(c.Query("crop"))
	if crop == "" {
		return respondError(c, fiber.StatusBadRequest, "Crop parameter is required")
	}

	log.Printf("[%s] Compare mandis for %s", requestID(c), crop)

	snap := h.prices.GetSnapshot(crop, c.Query("state"), "")
	comparison, selected := services.CompareMandis(snap.MandiQuotes, c.Query("mandis"))
	if comparison == nil {
		return respondError(c, fiber.StatusNotFound, "No mandis found for comparison")
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"commodity":  crop,
		"mandis":     selected,
		"comparison": comparison,
		"timestamp":  snap.Timestamp,
	})
}

// HandleHealth reports liveness and which AI backend is active.
// GET /health
func (h *PriceHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"ai":     h.engine.AIProvider(),
	})
}

// --- Helper Functions ---

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{Success: false, Error: message})
}

// missingFields lists absent fields in the given order, or "" if none are.
func missingFields(absent map[string]bool, order ...string) string {
	var names []string
	for _, name := range order {
		if absent[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "Missing required fields (" + strings.Join(names, ", ") + ")"
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestID").(string); ok {
		return id
	}
	return "-"
}
