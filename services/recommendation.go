package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"kisan/ai"
	"kisan/models"
	"kisan/utils"
)

const (
	fallbackConfidence = 70
	maxConfidence      = 95
	defaultAITimeout   = 30 * time.Second

	fallbackExplanationText = "Recommendation based on market data analysis."
	aiUnavailableAnswer     = "AI service is not available. Please check your configuration."
	aiErrorAnswer           = "I apologize, but I encountered an error. Please try again."
)

var (
	recommendOptions = ai.Options{Temperature: 0.3, MaxTokens: 800}
	explainOptions   = ai.Options{Temperature: 0.4, MaxTokens: 600}
	askOptions       = ai.Options{Temperature: 0.5, MaxTokens: 500}
)

// RecommendationEngine turns a price snapshot into selling advice. With no
// completer configured every call takes the deterministic fallback path.
type RecommendationEngine struct {
	completer ai.Completer
	timeout   time.Duration
}

// NewRecommendationEngine creates an engine. A nil completer means the AI
// backend is not configured.
func NewRecommendationEngine(completer ai.Completer, timeout time.Duration) *RecommendationEngine {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	if completer == nil {
		log.Println("AI credential not configured - recommendations will use fallback")
	}
	return &RecommendationEngine{completer: completer, timeout: timeout}
}

// AIEnabled reports whether an AI backend is configured.
func (e *RecommendationEngine) AIEnabled() bool {
	return e.completer != nil
}

// AIProvider names the configured backend, or "fallback".
func (e *RecommendationEngine) AIProvider() string {
	if e.completer == nil {
		return "fallback"
	}
	return e.completer.Name()
}

// Recommend produces a selling recommendation. It never fails: AI errors
// collapse to FallbackRecommendation.
func (e *RecommendationEngine) Recommend(ctx context.Context, s *models.PriceSnapshot, uc models.UserContext) models.SellingRecommendation {
	if e.completer == nil {
		return FallbackRecommendation(s)
	}

	log.Printf("Generating AI selling recommendation for %s", s.Commodity)
	text, err := e.complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: recommendationSystemPrompt},
		{Role: ai.RoleUser, Content: buildRecommendationPrompt(s, uc)},
	}, recommendOptions)
	if err != nil {
		log.Printf("Error generating AI recommendation: %v", err)
		return FallbackRecommendation(s)
	}

	parsed := ParseCompletion(text)
	best := bestOrUnknown(s)
	reasons := parsed.Reasons
	if len(reasons) == 0 {
		reasons = fallbackReasons(s.Trend, best)
	}

	rec := models.SellingRecommendation{
		Action:          parsed.Action,
		ActionText:      models.ActionText(parsed.Action),
		BestMandi:       best.Name,
		ExpectedPrice:   best.ModalPrice,
		Reasons:         reasons,
		Confidence:      CalculateConfidence(s.Trend),
		FullExplanation: text,
	}
	log.Printf("AI recommendation generated: %s", rec.Action)
	return rec
}

// Explain asks the AI to justify an existing recommendation.
func (e *RecommendationEngine) Explain(ctx context.Context, s *models.PriceSnapshot, rec models.SellingRecommendation) string {
	if e.completer == nil {
		return FallbackExplanation(rec)
	}

	text, err := e.complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: explainSystemPrompt},
		{Role: ai.RoleUser, Content: buildExplainPrompt(s, rec)},
	}, explainOptions)
	if err != nil {
		log.Printf("Error generating explanation: %v", err)
		return FallbackExplanation(rec)
	}
	return text
}

// Answer forwards a free-form question with market context. There is no
// synthesized answer when AI is unavailable; ok is false in that case.
func (e *RecommendationEngine) Answer(ctx context.Context, query string, s *models.PriceSnapshot, history []models.ChatMessage) (answer string, ok bool) {
	if e.completer == nil {
		return aiUnavailableAnswer, false
	}

	messages := []ai.Message{{Role: ai.RoleSystem, Content: askSystemPrompt}}
	for _, m := range history {
		if (m.Role == ai.RoleUser || m.Role == ai.RoleAssistant) && m.Content != "" {
			messages = append(messages, ai.Message{Role: m.Role, Content: m.Content})
		}
	}
	messages = append(messages, ai.Message{Role: ai.RoleUser, Content: buildAskPrompt(query, s)})

	text, err := e.complete(ctx, messages, askOptions)
	if err != nil {
		log.Printf("Error answering query: %v", err)
		return aiErrorAnswer, false
	}
	return text, true
}

func (e *RecommendationEngine) complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.completer.Complete(ctx, messages, opts)
}

// CalculateConfidence scores how much the trend data supports a decision.
func CalculateConfidence(t models.TrendSignal) int {
	score := 50
	if t.SampleDays >= 5 {
		score += 20
	}
	if math.Abs(t.ChangePercent) > 3 {
		score += 15
	}
	if t.Trend != models.TrendStable {
		score += 15
	}
	return min(score, maxConfidence)
}

// FallbackRecommendation derives advice from the trend alone.
func FallbackRecommendation(s *models.PriceSnapshot) models.SellingRecommendation {
	best := bestOrUnknown(s)
	action := models.ActionSellNow
	if s.Trend.Trend == models.TrendFalling {
		action = models.ActionWait
	}

	return models.SellingRecommendation{
		Action:          action,
		ActionText:      models.ActionText(action),
		BestMandi:       best.Name,
		ExpectedPrice:   best.ModalPrice,
		Reasons:         fallbackReasons(s.Trend, best),
		Confidence:      fallbackConfidence,
		FullExplanation: fallbackExplanationText,
	}
}

// FallbackExplanation is the templated explanation used without AI.
func FallbackExplanation(rec models.SellingRecommendation) string {
	return fmt.Sprintf(`The recommendation to "%s" is based on current market conditions and price trends. %s offers a competitive price of ₹%s.`,
		rec.ActionText, rec.BestMandi, utils.FormatAmount(rec.ExpectedPrice))
}

func fallbackReasons(t models.TrendSignal, best models.MandiQuote) []string {
	change := utils.FormatAmount(math.Abs(t.ChangePercent))
	switch t.Trend {
	case models.TrendRising:
		return []string{
			fmt.Sprintf("Prices have increased by %s%% recently", change),
			fmt.Sprintf("%s offers good price of ₹%s", best.Name, utils.FormatAmount(best.ModalPrice)),
			"Market trend is positive",
		}
	case models.TrendFalling:
		return []string{
			fmt.Sprintf("Prices declining by %s%%", change),
			"Better to wait for market recovery",
			"Monitor prices for next few days",
		}
	default:
		return []string{
			"Prices are stable in current market",
			fmt.Sprintf("%s has competitive rate", best.Name),
			"Good time for planned selling",
		}
	}
}

func bestOrUnknown(s *models.PriceSnapshot) models.MandiQuote {
	if best, ok := s.BestQuote(); ok {
		return best
	}
	return models.MandiQuote{Name: "Unknown"}
}
