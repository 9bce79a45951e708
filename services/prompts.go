package services

import (
	"fmt"
	"strings"

	"kisan/models"
	"kisan/utils"
)

const recommendationSystemPrompt = `You are Kisan AI, an expert agricultural market advisor helping Indian farmers make selling decisions.

Your job is to analyze real market data and provide actionable selling advice.

Guidelines:
- Base ALL recommendations on the actual data provided
- Be specific about prices, trends, and mandis
- Give clear "Sell now" or "Wait" recommendations
- Explain your reasoning with real numbers
- Keep language simple and farmer-friendly
- Always mention specific mandi names and prices
- Include at least 3 concrete reasons for your recommendation`

const explainSystemPrompt = "You are Kisan AI, explaining market recommendations to farmers in simple, clear language."

const askSystemPrompt = "You are Kisan AI, answering farmers questions about market prices using real data."

func buildRecommendationPrompt(s *models.PriceSnapshot, uc models.UserContext) string {
	var mandis strings.Builder
	for i, q := range s.TopQuotes(5) {
		fmt.Fprintf(&mandis, "%d. %s: Min ₹%s, Modal ₹%s, Max ₹%s (%s)\n",
			i+1, q.Name,
			utils.FormatAmount(q.MinPrice), utils.FormatAmount(q.ModalPrice), utils.FormatAmount(q.MaxPrice),
			utils.ValueOrDefault(q.Variety, "standard"))
	}

	t := s.Trend
	return fmt.Sprintf(`MARKET ANALYSIS REQUEST

COMMODITY: %s
FARMER'S QUANTITY: %s %s
STATE: %s
PREFERRED MANDI: %s

REAL MARKET DATA (from Government APIs):

MANDI PRICES (Current):
%sTotal mandis available: %d

PRICE TRENDS (Last %d days):
Trend: %s
Change: %.2f%%
Days analyzed: %d
Recent average: ₹%.2f
Earlier average: ₹%.2f

TASK: Analyze this real market data and provide a selling recommendation.

Your response MUST include:

1. RECOMMENDATION: Either "Sell now" or "Wait for better prices"

2. BEST MANDI: Name the specific mandi with best price (use actual names from data)

3. EXPECTED EARNINGS: Calculate based on quantity × best modal price

4. REASONS: Provide 3-4 specific reasons using actual data:
   - Price trend (rising/falling/stable)
   - Comparison between mandis
   - Market demand indicators
   - Any urgent factors

5. ALTERNATIVE: If prices are low, suggest when to wait or which mandi to monitor

Format your response clearly with these sections. Be specific with numbers and mandi names.`,
		s.Commodity,
		utils.FormatAmount(uc.Quantity), utils.ValueOrDefault(uc.Unit, "kg"),
		utils.ValueOrDefault(uc.State, "Not specified"),
		utils.ValueOrDefault(uc.PreferredMandi, "Any nearby"),
		mandis.String(), len(s.MandiQuotes),
		t.SampleDays, t.Trend, t.ChangePercent, t.SampleDays, t.RecentAvg, t.OlderAvg,
	)
}

func buildExplainPrompt(s *models.PriceSnapshot, rec models.SellingRecommendation) string {
	return fmt.Sprintf(`The farmer received this selling recommendation: "%s"

MARKET DATA:
- Commodity: %s
- Best Mandi: %s (₹%s)
- Price Trend: %s (%.2f%%)
- Total Mandis: %d

Explain in simple terms WHY this recommendation makes sense. Include:
1. What the market data shows
2. Why this is a good/bad time to sell
3. What risks the farmer should consider
4. Alternative actions if they disagree

Keep it conversational and helpful. Use specific numbers from the data.`,
		rec.ActionText, s.Commodity, rec.BestMandi, utils.FormatAmount(rec.ExpectedPrice),
		s.Trend.Trend, s.Trend.ChangePercent, len(s.MandiQuotes))
}

func buildAskPrompt(query string, s *models.PriceSnapshot) string {
	top := s.TopQuotes(3)
	mandis := make([]string, len(top))
	for i, q := range top {
		mandis[i] = fmt.Sprintf("%s (₹%s)", q.Name, utils.FormatAmount(q.ModalPrice))
	}

	return fmt.Sprintf(`MARKET CONTEXT:
Commodity: %s
Mandis: %s
Trend: %s (%.2f%%)

FARMER'S QUESTION: %s

Provide a helpful, specific answer using the market data above.`,
		s.Commodity, strings.Join(mandis, ", "), s.Trend.Trend, s.Trend.ChangePercent, query)
}
