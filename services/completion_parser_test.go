package services

import (
	"strings"
	"testing"

	"kisan/models"

	"github.com/stretchr/testify/assert"
)

func TestParseCompletionBulletReasons(t *testing.T) {
	text := `RECOMMENDATION: Sell now

Reasons:
• Prices rose 8.33% over the last week
- Coimbatore pays ₹2600, the best in the region
* Demand is strong ahead of the festival season
2) Salem is ₹300 lower than Coimbatore today
✓ Arrivals are expected to increase next week
- short`

	got := ParseCompletion(text)
	assert.Equal(t, models.ActionSellNow, got.Action)
	assert.Equal(t, []string{
		"Prices rose 8.33% over the last week",
		"Coimbatore pays ₹2600, the best in the region",
		"Demand is strong ahead of the festival season",
		"Salem is ₹300 lower than Coimbatore today",
	}, got.Reasons)
}

func TestParseCompletionWaitSignal(t *testing.T) {
	assert.Equal(t, models.ActionWait, ParseCompletion("I suggest you WAIT for better prices.").Action)
	assert.Equal(t, models.ActionWait, ParseCompletion("Hold your stock for a week.").Action)
	assert.Equal(t, models.ActionSellNow, ParseCompletion("Sell today at Coimbatore.").Action)
}

func TestParseCompletionSentenceFallback(t *testing.T) {
	text := "Sell now. Coimbatore is offering the best modal price this week! " +
		"The trend has been rising steadily for seven days. Ok? " +
		"Demand from nearby cities keeps prices firm at the moment. " +
		"A fourth long sentence that should be dropped by the cap."

	got := ParseCompletion(text)
	assert.Equal(t, []string{
		"Coimbatore is offering the best modal price this week",
		"The trend has been rising steadily for seven days",
		"Demand from nearby cities keeps prices firm at the moment",
	}, got.Reasons)
}

func TestParseCompletionNeverExceedsFour(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("- a reasonably long reason line\n")
	}
	assert.Len(t, ParseCompletion(sb.String()).Reasons, 4)
	assert.Empty(t, ParseCompletion("").Reasons)
}

func TestParseCompletionCheckmarkLines(t *testing.T) {
	text := "Advice:\n✔ Coimbatore pays the highest modal price\n✓ Arrivals are falling this week"

	assert.Equal(t, []string{
		"Coimbatore pays the highest modal price",
		"Arrivals are falling this week",
	}, ParseCompletion(text).Reasons)
}
