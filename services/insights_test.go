package services

import (
	"testing"

	"kisan/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInsightsSpreadAndDemand(t *testing.T) {
	s := snapshotWith(models.TrendSignal{Trend: models.TrendRising, SampleDays: 7},
		models.MandiQuote{Name: "Coimbatore", ModalPrice: 2600},
		models.MandiQuote{Name: "Salem", ModalPrice: 2300},
	)

	assert.Equal(t, []string{
		"Prices rising for last 7 days",
		"Coimbatore offers ₹300 more than Salem",
		"Market demand is strong",
	}, GenerateInsights(s))
}

func TestGenerateInsightsSimilarPrices(t *testing.T) {
	s := snapshotWith(models.TrendSignal{Trend: models.TrendFalling, SampleDays: 5},
		models.MandiQuote{Name: "A", ModalPrice: 900},
		models.MandiQuote{Name: "B", ModalPrice: 850},
	)

	assert.Equal(t, []string{"Prices declining over 5 days", "Nearby mandis have similar prices"}, GenerateInsights(s))
}

func TestGenerateInsightsNoData(t *testing.T) {
	got := GenerateInsights(snapshotWith(models.TrendSignal{Trend: models.TrendStable}))
	assert.Equal(t, []string{"Prices stable in current market"}, got)

	got = GenerateInsights(snapshotWith(models.TrendSignal{Trend: models.TrendStable, SampleDays: 4}))
	assert.Equal(t, []string{"Prices stable over last 4 days"}, got)
}
