package services

import (
	"fmt"
	"testing"

	"kisan/models"

	"github.com/stretchr/testify/assert"
)

func series(prices ...string) []models.RawPriceRecord {
	records := make([]models.RawPriceRecord, len(prices))
	for i, p := range prices {
		// most recent first
		records[i] = record(map[string]interface{}{
			"modal_price":  p,
			"arrival_date": fmt.Sprintf("%02d/10/2024", 28-i),
		})
	}
	return records
}

func TestAnalyzeTrendEmptyAndSingle(t *testing.T) {
	assert.Equal(t, models.TrendSignal{Trend: models.TrendStable}, AnalyzeTrend(nil))

	single := AnalyzeTrend(series("2500"))
	assert.Equal(t, models.TrendStable, single.Trend)
	assert.Zero(t, single.ChangePercent)
	assert.Equal(t, 1, single.SampleDays)
}

func TestAnalyzeTrendRisingWindow(t *testing.T) {
	got := AnalyzeTrend(series("2600", "2600", "2600", "2400", "2400", "2400", "2400"))

	assert.Equal(t, 2600.0, got.RecentAvg)
	assert.Equal(t, 2400.0, got.OlderAvg)
	assert.Equal(t, 8.33, got.ChangePercent)
	assert.Equal(t, models.TrendRising, got.Trend)
	assert.Equal(t, 7, got.SampleDays)
}

func TestAnalyzeTrendSortsByDate(t *testing.T) {
	records := series("2600", "2600", "2600", "2400", "2400", "2400", "2400")
	reversed := make([]models.RawPriceRecord, len(records))
	for i := range records {
		reversed[len(records)-1-i] = records[i]
	}
	assert.Equal(t, AnalyzeTrend(records), AnalyzeTrend(reversed))
}

func TestAnalyzeTrendUsesOnlySevenMostRecent(t *testing.T) {
	got := AnalyzeTrend(series("2000", "2000", "2000", "2000", "2000", "2000", "2000", "100", "100"))
	assert.Equal(t, 7, got.SampleDays)
	assert.Equal(t, models.TrendStable, got.Trend)
	assert.Zero(t, got.ChangePercent)
}

func TestAnalyzeTrendFallsBackToMaxPrice(t *testing.T) {
	records := []models.RawPriceRecord{
		record(map[string]interface{}{"modal_price": "0", "max_price": "2200", "arrival_date": "02/10/2024"}),
		record(map[string]interface{}{"max_price": "2000", "arrival_date": "01/10/2024"}),
	}
	got := AnalyzeTrend(records)
	assert.Equal(t, 2, got.SampleDays)
	assert.Equal(t, 2100.0, got.RecentAvg)
	assert.Equal(t, 2100.0, got.OlderAvg)
	assert.Equal(t, models.TrendStable, got.Trend)
}

func TestAnalyzeTrendZeroOlderAverage(t *testing.T) {
	got := AnalyzeTrend(series("2500", "0", "0", "0", "0", "0"))
	assert.Zero(t, got.OlderAvg)
	assert.Zero(t, got.ChangePercent)
	assert.Equal(t, models.TrendStable, got.Trend)
}

func TestClassifyTrendBoundaries(t *testing.T) {
	cases := map[float64]string{
		2.00:  models.TrendStable,
		2.01:  models.TrendRising,
		-2.00: models.TrendStable,
		-2.01: models.TrendFalling,
		0:     models.TrendStable,
	}
	for change, want := range cases {
		assert.Equal(t, want, ClassifyTrend(change), "ClassifyTrend(%v)", change)
	}
}
