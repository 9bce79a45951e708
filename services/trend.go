package services

import (
	"math"
	"sort"
	"time"

	"kisan/models"
	"kisan/utils"
)

const (
	trendWindow      = 7
	trendSubWindow   = 3
	trendThresholdPc = 2.0
)

// AnalyzeTrend compares the mean of the three most recent prices with the
// mean of the last three prices inside a seven-record look-back. The two
// sub-windows overlap when fewer than six records are available.
func AnalyzeTrend(records []models.RawPriceRecord) models.TrendSignal {
	switch len(records) {
	case 0:
		return models.TrendSignal{Trend: models.TrendStable}
	case 1:
		p := trendPrice(records[0])
		return models.TrendSignal{Trend: models.TrendStable, SampleDays: 1, RecentAvg: p, OlderAvg: p}
	}

	type sample struct {
		at    time.Time
		price float64
	}
	samples := make([]sample, len(records))
	for i, r := range records {
		at, _ := utils.ParseRecordDate(r.Lookup(models.DateFields))
		samples[i] = sample{at: at, price: trendPrice(r)}
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].at.After(samples[j].at)
	})

	if len(samples) > trendWindow {
		samples = samples[:trendWindow]
	}
	prices := make([]float64, len(samples))
	for i, s := range samples {
		prices[i] = s.price
	}

	recent := mean(prices[:min(trendSubWindow, len(prices))])
	older := mean(prices[len(prices)-min(trendSubWindow, len(prices)):])

	signal := models.TrendSignal{
		SampleDays: len(prices),
		RecentAvg:  utils.Round2(recent),
		OlderAvg:   utils.Round2(older),
	}
	if older != 0 {
		signal.ChangePercent = utils.Round2((recent - older) / older * 100)
	}
	if math.IsNaN(signal.ChangePercent) || math.IsInf(signal.ChangePercent, 0) {
		signal.ChangePercent = 0
	}
	signal.Trend = ClassifyTrend(signal.ChangePercent)
	return signal
}

// ClassifyTrend maps a percentage change onto a trend direction.
func ClassifyTrend(changePercent float64) string {
	switch {
	case changePercent > trendThresholdPc:
		return models.TrendRising
	case changePercent < -trendThresholdPc:
		return models.TrendFalling
	default:
		return models.TrendStable
	}
}

// trendPrice prefers the modal price and falls back to the max price.
func trendPrice(r models.RawPriceRecord) float64 {
	if p := utils.ParsePrice(r.Lookup(models.ModalPriceFields)); p != 0 {
		return p
	}
	return utils.ParsePrice(r.Lookup(models.MaxPriceFields))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
