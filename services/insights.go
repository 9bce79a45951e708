package services

import (
	"fmt"

	"kisan/models"
)

const (
	spreadThreshold = 100
	demandThreshold = 1000
)

// GenerateInsights derives short observations from a snapshot without AI.
// It always returns at least the trend insight.
func GenerateInsights(s *models.PriceSnapshot) []string {
	insights := []string{trendInsight(s.Trend)}

	if n := len(s.MandiQuotes); n >= 2 {
		highest := s.MandiQuotes[0]
		lowest := s.MandiQuotes[n-1]
		diff := highest.ModalPrice - lowest.ModalPrice
		if diff > spreadThreshold {
			insights = append(insights, fmt.Sprintf("%s offers ₹%.0f more than %s", highest.Name, diff, lowest.Name))
		} else {
			insights = append(insights, "Nearby mandis have similar prices")
		}
	}

	if averageModal(s.MandiQuotes) > demandThreshold {
		insights = append(insights, "Market demand is strong")
	}
	return insights
}

func trendInsight(t models.TrendSignal) string {
	switch t.Trend {
	case models.TrendRising:
		return fmt.Sprintf("Prices rising for last %d days", t.SampleDays)
	case models.TrendFalling:
		return fmt.Sprintf("Prices declining over %d days", t.SampleDays)
	}
	if t.SampleDays > 0 {
		return fmt.Sprintf("Prices stable over last %d days", t.SampleDays)
	}
	return "Prices stable in current market"
}

func averageModal(quotes []models.MandiQuote) float64 {
	if len(quotes) == 0 {
		return 0
	}
	var sum float64
	for _, q := range quotes {
		sum += q.ModalPrice
	}
	return sum / float64(len(quotes))
}
