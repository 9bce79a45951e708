package models

import (
	"strconv"
	"strings"
	"time"
)

// Field aliases used by the two government datasets. The first non-empty
// alias wins.
var (
	CommodityFields  = []string{"commodity", "Commodity"}
	VarietyFields    = []string{"variety", "Variety"}
	StateFields      = []string{"state", "State"}
	DistrictFields   = []string{"district", "District"}
	MarketFields     = []string{"market", "mandi", "Market"}
	MinPriceFields   = []string{"min_price", "minimum_price", "Min_Price"}
	MaxPriceFields   = []string{"max_price", "maximum_price", "Max_Price"}
	ModalPriceFields = []string{"modal_price", "mode_price", "Modal_Price"}
	DateFields       = []string{"arrival_date", "date", "Arrival_Date"}
)

// UnknownMarket is used when a record carries no market name.
const UnknownMarket = "Unknown Market"

// RawPriceRecord is a single upstream record as decoded from JSON. Field
// names and value types vary between datasets.
type RawPriceRecord map[string]interface{}

// Lookup returns the first non-empty value among the given aliases,
// rendered as a string.
func (r RawPriceRecord) Lookup(aliases []string) string {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		var s string
		switch val := v.(type) {
		case string:
			s = strings.TrimSpace(val)
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		case int:
			s = strconv.Itoa(val)
		case bool:
			s = strconv.FormatBool(val)
		default:
			continue
		}
		if s != "" {
			return s
		}
	}
	return ""
}

// FetchResult is what the market data gateway returns for one dataset.
// A failed fetch carries no records and Success=false; it is never an error.
type FetchResult struct {
	Success bool             `json:"success"`
	Records []RawPriceRecord `json:"-"`
	Total   int              `json:"total"`
	Error   string           `json:"error,omitempty"`
}

// MandiQuote is the normalized price of a commodity at one market.
type MandiQuote struct {
	Name       string  `json:"name"`
	MinPrice   float64 `json:"minPrice"`
	MaxPrice   float64 `json:"maxPrice"`
	ModalPrice float64 `json:"modalPrice"`
	Date       string  `json:"date"`
	District   string  `json:"district"`
	State      string  `json:"state"`
	Variety    string  `json:"variety"`
	Commodity  string  `json:"commodity"`
}

// Trend directions.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// TrendSignal summarizes the recent direction of the variety-wise series.
type TrendSignal struct {
	Trend         string  `json:"trend"`
	ChangePercent float64 `json:"changePercent"`
	SampleDays    int     `json:"sampleDays"`
	RecentAvg     float64 `json:"recentAvg"`
	OlderAvg      float64 `json:"olderAvg"`
}

// PriceSnapshot is the per-request aggregate of both datasets.
type PriceSnapshot struct {
	Commodity         string           `json:"commodity"`
	State             string           `json:"state,omitempty"`
	District          string           `json:"district,omitempty"`
	MandiQuotes       []MandiQuote     `json:"mandis"`
	Trend             TrendSignal      `json:"trends"`
	RawVarietySamples []RawPriceRecord `json:"-"`
	VarietyFetch      FetchResult      `json:"-"`
	MandiFetch        FetchResult      `json:"-"`
	Timestamp         time.Time        `json:"timestamp"`
}

// BestQuote returns the highest-priced quote. Quotes are kept sorted
// descending by modal price.
func (s *PriceSnapshot) BestQuote() (MandiQuote, bool) {
	if len(s.MandiQuotes) == 0 {
		return MandiQuote{}, false
	}
	return s.MandiQuotes[0], true
}

// TopQuotes returns at most n quotes from the head of the list.
func (s *PriceSnapshot) TopQuotes(n int) []MandiQuote {
	if n >= len(s.MandiQuotes) {
		return s.MandiQuotes
	}
	return s.MandiQuotes[:n]
}

// UpstreamFailed reports whether neither dataset could be fetched.
func (s *PriceSnapshot) UpstreamFailed() bool {
	return !s.VarietyFetch.Success && !s.MandiFetch.Success
}

// Recommendation actions.
const (
	ActionSellNow = "sell_now"
	ActionWait    = "wait"
)

// ActionText returns the farmer-facing label for an action.
func ActionText(action string) string {
	if action == ActionWait {
		return "Wait for better prices"
	}
	return "Sell now"
}

// SellingRecommendation is the structured advice returned to the farmer.
type SellingRecommendation struct {
	Action          string   `json:"action"`
	ActionText      string   `json:"actionText"`
	BestMandi       string   `json:"bestMandi"`
	ExpectedPrice   float64  `json:"expectedPrice"`
	Reasons         []string `json:"reasons"`
	Confidence      int      `json:"confidence"`
	FullExplanation string   `json:"fullExplanation,omitempty"`
}

// UserContext describes what the farmer wants to sell.
type UserContext struct {
	Quantity       float64
	Unit           string
	State          string
	PreferredMandi string
}

// Comparison aggregates modal prices across a filtered set of mandis.
type Comparison struct {
	Average    float64 `json:"average"`
	Highest    float64 `json:"highest"`
	Lowest     float64 `json:"lowest"`
	Difference float64 `json:"difference"`
	BestMandi  string  `json:"bestMandi"`
	Count      int     `json:"count"`
}

// RecommendationView is a recommendation with earnings for the farmer's
// quantity at the best mandi.
type RecommendationView struct {
	SellingRecommendation
	ExpectedEarnings float64 `json:"expectedEarnings"`
}

// QuoteSummary is the compact mandi view used in Q&A context.
type QuoteSummary struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
