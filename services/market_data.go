package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"kisan/models"

	"github.com/gofiber/fiber/v2"
)

const (
	varietyPageSize        = 50
	mandiPageSize          = 100
	defaultUpstreamTimeout = 10 * time.Second
)

// MarketDataSource fetches raw records from the two price datasets.
type MarketDataSource interface {
	FetchVarietyRecords(commodity, state string) models.FetchResult
	FetchMandiRecords(commodity, state, district string) models.FetchResult
}

// GatewayConfig locates and authenticates the upstream datasets.
type GatewayConfig struct {
	VarietyURL    string
	VarietyAPIKey string
	MandiURL      string
	MandiAPIKey   string
	Timeout       time.Duration
}

// MarketDataGateway is the data.gov.in client. Each fetch is a single page,
// single attempt; failures come back as an unsuccessful FetchResult.
type MarketDataGateway struct {
	cfg GatewayConfig
}

// NewMarketDataGateway creates a gateway, defaulting the timeout to 10s.
func NewMarketDataGateway(cfg GatewayConfig) *MarketDataGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultUpstreamTimeout
	}
	return &MarketDataGateway{cfg: cfg}
}

// FetchVarietyRecords retrieves the variety-wise trend dataset.
func (g *MarketDataGateway) FetchVarietyRecords(commodity, state string) models.FetchResult {
	log.Printf("Fetching variety prices for %s", commodity)
	return g.fetch("variety", g.cfg.VarietyURL, g.cfg.VarietyAPIKey, varietyPageSize, map[string]string{
		"commodity": commodity,
		"state":     state,
	})
}

// FetchMandiRecords retrieves the mandi-specific current price dataset.
func (g *MarketDataGateway) FetchMandiRecords(commodity, state, district string) models.FetchResult {
	log.Printf("Fetching mandi prices for %s", commodity)
	return g.fetch("mandi", g.cfg.MandiURL, g.cfg.MandiAPIKey, mandiPageSize, map[string]string{
		"commodity": commodity,
		"state":     state,
		"district":  district,
	})
}

type upstreamResponse struct {
	Records []models.RawPriceRecord `json:"records"`
	Total   interface{}             `json:"total"`
}

func (g *MarketDataGateway) fetch(label, baseURL, apiKey string, limit int, filters map[string]string) models.FetchResult {
	params := url.Values{}
	params.Set("api-key", apiKey)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", "0")
	for field, value := range filters {
		if value != "" {
			params.Set("filters["+field+"]", value)
		}
	}

	agent := fiber.Get(baseURL + "?" + params.Encode()).Timeout(g.cfg.Timeout)
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return failedFetch(label, fmt.Errorf("error making request: %w", errs[0]))
	}
	if code < 200 || code > 299 {
		return failedFetch(label, fmt.Errorf("upstream error (status code %d)", code))
	}

	var payload upstreamResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return failedFetch(label, fmt.Errorf("error decoding response: %w", err))
	}
	if payload.Records == nil {
		return failedFetch(label, fmt.Errorf("response carried no records"))
	}

	total := totalCount(payload.Total)
	if total == 0 {
		total = len(payload.Records)
	}
	log.Printf("Fetched %d %s price records", len(payload.Records), label)

	return models.FetchResult{
		Success: true,
		Records: payload.Records,
		Total:   total,
	}
}

func failedFetch(label string, err error) models.FetchResult {
	log.Printf("Error fetching %s prices: %v", label, err)
	return models.FetchResult{Success: false, Records: []models.RawPriceRecord{}, Error: err.Error()}
}

func totalCount(v interface{}) int {
	switch t := v.(type) {
	case float64:
		return int(t)
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
