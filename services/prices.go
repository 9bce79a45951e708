package services

import (
	"log"
	"sort"
	"time"

	"kisan/models"
	"kisan/utils"

	"golang.org/x/sync/errgroup"
)

// PriceService assembles per-request price snapshots. It holds no state
// between requests.
type PriceService struct {
	source MarketDataSource
	now    func() time.Time
}

// NewPriceService creates a price service over the given data source.
func NewPriceService(source MarketDataSource) *PriceService {
	return &PriceService{source: source, now: time.Now}
}

// GetSnapshot fetches both datasets concurrently and combines them. Fetch
// failures yield empty data, never an error.
func (p *PriceService) GetSnapshot(commodity, state, district string) *models.PriceSnapshot {
	log.Printf("Getting comprehensive price data for %s (%s, %s)",
		commodity, utils.ValueOrDefault(state, "All India"), utils.ValueOrDefault(district, "All districts"))

	var variety, mandi models.FetchResult
	var g errgroup.Group
	g.Go(func() error {
		variety = p.source.FetchVarietyRecords(commodity, state)
		return nil
	})
	g.Go(func() error {
		mandi = p.source.FetchMandiRecords(commodity, state, district)
		return nil
	})
	_ = g.Wait()

	quotes := NormalizeMandiRecords(mandi.Records)
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].ModalPrice > quotes[j].ModalPrice
	})

	return &models.PriceSnapshot{
		Commodity:         commodity,
		State:             state,
		District:          district,
		MandiQuotes:       quotes,
		Trend:             AnalyzeTrend(variety.Records),
		RawVarietySamples: variety.Records,
		VarietyFetch:      variety,
		MandiFetch:        mandi,
		Timestamp:         p.now().UTC(),
	}
}

// CompareMandis filters quotes by comma-separated, case-insensitive name
// fragments and aggregates their modal prices. An empty filter keeps every
// quote. The comparison is nil when nothing matches.
func CompareMandis(quotes []models.MandiQuote, filter string) (*models.Comparison, []models.MandiQuote) {
	selected := quotes
	if terms := utils.SplitCommaList(filter); len(terms) > 0 {
		selected = make([]models.MandiQuote, 0, len(quotes))
		for _, q := range quotes {
			if utils.ContainsAnyFold(q.Name, terms) {
				selected = append(selected, q)
			}
		}
	}
	if len(selected) == 0 {
		return nil, selected
	}

	highest, lowest := selected[0].ModalPrice, selected[0].ModalPrice
	best := selected[0].Name
	var sum float64
	for _, q := range selected {
		sum += q.ModalPrice
		if q.ModalPrice > highest {
			highest = q.ModalPrice
			best = q.Name
		}
		if q.ModalPrice < lowest {
			lowest = q.ModalPrice
		}
	}

	return &models.Comparison{
		Average:    utils.Round2(sum / float64(len(selected))),
		Highest:    highest,
		Lowest:     lowest,
		Difference: utils.Round2(highest - lowest),
		BestMandi:  best,
		Count:      len(selected),
	}, selected
}
