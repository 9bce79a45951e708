package services

import (
	"time"

	"kisan/models"
	"kisan/utils"
)

// NormalizeMandiRecords collapses raw mandi records into one quote per market
// name. A record with a later arrival date replaces the one seen before it;
// ties keep the first. A parseable date always beats an unparseable one.
// Output order follows first appearance of each market.
func NormalizeMandiRecords(records []models.RawPriceRecord) []models.MandiQuote {
	type entry struct {
		quote  models.MandiQuote
		at     time.Time
		parsed bool
	}

	index := make(map[string]int)
	entries := make([]entry, 0, len(records))

	for _, r := range records {
		name := r.Lookup(models.MarketFields)
		if name == "" {
			name = models.UnknownMarket
		}
		rawDate := r.Lookup(models.DateFields)
		at, parsed := utils.ParseRecordDate(rawDate)

		e := entry{
			quote: models.MandiQuote{
				Name:       name,
				MinPrice:   utils.ParsePrice(r.Lookup(models.MinPriceFields)),
				MaxPrice:   utils.ParsePrice(r.Lookup(models.MaxPriceFields)),
				ModalPrice: utils.ParsePrice(r.Lookup(models.ModalPriceFields)),
				Date:       utils.FormatRecordDate(rawDate),
				District:   r.Lookup(models.DistrictFields),
				State:      r.Lookup(models.StateFields),
				Variety:    r.Lookup(models.VarietyFields),
				Commodity:  r.Lookup(models.CommodityFields),
			},
			at:     at,
			parsed: parsed,
		}

		i, seen := index[name]
		if !seen {
			index[name] = len(entries)
			entries = append(entries, e)
			continue
		}
		if newerThan(e.at, e.parsed, entries[i].at, entries[i].parsed) {
			entries[i] = e
		}
	}

	quotes := make([]models.MandiQuote, len(entries))
	for i, e := range entries {
		quotes[i] = e.quote
	}
	return quotes
}

func newerThan(at time.Time, parsed bool, current time.Time, currentParsed bool) bool {
	if !parsed {
		return false
	}
	if !currentParsed {
		return true
	}
	return at.After(current)
}
