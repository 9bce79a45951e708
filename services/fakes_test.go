package services

import (
	"context"
	"sync/atomic"

	"kisan/ai"
	"kisan/models"
)

type stubSource struct {
	variety models.FetchResult
	mandi   models.FetchResult
	calls   atomic.Int32
}

func (s *stubSource) FetchVarietyRecords(commodity, state string) models.FetchResult {
	s.calls.Add(1)
	return s.variety
}

func (s *stubSource) FetchMandiRecords(commodity, state, district string) models.FetchResult {
	s.calls.Add(1)
	return s.mandi
}

type stubCompleter struct {
	text     string
	err      error
	messages []ai.Message
	opts     ai.Options
	calls    int
}

func (c *stubCompleter) Name() string { return "stub" }

func (c *stubCompleter) Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	c.calls++
	c.messages = messages
	c.opts = opts
	return c.text, c.err
}

func record(fields map[string]interface{}) models.RawPriceRecord {
	return models.RawPriceRecord(fields)
}

func snapshotWith(trend models.TrendSignal, quotes ...models.MandiQuote) *models.PriceSnapshot {
	return &models.PriceSnapshot{Commodity: "Tomato", MandiQuotes: quotes, Trend: trend}
}

// blockingCompleter waits until the call's context is done.
type blockingCompleter struct {
	calls atomic.Int32
}

func (c *blockingCompleter) Name() string { return "blocking" }

func (c *blockingCompleter) Complete(ctx context.Context, messages []ai.Message, opts ai.Options) (string, error) {
	c.calls.Add(1)
	<-ctx.Done()
	return "", ctx.Err()
}
