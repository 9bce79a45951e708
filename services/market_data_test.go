package services

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMandiRecordsSendsFilters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 2, "records": [
			{"market": "Coimbatore", "modal_price": "2600", "arrival_date": "18/10/2024"},
			{"market": "Salem", "modal_price": "2300", "arrival_date": "18/10/2024"}
		]}`))
	}))
	defer srv.Close()

	gw := NewMarketDataGateway(GatewayConfig{MandiURL: srv.URL, MandiAPIKey: "mandi-key", Timeout: time.Second})
	res := gw.FetchMandiRecords("Tomato", "Tamil Nadu", "Coimbatore")

	require.True(t, res.Success)
	assert.Len(t, res.Records, 2)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "mandi-key", got.Get("api-key"))
	assert.Equal(t, "json", got.Get("format"))
	assert.Equal(t, "100", got.Get("limit"))
	assert.Equal(t, "0", got.Get("offset"))
	assert.Equal(t, "Tomato", got.Get("filters[commodity]"))
	assert.Equal(t, "Tamil Nadu", got.Get("filters[state]"))
	assert.Equal(t, "Coimbatore", got.Get("filters[district]"))
}

func TestFetchVarietyRecordsOmitsEmptyFilters(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"records": [{"Modal_Price": "2400", "Arrival_Date": "18/10/2024"}]}`))
	}))
	defer srv.Close()

	gw := NewMarketDataGateway(GatewayConfig{VarietyURL: srv.URL, VarietyAPIKey: "variety-key"})
	res := gw.FetchVarietyRecords("Wheat", "")

	require.True(t, res.Success)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "50", got.Get("limit"))
	assert.Equal(t, "variety-key", got.Get("api-key"))
	_, hasState := got["filters[state]"]
	assert.False(t, hasState)
}

func TestFetchAbsorbsUpstreamFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	gw := NewMarketDataGateway(GatewayConfig{MandiURL: srv.URL, VarietyURL: srv.URL})
	res := gw.FetchMandiRecords("Tomato", "", "")
	assert.False(t, res.Success)
	assert.Empty(t, res.Records)
	assert.Contains(t, res.Error, "503")
}

func TestFetchAbsorbsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer srv.Close()

	res := NewMarketDataGateway(GatewayConfig{VarietyURL: srv.URL}).FetchVarietyRecords("Tomato", "")
	assert.False(t, res.Success)
	assert.Empty(t, res.Records)
}

func TestFetchAbsorbsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"records": []}`))
	}))
	defer srv.Close()

	gw := NewMarketDataGateway(GatewayConfig{MandiURL: srv.URL, Timeout: 50 * time.Millisecond})
	res := gw.FetchMandiRecords("Tomato", "", "")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestFetchAbsorbsConnectionError(t *testing.T) {
	gw := NewMarketDataGateway(GatewayConfig{MandiURL: "http://127.0.0.1:1", Timeout: time.Second})
	res := gw.FetchMandiRecords("Tomato", "", "")
	assert.False(t, res.Success)
}
