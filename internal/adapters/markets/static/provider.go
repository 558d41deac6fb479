// Package static serves quotes and price series from a built-in catalog.
// It is the default provider for local development and frontend work when
// no upstream market data feed is reachable
package static

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	perr "sentimenttech/internal/platform/errors"
	"sentimenttech/internal/services/stocks/domain"
)

// basePrice anchors the synthetic series
const basePrice = 198.14

// Provider implements the stocks MarketsPort from in-process data
type Provider struct {
	quotes map[string]domain.Quote
}

// New constructs the provider with the default catalog
func New() *Provider {
	return &Provider{
		quotes: map[string]domain.Quote{
			"AAPL": {
				Symbol:        "AAPL",
				Name:          "Apple Inc.",
				Price:         198.14,
				Change:        2.34,
				ChangePercent: 1.18,
				Volume:        "45.3M",
				MarketCap:     "2.87T",
				PERatio:       30.21,
			},
			"MSFT": {
				Symbol:        "MSFT",
				Name:          "Microsoft Corporation",
				Price:         417.23,
				Change:        -1.85,
				ChangePercent: -0.44,
				Volume:        "22.1M",
				MarketCap:     "3.1T",
				PERatio:       35.12,
			},
		},
	}
}

// Quote looks the symbol up in the catalog
func (p *Provider) Quote(_ context.Context, symbol string) (domain.Quote, error) {
	q, ok := p.quotes[upper(symbol)]
	if !ok {
		return domain.Quote{}, perr.NotFoundf("Stock %s not found", symbol)
	}
	return q, nil
}

// PriceSeries generates a deterministic synthetic series for any symbol.
// Intraday windows get hourly bars; longer windows get a fixed point count
// with wider swings on the multi-year ranges
func (p *Provider) PriceSeries(_ context.Context, symbol, interval string) (domain.PriceSeries, error) {
	var data []domain.PriceBar

	if interval == "1D" {
		for i := 0; i < 8; i++ {
			change := float64(i-4) * 0.25
			data = append(data, domain.PriceBar{
				Time:   fmt.Sprintf("%d:30", 9+i),
				Open:   round2(basePrice + change - 0.1),
				High:   round2(basePrice + change + 0.2),
				Low:    round2(basePrice + change - 0.3),
				Close:  round2(basePrice + change),
				Volume: int64(1000000 + i*200000),
			})
		}
	} else {
		points := map[string]int{"1W": 5, "1M": 22, "3M": 66, "1Y": 52, "5Y": 60}
		n, ok := points[interval]
		if !ok {
			return domain.PriceSeries{}, perr.Validationf("Invalid interval. Must be one of %v", domain.Intervals)
		}
		for i := 0; i < n; i++ {
			change := (float64(i) - float64(n)/2) * 0.5
			if interval == "1Y" || interval == "5Y" {
				change *= 2
			}
			data = append(data, domain.PriceBar{
				Time:   fmt.Sprintf("2023-%02d-%02d", (i%12)+1, (i%28)+1),
				Open:   round2(basePrice + change - 0.5),
				High:   round2(basePrice + change + 1.0),
				Low:    round2(basePrice + change - 1.2),
				Close:  round2(basePrice + change),
				Volume: int64(10000000 + i*1000000),
			})
		}
	}

	return domain.PriceSeries{Symbol: upper(symbol), Interval: interval, Data: data}, nil
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func upper(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
