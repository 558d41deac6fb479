// Package yahoo implements the stocks MarketsPort against Yahoo Finance
package yahoo

import (
	"context"
	"fmt"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	perr "sentimenttech/internal/platform/errors"
	"sentimenttech/internal/platform/logger"
	"sentimenttech/internal/services/stocks/domain"
)

// window describes how one interval maps onto a chart request
type window struct {
	span time.Duration
	bar  datetime.Interval
	fmt  string
}

var windows = map[string]window{
	"1D": {span: 24 * time.Hour, bar: datetime.OneHour, fmt: "15:04"},
	"1W": {span: 7 * 24 * time.Hour, bar: datetime.OneDay, fmt: "2006-01-02"},
	"1M": {span: 31 * 24 * time.Hour, bar: datetime.OneDay, fmt: "2006-01-02"},
	"3M": {span: 92 * 24 * time.Hour, bar: datetime.OneDay, fmt: "2006-01-02"},
	"1Y": {span: 365 * 24 * time.Hour, bar: datetime.FiveDay, fmt: "2006-01-02"},
	"5Y": {span: 5 * 365 * 24 * time.Hour, bar: datetime.OneMonth, fmt: "2006-01-02"},
}

// Provider fetches live quotes and charts
type Provider struct {
	now func() time.Time
}

// Option mutates the provider during construction
type Option func(*Provider)

// WithClock overrides the chart window anchor
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// New constructs a Yahoo-backed markets provider
func New(opts ...Option) *Provider {
	p := &Provider{now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Quote fetches the equity snapshot for symbol
func (p *Provider) Quote(ctx context.Context, symbol string) (domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	q, err := equity.Get(symbol)
	if err != nil {
		return domain.Quote{}, perr.Wrap(err, perr.ErrorCodeNotFound, fmt.Sprintf("Stock %s not found", symbol))
	}
	if q == nil {
		return domain.Quote{}, perr.NotFoundf("Stock %s not found", symbol)
	}

	name := q.LongName
	if name == "" {
		name = q.ShortName
	}

	logger.C(ctx).Debug().Str("symbol", symbol).Msg("yahoo quote fetched")
	return domain.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         round2(q.RegularMarketPrice),
		Change:        round2(q.RegularMarketChange),
		ChangePercent: round2(q.RegularMarketChangePercent),
		Volume:        compact(float64(q.RegularMarketVolume)),
		MarketCap:     compact(float64(q.MarketCap)),
		PERatio:       round2(q.TrailingPE),
	}, nil
}

// PriceSeries fetches historical bars for symbol over the named interval
func (p *Provider) PriceSeries(ctx context.Context, symbol, interval string) (domain.PriceSeries, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	w, ok := windows[interval]
	if !ok {
		return domain.PriceSeries{}, perr.Validationf(
			"Invalid interval. Must be one of %s", strings.Join(domain.Intervals, ", "),
		)
	}

	end := p.now()
	start := end.Add(-w.span)
	iter := chart.Get(&chart.Params{
		Params:   finance.Params{Context: &ctx},
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: w.bar,
	})

	var data []domain.PriceBar
	for iter.Next() {
		bar := iter.Bar()
		data = append(data, domain.PriceBar{
			Time:   time.Unix(int64(bar.Timestamp), 0).UTC().Format(w.fmt),
			Open:   decRound2(bar.Open),
			High:   decRound2(bar.High),
			Low:    decRound2(bar.Low),
			Close:  decRound2(bar.Close),
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return domain.PriceSeries{}, perr.Wrap(err, perr.ErrorCodeUnavailable,
			fmt.Sprintf("chart fetch failed for %s", symbol))
	}

	logger.C(ctx).Debug().Str("symbol", symbol).Str("interval", interval).Int("bars", len(data)).Msg("yahoo chart fetched")
	return domain.PriceSeries{Symbol: symbol, Interval: interval, Data: data}, nil
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

func decRound2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// compact renders large counts the way tickers display them, e.g. 45.3M or 2.87T
func compact(v float64) string {
	d := decimal.NewFromFloat(v)
	type unit struct {
		div    int64
		suffix string
		places int32
	}
	units := []unit{
		{1e12, "T", 2},
		{1e9, "B", 2},
		{1e6, "M", 1},
		{1e3, "K", 1},
	}
	for _, u := range units {
		if v >= float64(u.div) {
			return d.Div(decimal.NewFromInt(u.div)).Round(u.places).String() + u.suffix
		}
	}
	return d.Round(0).String()
}
