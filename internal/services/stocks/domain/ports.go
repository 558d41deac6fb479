package domain

import "context"

// MarketsPort supplies quotes and historical prices for listed symbols
type MarketsPort interface {
	Quote(ctx context.Context, symbol string) (Quote, error)
	PriceSeries(ctx context.Context, symbol string, interval string) (PriceSeries, error)
}
