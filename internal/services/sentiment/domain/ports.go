package domain

import "context"

// SummaryPort is what other modules may call on sentiment
type SummaryPort interface {
	SummaryFor(ctx context.Context, symbol string) (Summary, error)
}
