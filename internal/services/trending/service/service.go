// Package service assembles trending pages from the catalog
package service

import (
	"context"
	"time"

	"sentimenttech/internal/services/trending/domain"
)

// Service defines the service contract for trending
type Service interface{ domain.QueryPort }

// Svc implements the Service interface
type Svc struct {
	catalog domain.CatalogPort
	now     func() time.Time
}

// Option mutates the service during construction
type Option func(*Svc)

// WithClock overrides the last-updated timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New creates a new trending service
func New(catalog domain.CatalogPort, opts ...Option) *Svc {
	if catalog == nil {
		panic("trending.Service requires a non nil catalog")
	}
	s := &Svc{catalog: catalog, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Stocks returns the trending stocks page
func (s *Svc) Stocks(ctx context.Context) (domain.StocksPage, error) {
	stocks, err := s.catalog.TrendingStocks(ctx)
	if err != nil {
		return domain.StocksPage{}, err
	}
	return domain.StocksPage{TrendingStocks: stocks, LastUpdated: s.now().UTC()}, nil
}

// Topics returns the trending topics page
func (s *Svc) Topics(ctx context.Context) (domain.TopicsPage, error) {
	topics, err := s.catalog.TrendingTopics(ctx)
	if err != nil {
		return domain.TopicsPage{}, err
	}
	return domain.TopicsPage{TrendingTopics: topics, LastUpdated: s.now().UTC()}, nil
}
