package domain

import "context"

// CatalogPort reads the trending catalog
type CatalogPort interface {
	TrendingStocks(ctx context.Context) ([]Stock, error)
	TrendingTopics(ctx context.Context) ([]Topic, error)
}

// QueryPort is what other modules may call on trending
type QueryPort interface {
	Stocks(ctx context.Context) (StocksPage, error)
	Topics(ctx context.Context) (TopicsPage, error)
}
