// Package repo provides the trending catalog storage binding
package repo

import (
	"context"

	"sentimenttech/internal/services/trending/domain"
)

// Memory is a static in-process catalog. It stands in for the analytics
// store that would normally rank mentions; the data set matches what the
// frontend expects while that pipeline is offline
type Memory struct {
	stocks []domain.Stock
	topics []domain.Topic
}

// NewMemory constructs the catalog with the default data set
func NewMemory() *Memory {
	return &Memory{
		stocks: []domain.Stock{
			{
				Symbol:         "NVDA",
				Name:           "NVIDIA Corporation",
				SentimentScore: 0.87,
				SentimentLabel: "positive",
				MentionCount:   1245,
				PriceChange24h: 2.3,
			},
			{
				Symbol:         "AAPL",
				Name:           "Apple Inc.",
				SentimentScore: 0.65,
				SentimentLabel: "positive",
				MentionCount:   986,
				PriceChange24h: 1.18,
			},
			{
				Symbol:         "TSLA",
				Name:           "Tesla, Inc.",
				SentimentScore: 0.42,
				SentimentLabel: "neutral",
				MentionCount:   875,
				PriceChange24h: -0.8,
			},
		},
		topics: []domain.Topic{
			{
				Topic:          "Artificial Intelligence",
				SentimentScore: 0.78,
				MentionCount:   2341,
				RelatedStocks:  []string{"NVDA", "MSFT", "GOOG"},
			},
			{
				Topic:          "Interest Rates",
				SentimentScore: -0.25,
				MentionCount:   1872,
				RelatedStocks:  []string{"JPM", "GS", "BAC"},
			},
			{
				Topic:          "Semiconductor Shortage",
				SentimentScore: 0.15,
				MentionCount:   1544,
				RelatedStocks:  []string{"INTC", "AMD", "TSM"},
			},
		},
	}
}

// TrendingStocks returns the ranked tickers, copied so callers cannot mutate the catalog
func (m *Memory) TrendingStocks(_ context.Context) ([]domain.Stock, error) {
	out := make([]domain.Stock, len(m.stocks))
	copy(out, m.stocks)
	return out, nil
}

// TrendingTopics returns the ranked themes
func (m *Memory) TrendingTopics(_ context.Context) ([]domain.Topic, error) {
	out := make([]domain.Topic, len(m.topics))
	copy(out, m.topics)
	return out, nil
}
