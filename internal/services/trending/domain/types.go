// Package domain holds trending catalog types and ports
package domain

import "time"

// Stock is one socially trending ticker with its aggregate stats
type Stock struct {
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	SentimentScore float64 `json:"sentiment_score"`
	SentimentLabel string  `json:"sentiment_label"`
	MentionCount   int     `json:"mention_count"`
	PriceChange24h float64 `json:"price_change_24h"`
}

// Topic is one trending financial theme with the tickers it pulls in
type Topic struct {
	Topic          string   `json:"topic"`
	SentimentScore float64  `json:"sentiment_score"`
	MentionCount   int      `json:"mention_count"`
	RelatedStocks  []string `json:"related_stocks"`
}

// StocksPage is the trending stocks payload
type StocksPage struct {
	TrendingStocks []Stock   `json:"trending_stocks"`
	LastUpdated    time.Time `json:"last_updated"`
}

// TopicsPage is the trending topics payload
type TopicsPage struct {
	TrendingTopics []Topic   `json:"trending_topics"`
	LastUpdated    time.Time `json:"last_updated"`
}
