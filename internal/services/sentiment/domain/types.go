// Package domain holds sentiment aggregation types and ports
package domain

import "time"

// Label values carried by posts and summaries
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Score is a single sentiment reading
type Score struct {
	Score     float64 `json:"score"`
	Magnitude float64 `json:"magnitude"`
	Label     string  `json:"label"`
}

// RecentPost is a post as it appears inside a sentiment summary
type RecentPost struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Sentiment Score     `json:"sentiment"`
	URL       string    `json:"url,omitempty"`
	Author    string    `json:"author,omitempty"`
	Likes     int       `json:"likes,omitempty"`
}

// Summary is the aggregate sentiment view for one symbol
type Summary struct {
	Symbol           string           `json:"symbol"`
	OverallSentiment Score            `json:"overall_sentiment"`
	SocialSentiment  map[string]Score `json:"social_sentiment"`
	TrendingTopics   []string         `json:"trending_topics"`
	RecentPosts      []RecentPost     `json:"recent_posts"`
	LastUpdated      time.Time        `json:"last_updated"`
}
