// Package service aggregates per post sentiment labels into symbol summaries
package service

import (
	"context"
	"sort"
	"time"

	"sentimenttech/internal/platform/logger"
	postsdom "sentimenttech/internal/services/posts/domain"
	"sentimenttech/internal/services/sentiment/domain"
)

// label score thresholds for the aggregate reading
const (
	positiveCutoff = 0.15
	negativeCutoff = -0.15

	maxRecentPosts    = 5
	maxTrendingTopics = 5
)

// Service defines the service contract for sentiment
type Service interface{ domain.SummaryPort }

// Svc implements the Service interface
type Svc struct {
	posts postsdom.ServicePort
	now   func() time.Time
}

// Option mutates the service during construction
type Option func(*Svc)

// WithClock overrides the last-updated timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New creates a new sentiment service
func New(posts postsdom.ServicePort, opts ...Option) *Svc {
	if posts == nil {
		panic("sentiment.Service requires a non nil posts port")
	}
	s := &Svc{posts: posts, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SummaryFor builds the aggregate sentiment view for one symbol from its
// normalized posts. Labels are counted as-is; posts without a label count
// as neutral and dilute the magnitude
func (s *Svc) SummaryFor(ctx context.Context, symbol string) (domain.Summary, error) {
	posts, err := s.posts.PostsFor(ctx, symbol)
	if err != nil {
		return domain.Summary{}, err
	}

	overall := scoreGroup(posts)
	social := make(map[string]domain.Score)
	for _, src := range sources(posts) {
		social[src] = scoreGroup(filterSource(posts, src))
	}

	return domain.Summary{
		Symbol:           upper(symbol),
		OverallSentiment: overall,
		SocialSentiment:  social,
		TrendingTopics:   topMentions(posts, upper(symbol)),
		RecentPosts:      recentPosts(posts),
		LastUpdated:      s.now().UTC(),
	}, nil
}

// scoreGroup folds a set of posts into one Score. Score is the signed
// share of positive minus negative labels; magnitude is the share of
// posts carrying any explicit label
func scoreGroup(posts []postsdom.Post) domain.Score {
	if len(posts) == 0 {
		return domain.Score{Label: domain.LabelNeutral}
	}
	var pos, neg, labeled int
	for _, p := range posts {
		switch p.Sentiment {
		case domain.LabelPositive:
			pos++
			labeled++
		case domain.LabelNegative:
			neg++
			labeled++
		case domain.LabelNeutral:
			labeled++
		}
	}
	n := float64(len(posts))
	score := (float64(pos) - float64(neg)) / n
	return domain.Score{
		Score:     round2(score),
		Magnitude: round2(float64(labeled) / n),
		Label:     labelFor(score),
	}
}

func labelFor(score float64) string {
	switch {
	case score >= positiveCutoff:
		return domain.LabelPositive
	case score <= negativeCutoff:
		return domain.LabelNegative
	default:
		return domain.LabelNeutral
	}
}

// sources lists distinct post sources in first-seen order
func sources(posts []postsdom.Post) []string {
	seen := make(map[string]bool, 4)
	var out []string
	for _, p := range posts {
		if p.Source == "" || seen[p.Source] {
			continue
		}
		seen[p.Source] = true
		out = append(out, p.Source)
	}
	return out
}

func filterSource(posts []postsdom.Post, src string) []postsdom.Post {
	out := make([]postsdom.Post, 0, len(posts))
	for _, p := range posts {
		if p.Source == src {
			out = append(out, p)
		}
	}
	return out
}

// topMentions ranks cashtag mentions across the batch, excluding the
// queried symbol itself, capped at maxTrendingTopics
func topMentions(posts []postsdom.Post, symbol string) []string {
	counts := make(map[string]int)
	order := make(map[string]int)
	for _, p := range posts {
		for _, m := range p.StockMentions {
			if m == symbol {
				continue
			}
			if _, ok := counts[m]; !ok {
				order[m] = len(order)
			}
			counts[m]++
		}
	}
	topics := make([]string, 0, len(counts))
	for t := range counts {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return order[topics[i]] < order[topics[j]]
	})
	if len(topics) > maxTrendingTopics {
		topics = topics[:maxTrendingTopics]
	}
	return topics
}

// recentPosts maps the head of the batch into the summary post shape.
// Posts whose timestamp does not parse are skipped rather than surfaced
// with a zero created_at
func recentPosts(posts []postsdom.Post) []domain.RecentPost {
	out := make([]domain.RecentPost, 0, maxRecentPosts)
	for _, p := range posts {
		if len(out) == maxRecentPosts {
			break
		}
		created, err := time.Parse(time.RFC3339, p.Timestamp)
		if err != nil {
			logger.Named("sentiment").Warn().Str("post_id", p.ID).Str("timestamp", p.Timestamp).Msg("skipping post with malformed timestamp")
			continue
		}
		label := p.Sentiment
		if label == "" {
			label = domain.LabelNeutral
		}
		out = append(out, domain.RecentPost{
			ID:        p.ID,
			Platform:  p.Source,
			Content:   p.Content,
			CreatedAt: created,
			Sentiment: domain.Score{Score: pointScore(label), Magnitude: pointMagnitude(label), Label: label},
			Author:    p.Author,
			Likes:     p.Likes,
		})
	}
	return out
}

// pointScore assigns a representative score to a bare label
func pointScore(label string) float64 {
	switch label {
	case domain.LabelPositive:
		return 0.7
	case domain.LabelNegative:
		return -0.7
	default:
		return 0
	}
}

func pointMagnitude(label string) float64 {
	if label == domain.LabelNeutral {
		return 0.2
	}
	return 0.6
}

func round2(v float64) float64 {
	if v < 0 {
		return float64(int(v*100-0.5)) / 100
	}
	return float64(int(v*100+0.5)) / 100
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
