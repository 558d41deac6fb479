// Package service contains the post normalization workflows
package service

import (
	"context"
	"time"

	"sentimenttech/internal/core/cashtag"
	"sentimenttech/internal/core/reltime"
	"sentimenttech/internal/services/posts/domain"
)

// Service defines the service contract for posts
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	fetcher domain.FetcherPort
	now     func() time.Time // seam for deterministic tests
}

// Option mutates the service during construction
type Option func(*Svc)

// WithClock overrides the capture-instant source
func WithClock(now func() time.Time) Option {
	return func(s *Svc) { s.now = now }
}

// New creates a new posts service
func New(fetcher domain.FetcherPort, opts ...Option) *Svc {
	if fetcher == nil {
		panic("posts.Service requires a non nil Fetcher")
	}
	s := &Svc{fetcher: fetcher, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Normalize maps one raw comment to a canonical post using its own capture instant
func (s *Svc) Normalize(_ context.Context, raw domain.RawComment) (domain.Post, error) {
	return normalizeAt(raw, s.now())
}

// NormalizeAll maps raws in order. One capture instant is shared across the
// batch so relative ordering of the resolved timestamps is deterministic.
// Fail-fast: the first bad record aborts the batch with no partial results
func (s *Svc) NormalizeAll(_ context.Context, raws []domain.RawComment) ([]domain.Post, error) {
	at := s.now()
	out := make([]domain.Post, 0, len(raws))
	for _, raw := range raws {
		p, err := normalizeAt(raw, at)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// PostsFor fetches raw comments for ticker and normalizes them in fetch order
func (s *Svc) PostsFor(ctx context.Context, ticker string) ([]domain.Post, error) {
	raws, err := s.fetcher.FetchComments(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return s.NormalizeAll(ctx, raws)
}

// normalizeAt is the pure per-record transformation: validate required fields,
// resolve the relative time against the capture instant, extract mentions,
// and rename upvotes to likes. No cross-record state
func normalizeAt(raw domain.RawComment, at time.Time) (domain.Post, error) {
	if err := raw.Validate(); err != nil {
		return domain.Post{}, err
	}
	ts, err := reltime.Resolve(raw.Time, at)
	if err != nil {
		return domain.Post{}, err
	}
	return domain.Post{
		ID:            raw.ID,
		Author:        raw.Author,
		Content:       raw.Content,
		Likes:         *raw.Upvotes,
		Replies:       *raw.Replies,
		Timestamp:     ts.Format(time.RFC3339),
		Source:        raw.Source,
		StockMentions: cashtag.Extract(raw.Content),
		Sentiment:     raw.Sentiment,
	}, nil
}
