package service_test

import (
	"context"
	"testing"
	"time"

	perr "sentimenttech/internal/platform/errors"
	"sentimenttech/internal/services/posts/domain"
	"sentimenttech/internal/services/posts/service"
)

func intp(v int) *int { return &v }

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

// stubFetcher returns canned comments or a canned error
type stubFetcher struct {
	comments []domain.RawComment
	err      error
	calls    int
}

func (s *stubFetcher) FetchComments(context.Context, string) ([]domain.RawComment, error) {
	s.calls++
	return s.comments, s.err
}

func rawComment() domain.RawComment {
	return domain.RawComment{
		ID:      "abc123",
		Author:  "trader_joe",
		Content: "Thinking $NVDA is still undervalued honestly",
		Upvotes: intp(128),
		Replies: intp(14),
		Time:    "2h",
		Source:  "reddit",
	}
}

func TestNormalize_MapsAllFields(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := service.New(&stubFetcher{}, service.WithClock(fixedClock(at)))

	got, err := svc.Normalize(context.Background(), rawComment())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != "abc123" || got.Author != "trader_joe" {
		t.Fatalf("identity fields not carried over: %+v", got)
	}
	if got.Likes != 128 {
		t.Fatalf("expected upvotes mapped to likes 128 got %d", got.Likes)
	}
	if got.Replies != 14 {
		t.Fatalf("expected replies 14 got %d", got.Replies)
	}
	if got.Source != "reddit" {
		t.Fatalf("expected source reddit got %q", got.Source)
	}
	if got.Timestamp != "2025-06-01T10:00:00Z" {
		t.Fatalf("expected timestamp 2025-06-01T10:00:00Z got %q", got.Timestamp)
	}
	if len(got.StockMentions) != 1 || got.StockMentions[0] != "NVDA" {
		t.Fatalf("expected stock mentions [NVDA] got %v", got.StockMentions)
	}
}

func TestNormalize_ZeroUpvotesIsNotMissing(t *testing.T) {
	svc := service.New(&stubFetcher{})
	raw := rawComment()
	raw.Upvotes = intp(0)

	got, err := svc.Normalize(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Likes != 0 {
		t.Fatalf("expected likes 0 got %d", got.Likes)
	}
}

func TestNormalize_NoMentionsYieldsNil(t *testing.T) {
	svc := service.New(&stubFetcher{})
	raw := rawComment()
	raw.Content = "no tickers mentioned here"

	got, err := svc.Normalize(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.StockMentions != nil {
		t.Fatalf("expected nil stock mentions got %v", got.StockMentions)
	}
}

func TestNormalize_MissingFieldReportsName(t *testing.T) {
	svc := service.New(&stubFetcher{})

	cases := []struct {
		field  string
		mutate func(*domain.RawComment)
	}{
		{"id", func(c *domain.RawComment) { c.ID = "" }},
		{"author", func(c *domain.RawComment) { c.Author = "" }},
		{"content", func(c *domain.RawComment) { c.Content = "" }},
		{"upvotes", func(c *domain.RawComment) { c.Upvotes = nil }},
		{"replies", func(c *domain.RawComment) { c.Replies = nil }},
		{"time", func(c *domain.RawComment) { c.Time = "" }},
		{"source", func(c *domain.RawComment) { c.Source = "" }},
	}
	for _, tc := range cases {
		raw := rawComment()
		tc.mutate(&raw)

		_, err := svc.Normalize(context.Background(), raw)
		if err == nil {
			t.Fatalf("field %s: expected error got nil", tc.field)
		}
		field, ok := domain.IsMissingField(err)
		if !ok {
			t.Fatalf("field %s: expected missing-field error got %v", tc.field, err)
		}
		if field != tc.field {
			t.Fatalf("expected field %q got %q", tc.field, field)
		}
	}
}

func TestNormalize_MalformedTimestamp(t *testing.T) {
	svc := service.New(&stubFetcher{})
	raw := rawComment()
	raw.Time = "abc"

	_, err := svc.Normalize(context.Background(), raw)
	if err == nil {
		t.Fatal("expected error got nil")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument error got %v", err)
	}
}

func TestNormalizeAll_SharedCaptureAndOrder(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := service.New(&stubFetcher{}, service.WithClock(fixedClock(at)))

	a := rawComment()
	a.ID, a.Time = "first", "1h"
	b := rawComment()
	b.ID, b.Time = "second", "3h"

	got, err := svc.NormalizeAll(context.Background(), []domain.RawComment{a, b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "first" || got[1].ID != "second" {
		t.Fatalf("input order not preserved: %+v", got)
	}
	if got[0].Timestamp != "2025-06-01T11:00:00Z" {
		t.Fatalf("expected 11:00 got %q", got[0].Timestamp)
	}
	if got[1].Timestamp != "2025-06-01T09:00:00Z" {
		t.Fatalf("expected 09:00 got %q", got[1].Timestamp)
	}
}

func TestNormalizeAll_FailFastReturnsNothing(t *testing.T) {
	svc := service.New(&stubFetcher{})

	good := rawComment()
	bad := rawComment()
	bad.Time = "soon"

	got, err := svc.NormalizeAll(context.Background(), []domain.RawComment{good, bad, good})
	if err == nil {
		t.Fatal("expected error got nil")
	}
	if got != nil {
		t.Fatalf("expected no partial results got %v", got)
	}
}

func TestNormalizeAll_EmptyBatch(t *testing.T) {
	svc := service.New(&stubFetcher{})

	got, err := svc.NormalizeAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result got %v", got)
	}
}

func TestPostsFor_FetchErrorPropagates(t *testing.T) {
	fetchErr := perr.Unavailablef("reddit search failed with status 503")
	fetcher := &stubFetcher{err: fetchErr}
	svc := service.New(fetcher)

	_, err := svc.PostsFor(context.Background(), "AAPL")
	if err == nil {
		t.Fatal("expected error got nil")
	}
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("expected unavailable error got %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected one fetch call got %d", fetcher.calls)
	}
}

func TestPostsFor_NormalizesFetchedComments(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fetcher := &stubFetcher{comments: []domain.RawComment{rawComment()}}
	svc := service.New(fetcher, service.WithClock(fixedClock(at)))

	got, err := svc.PostsFor(context.Background(), "NVDA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one post got %d", len(got))
	}
	if got[0].Likes != 128 || got[0].Timestamp != "2025-06-01T10:00:00Z" {
		t.Fatalf("normalization not applied: %+v", got[0])
	}
}
