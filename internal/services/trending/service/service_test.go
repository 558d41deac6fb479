package service_test

import (
	"context"
	"testing"
	"time"

	"sentimenttech/internal/services/trending/repo"
	"sentimenttech/internal/services/trending/service"
)

func TestStocks_ReturnsCatalogWithTimestamp(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := service.New(repo.NewMemory(), service.WithClock(func() time.Time { return at }))

	got, err := svc.Stocks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.TrendingStocks) != 3 {
		t.Fatalf("expected 3 trending stocks got %d", len(got.TrendingStocks))
	}
	if got.TrendingStocks[0].Symbol != "NVDA" || got.TrendingStocks[0].MentionCount != 1245 {
		t.Fatalf("unexpected first entry: %+v", got.TrendingStocks[0])
	}
	if !got.LastUpdated.Equal(at) {
		t.Fatalf("expected last updated %v got %v", at, got.LastUpdated)
	}
}

func TestTopics_ReturnsCatalog(t *testing.T) {
	svc := service.New(repo.NewMemory())

	got, err := svc.Topics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.TrendingTopics) != 3 {
		t.Fatalf("expected 3 topics got %d", len(got.TrendingTopics))
	}
	first := got.TrendingTopics[0]
	if first.Topic != "Artificial Intelligence" || len(first.RelatedStocks) != 3 {
		t.Fatalf("unexpected first topic: %+v", first)
	}
}

func TestCatalog_CopiesAreIsolated(t *testing.T) {
	cat := repo.NewMemory()

	a, _ := cat.TrendingStocks(context.Background())
	a[0].Symbol = "MUTATED"

	b, _ := cat.TrendingStocks(context.Background())
	if b[0].Symbol != "NVDA" {
		t.Fatalf("catalog mutated through returned slice: %+v", b[0])
	}
}
