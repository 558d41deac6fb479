package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "sentimenttech/internal/platform/errors"
	phttp "sentimenttech/internal/platform/net/http"
	postsdom "sentimenttech/internal/services/posts/domain"
	sentdom "sentimenttech/internal/services/sentiment/domain"
	"sentimenttech/internal/services/stocks/domain"
	stockshttp "sentimenttech/internal/services/stocks/http"
)

type stubMarkets struct {
	quote  domain.Quote
	series domain.PriceSeries
	err    error
}

func (s stubMarkets) Quote(context.Context, string) (domain.Quote, error) {
	return s.quote, s.err
}

func (s stubMarkets) PriceSeries(context.Context, string, string) (domain.PriceSeries, error) {
	return s.series, s.err
}

type stubPosts struct {
	posts []postsdom.Post
	err   error
}

func (s stubPosts) Normalize(context.Context, postsdom.RawComment) (postsdom.Post, error) {
	return postsdom.Post{}, nil
}

func (s stubPosts) NormalizeAll(context.Context, []postsdom.RawComment) ([]postsdom.Post, error) {
	return s.posts, s.err
}

func (s stubPosts) PostsFor(context.Context, string) ([]postsdom.Post, error) {
	return s.posts, s.err
}

type stubSentiment struct {
	summary sentdom.Summary
	err     error
}

func (s stubSentiment) SummaryFor(context.Context, string) (sentdom.Summary, error) {
	return s.summary, s.err
}

func newServer(p stockshttp.Ports) *httptest.Server {
	r := phttp.AdaptChi(chi.NewRouter())
	r.Route("/stocks", func(sub phttp.Router) {
		stockshttp.Register(sub, p)
	})
	return httptest.NewServer(r.Mux())
}

func decodeDetail(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return body.Detail
}

func TestQuote_ReturnsPayloadVerbatim(t *testing.T) {
	srv := newServer(stockshttp.Ports{
		Markets: stubMarkets{quote: domain.Quote{
			Symbol: "AAPL", Name: "Apple Inc.", Price: 198.14,
			Change: 2.34, ChangePercent: 1.18,
			Volume: "45.3M", MarketCap: "2.87T", PERatio: 30.21,
		}},
		Posts:     stubPosts{},
		Sentiment: stubSentiment{},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stocks/AAPL")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var got domain.Quote
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Symbol != "AAPL" || got.MarketCap != "2.87T" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestQuote_UnknownSymbolIs404(t *testing.T) {
	srv := newServer(stockshttp.Ports{
		Markets:   stubMarkets{err: perr.NotFoundf("Stock ZZZZ not found")},
		Posts:     stubPosts{},
		Sentiment: stubSentiment{},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stocks/ZZZZ")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); detail != "Stock ZZZZ not found" {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestPrice_InvalidIntervalIs400(t *testing.T) {
	srv := newServer(stockshttp.Ports{
		Markets:   stubMarkets{},
		Posts:     stubPosts{},
		Sentiment: stubSentiment{},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stocks/AAPL/price?interval=2D")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.StatusCode)
	}
	if detail := decodeDetail(t, resp); !strings.Contains(detail, "Invalid interval") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestPrice_DefaultsTo1D(t *testing.T) {
	srv := newServer(stockshttp.Ports{
		Markets: stubMarkets{series: domain.PriceSeries{
			Symbol: "AAPL", Interval: "1D",
			Data: []domain.PriceBar{{Time: "9:30", Open: 1, High: 2, Low: 0.5, Close: 1.5}},
		}},
		Posts:     stubPosts{},
		Sentiment: stubSentiment{},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stocks/AAPL/price")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var got domain.PriceSeries
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Interval != "1D" || len(got.Data) != 1 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestReddit_SuccessIsBareArray(t *testing.T) {
	srv := newServer(stockshttp.Ports{
		Markets: stubMarkets{},
		Posts: stubPosts{posts: []postsdom.Post{{
			ID: "abc", Author: "a", Content: "c", Likes: 1, Replies: 2,
			Timestamp: "2025-06-01T10:00:00Z", Source: "reddit",
		}}},
		Sentiment: stubSentiment{},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stocks/AAPL/reddit")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var got []postsdom.Post
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("expected a bare JSON array: %v", err)
	}
	if len(got) != 1 || got[0].ID != "abc" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestReddit_AnyFailureIsOpaque500(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"fetch failure", perr.Unavailablef("reddit search failed with status 503")},
		{"bad record", postsdom.MissingField("upvotes")},
		{"malformed time", perr.InvalidArgf(`malformed timestamp "abc": want "<hours>h"`)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newServer(stockshttp.Ports{
				Markets:   stubMarkets{},
				Posts:     stubPosts{err: tc.err},
				Sentiment: stubSentiment{},
			})
			defer srv.Close()

			resp, err := http.Get(srv.URL + "/stocks/AAPL/reddit")
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusInternalServerError {
				t.Fatalf("expected 500 got %d", resp.StatusCode)
			}
			detail := decodeDetail(t, resp)
			if !strings.HasPrefix(detail, "Reddit API error: ") {
				t.Fatalf("expected Reddit API error prefix got %q", detail)
			}
		})
	}
}

func TestSentiment_ReturnsSummary(t *testing.T) {
	srv := newServer(stockshttp.Ports{
		Markets: stubMarkets{},
		Posts:   stubPosts{},
		Sentiment: stubSentiment{summary: sentdom.Summary{
			Symbol:           "AAPL",
			OverallSentiment: sentdom.Score{Score: 0.65, Magnitude: 0.8, Label: "positive"},
			SocialSentiment:  map[string]sentdom.Score{},
		}},
	})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/stocks/aapl/sentiment")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var got sentdom.Summary
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Symbol != "AAPL" || got.OverallSentiment.Label != "positive" {
		t.Fatalf("unexpected payload: %+v", got)
	}
}
