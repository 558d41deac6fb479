// Package http provides http transport for stocks
package http

import (
	stdhttp "net/http"
	"strings"

	"sentimenttech/internal/modkit/httpkit"
	perr "sentimenttech/internal/platform/errors"
	"sentimenttech/internal/platform/logger"
	postsdom "sentimenttech/internal/services/posts/domain"
	sentdom "sentimenttech/internal/services/sentiment/domain"
	"sentimenttech/internal/services/stocks/domain"
)

// Ports are the cross module dependencies the stock endpoints call into
type Ports struct {
	Markets   domain.MarketsPort
	Posts     postsdom.ServicePort
	Sentiment sentdom.SummaryPort
}

// Register mounts stock endpoints on the given router
func Register(r httpkit.Router, p Ports) {
	h := &handlers{ports: p}
	httpkit.Get(r, "/{symbol}", h.quote)
	httpkit.Get(r, "/{symbol}/price", h.price)
	httpkit.Get(r, "/{symbol}/sentiment", h.sentiment)
	httpkit.Get(r, "/{symbol}/reddit", h.reddit)
}

type handlers struct{ ports Ports }

// swagger:route GET /stocks/{symbol} Stocks stocksQuote
// @Summary Current stock information for a symbol
// @Tags Stocks
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} domain.Quote "ok"
// @Failure 404 {object} httpkit.ErrorBody "unknown symbol"
// @Router /stocks/{symbol} [get]
func (h *handlers) quote(r *stdhttp.Request) (any, error) {
	symbol := httpkit.Param(r, "symbol")
	logger.C(r.Context()).Info().Str("symbol", symbol).Msg("fetching stock info")
	return h.ports.Markets.Quote(r.Context(), symbol)
}

// swagger:route GET /stocks/{symbol}/price Stocks stocksPrice
// @Summary Historical price data for a symbol
// @Tags Stocks
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Param interval query string false "Time interval (1D, 1W, 1M, 3M, 1Y, 5Y)"
// @Success 200 {object} domain.PriceSeries "ok"
// @Failure 400 {object} httpkit.ErrorBody "invalid interval"
// @Router /stocks/{symbol}/price [get]
func (h *handlers) price(r *stdhttp.Request) (any, error) {
	symbol := httpkit.Param(r, "symbol")
	interval := r.URL.Query().Get("interval")
	if interval == "" {
		interval = "1D"
	}
	if !domain.ValidInterval(interval) {
		return nil, perr.Validationf(
			"Invalid interval. Must be one of %s", strings.Join(domain.Intervals, ", "),
		)
	}
	logger.C(r.Context()).Info().Str("symbol", symbol).Str("interval", interval).Msg("fetching price data")
	return h.ports.Markets.PriceSeries(r.Context(), symbol, interval)
}

// swagger:route GET /stocks/{symbol}/sentiment Sentiment stocksSentiment
// @Summary Aggregate sentiment for a symbol from social posts
// @Tags Sentiment
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {object} sentdom.Summary "ok"
// @Router /stocks/{symbol}/sentiment [get]
func (h *handlers) sentiment(r *stdhttp.Request) (any, error) {
	symbol := httpkit.Param(r, "symbol")
	logger.C(r.Context()).Info().Str("symbol", symbol).Msg("fetching sentiment data")
	return h.ports.Sentiment.SummaryFor(r.Context(), symbol)
}

// swagger:route GET /stocks/{symbol}/reddit Stocks stocksReddit
// @Summary Normalized Reddit posts mentioning a symbol
// @Tags Stocks
// @Produce json
// @Param symbol path string true "Ticker symbol"
// @Success 200 {array} postsdom.Post "ok"
// @Failure 500 {object} httpkit.ErrorBody "fetch or normalization failure"
// @Router /stocks/{symbol}/reddit [get]
func (h *handlers) reddit(r *stdhttp.Request) (any, error) {
	symbol := httpkit.Param(r, "symbol")
	posts, err := h.ports.Posts.PostsFor(r.Context(), symbol)
	if err != nil {
		// Any failure in the batch aborts the whole request. The client
		// sees one opaque 500 regardless of which record or fetch step broke
		logger.C(r.Context()).Error().Err(err).Str("symbol", symbol).Msg("reddit batch failed")
		return nil, perr.Newf(perr.ErrorCodeUnknown, "Reddit API error: %v", err)
	}
	return posts, nil
}
