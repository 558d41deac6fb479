// Package http provides http transport for trending
package http

import (
	stdhttp "net/http"

	"sentimenttech/internal/modkit/httpkit"
	"sentimenttech/internal/platform/logger"
	svc "sentimenttech/internal/services/trending/service"
)

// Register mounts trending endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.Get(r, "/stocks", h.stocks)
	httpkit.Get(r, "/topics", h.topics)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /trending/stocks Trending trendingStocks
// @Summary Stocks trending on social media
// @Tags Trending
// @Produce json
// @Success 200 {object} domain.StocksPage "ok"
// @Router /trending/stocks [get]
func (h *handlers) stocks(r *stdhttp.Request) (any, error) {
	logger.C(r.Context()).Info().Msg("fetching trending stocks")
	return h.svc.Stocks(r.Context())
}

// swagger:route GET /trending/topics Trending trendingTopics
// @Summary Trending financial topics from social media
// @Tags Trending
// @Produce json
// @Success 200 {object} domain.TopicsPage "ok"
// @Router /trending/topics [get]
func (h *handlers) topics(r *stdhttp.Request) (any, error) {
	logger.C(r.Context()).Info().Msg("fetching trending topics")
	return h.svc.Topics(r.Context())
}
