// Package api provides the HTTP API for the application
package api

import (
	"net/http"
	"time"

	"sentimenttech/internal/platform/config"
	"sentimenttech/internal/platform/logger"
	phttp "sentimenttech/internal/platform/net/http"

	"sentimenttech/internal/modkit"
	"sentimenttech/internal/modkit/httpkit"
	"sentimenttech/internal/modkit/module"
	"sentimenttech/internal/modkit/swaggerkit"

	"sentimenttech/internal/adapters/markets/static"
	"sentimenttech/internal/adapters/markets/yahoo"
	"sentimenttech/internal/adapters/social/reddit"
	"sentimenttech/internal/core/version"
	postsmod "sentimenttech/internal/services/posts/module"
	sentsvc "sentimenttech/internal/services/sentiment/service"
	stocksdom "sentimenttech/internal/services/stocks/domain"
	stockshttp "sentimenttech/internal/services/stocks/http"
	stocksmod "sentimenttech/internal/services/stocks/module"
	trendingmod "sentimenttech/internal/services/trending/module"
)

// Options are the API options
type Options struct {
	Config        config.Conf
	Logger        *logger.Logger
	EnableSwagger bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Log: opt.Logger,
		Cfg: opt.Config,
	}

	fetcher := reddit.New(reddit.OptionsFromConfig(deps.Cfg))
	markets := marketsProvider(deps.Cfg)

	// Posts owns normalization; its service port feeds both the stock
	// endpoints and the sentiment aggregator
	posts := postsmod.New(deps, modkit.WithPorts(postsmod.PortsIn{Fetcher: fetcher}))
	postsPort := module.MustPortsOf[postsmod.Ports](posts).Service

	sentiment := sentsvc.New(postsPort)

	stocks := stocksmod.New(deps, modkit.WithPorts(stockshttp.Ports{
		Markets:   markets,
		Posts:     postsPort,
		Sentiment: sentiment,
	}))

	trending := trendingmod.New(deps)

	mods := []module.Module{posts, stocks, trending}

	origins := deps.Cfg.MayCSV("CORS_ORIGINS", []string{"http://127.0.0.1:3000", "http://localhost:3000", "*"})

	httpkit.MountRoot(r, httpkit.CommonStack(origins), func(root httpkit.Router) {
		swaggerkit.Mount(root, opt.EnableSwagger)

		httpkit.Get(root, "/", describe)
		httpkit.Get(root, "/health", health)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(root)
		}
	})
}

// marketsProvider selects the market data backing from config.
// "static" keeps everything in-process for frontend development;
// "yahoo" fetches live data
func marketsProvider(cfg config.Conf) stocksdom.MarketsPort {
	switch cfg.MayEnum("MARKETS_PROVIDER", "static", "static", "yahoo") {
	case "yahoo":
		return yahoo.New()
	default:
		return static.New()
	}
}

// swagger:route GET / Root root
// @Summary Service description and endpoint directory
// @Tags Root
// @Produce json
// @Success 200 {object} map[string]any "ok"
// @Router / [get]
func describe(*http.Request) (any, error) {
	bi := version.Info()
	return map[string]any{
		"name":    "SentimentTech API",
		"version": bi.Version,
		"status":  "operational",
		"endpoints": []string{
			"/stocks/{symbol}",
			"/stocks/{symbol}/price",
			"/stocks/{symbol}/sentiment",
			"/stocks/{symbol}/reddit",
			"/trending/stocks",
			"/trending/topics",
		},
	}, nil
}

// swagger:route GET /health Health health
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "ok"
// @Router /health [get]
func health(*http.Request) (any, error) {
	return map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, nil
}
