// @title         SentimentTech API
// @version       1.0.0
// @description   Real-time sentiment analysis for financial markets

package main

import (
	"context"

	"github.com/joho/godotenv"

	"sentimenttech/internal/platform/config"
	"sentimenttech/internal/platform/logger"
	phttp "sentimenttech/internal/platform/net/http"

	"sentimenttech/internal/services/api"
)

func main() {
	// optional .env for local development (REDDIT_*, PORT, MARKETS_PROVIDER)
	_ = godotenv.Load()

	cfg := config.New()

	// bring up logging early
	l := logger.Get()

	// http server (reads PORT, default :8000)
	srv := phttp.NewServer(cfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        cfg,
			Logger:        l,
			EnableSwagger: cfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
