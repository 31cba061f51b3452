package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/foliopulse/config"
	"github.com/guttosm/foliopulse/internal/api"
	"github.com/guttosm/foliopulse/internal/insights"
	"github.com/guttosm/foliopulse/internal/logger"
	"github.com/guttosm/foliopulse/internal/quote"
	"github.com/guttosm/foliopulse/internal/service"
)

// insightsCtor is an indirection for creating the Gemini analyzer;
// tests can override it.
var insightsCtor = func(ctx context.Context, model string) (insights.Commentator, error) {
	return insights.New(ctx, model)
}

// InitializeApp sets up all application dependencies and returns a
// fully configured Gin router, a cleanup function for graceful
// shutdown, and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the Yahoo quote client from configuration.
//   - Wires the analysis service around it.
//   - Optionally initializes the Gemini insights analyzer (only when
//     an API key is configured; failure disables the feature, it
//     never blocks startup).
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Price resolver: the run's only external collaborator.
	quotes := quote.NewYahooClient(cfg.Quote.BaseURL, cfg.Quote.Timeout, cfg.Quote.RatePerSec)

	svc := service.NewAnalyzeService(quotes, cfg.Quote.MaxParallel)

	var ai insights.Commentator
	if cfg.Insights.APIKey != "" {
		analyzer, err := insightsCtor(ctx, cfg.Insights.Model)
		if err != nil {
			logger.L().Warn().Err(err).Msg("insights disabled: gemini client init failed")
		} else {
			ai = analyzer
		}
	}

	handler := api.NewHandler(svc, ai)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(quotes.Ping)
	healthHandler.Register(router)

	// No resources outlive a request; cleanup exists for symmetry with
	// graceful shutdown.
	cleanup := func() {}

	return router, cleanup, nil
}
