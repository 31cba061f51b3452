package main

//
//  @title           foliopulse API
//  @version         1.0
//  @description     Portfolio CSV analysis service: import holdings, resolve live prices, compute allocations.
//  @termsOfService  https://github.com/guttosm/foliopulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/foliopulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        portfolio
//  @tag.description Endpoints for analyzing and exporting portfolio CSVs
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/foliopulse/config"
	_ "github.com/guttosm/foliopulse/docs" // swagger docs
	"github.com/guttosm/foliopulse/internal/app"
	"github.com/guttosm/foliopulse/internal/logger"
	"github.com/guttosm/foliopulse/internal/portfolio"
	"github.com/guttosm/foliopulse/internal/quote"
	"github.com/guttosm/foliopulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runAnalyze executes one pipeline pass over a local CSV file and
// prints the analyzed portfolio. When outPath is set, the analyzed
// table is also written there as CSV.
func runAnalyze(ctx context.Context, filePath, outPath string) error {
	cfg := config.AppConfig

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer func() { _ = f.Close() }()

	quotes := quote.NewYahooClient(cfg.Quote.BaseURL, cfg.Quote.Timeout, cfg.Quote.RatePerSec)
	svc := service.NewAnalyzeService(quotes, cfg.Quote.MaxParallel)

	analysis, err := svc.Analyze(ctx, f)
	if err != nil {
		return err
	}

	for _, w := range analysis.Warnings {
		fmt.Printf("warning: %s\n", w)
	}

	fmt.Printf("%-28s %12s %12s %14s %9s\n", "Symbol", "Shares", "Price", "Value", "Pct")
	for _, h := range analysis.Report.Holdings {
		price := "N/A"
		if h.Priced {
			price = fmt.Sprintf("%.2f", h.UnitPrice)
		}
		fmt.Printf("%-28s %12v %12s %14.2f %8.2f%%\n",
			h.Symbol, h.TotalShares, price, h.Value, h.Percentage)
	}
	fmt.Printf("\nTotal value: %.2f across %d holdings (avg %.2f)\n",
		analysis.Summary.TotalValue, analysis.Summary.HoldingsCount, analysis.Summary.AverageHolding)

	if len(analysis.Report.FailedSymbols) > 0 {
		fmt.Printf("unresolved symbols: %v\n", analysis.Report.FailedSymbols)
	}

	if outPath != "" {
		out, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer func() { _ = out.Close() }()
		if err := portfolio.WriteCSV(out, analysis.Report); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logger.L().Info().Str("path", outPath).Msg("analyzed CSV written")
	}

	return nil
}

// main is the entry point of the foliopulse application.
//
// Modes (selected via --mode flag):
//   - analyze: One-shot analysis of a local CSV file.
//   - api:     Starts the REST API exposing the same pipeline.
//
// Flags:
//   - --mode: Execution mode ("analyze" or "api"). Default: "analyze".
//   - --file: Path to the portfolio CSV (analyze mode).
//   - --out:  Optional path for the analyzed CSV (analyze mode).
//   - --port: Port for the API server. Defaults to config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "analyze", "Mode: analyze or api")
	file := flag.String("file", "portfolio.csv", "Path to the portfolio CSV file")
	out := flag.String("out", "", "Optional path to write the analyzed CSV")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "analyze":
		logger.L().Info().Str("file", *file).Msg("running analysis")
		if err := runAnalyze(ctx, *file, *out); err != nil {
			logger.L().Fatal().Err(err).Msg("analysis failed")
		}

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
