package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/globaltravelbg/package-feed-service/internal/app/config"
	"github.com/globaltravelbg/package-feed-service/internal/app/dto"
	"github.com/globaltravelbg/package-feed-service/internal/app/endpoints"
	"github.com/globaltravelbg/package-feed-service/internal/app/service"
	"github.com/globaltravelbg/package-feed-service/internal/app/transport"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/feed"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/logger"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/observability"
)

func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup

	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	registry := observability.InitRegistry()
	router := transport.MakeHTTPRouter(&cfg, endpts, registry)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	feedClient := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.Timeout, cfg.Feed.RateLimitRPS)
	catalogService := service.NewCatalogService(feedClient, cfg.Feed.ListLimit)

	return endpoints.Endpoints{
		Catalog: endpoints.MakeCatalogEndpoint(catalogService),
	}
}
