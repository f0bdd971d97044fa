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

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/destination-deals-service/internal/app/config"
	"github.com/ijalalfrz/destination-deals-service/internal/app/endpoints"
	"github.com/ijalalfrz/destination-deals-service/internal/app/service"
	"github.com/ijalalfrz/destination-deals-service/internal/app/transport"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/logger"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/offerprovider"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/offerprovider/mockoffer"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/offerprovider/scraper"
	"github.com/redis/go-redis/v9"
)

// @title           Destination Deals Service API
// @version         0.0.1
// @description     destination-deals-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
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
	// Starts the server in a go routine
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
	endpts, closeFn := makeEndpoints(ctx, &cfg)
	defer closeFn()

	router := transport.MakeHTTPRouter(&cfg, endpts)
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

	// ctx is already cancelled here, give in-flight requests their own deadline
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

// makeEndpoints wires the service. The returned func releases the Redis
// client, if one was opened.
func makeEndpoints(ctx context.Context, cfg *config.Config) (endpoints.Endpoints, func()) {
	redisClient := initRedisClient(cfg)

	closeFn := func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close redis client", slog.String("error", err.Error()))
		}
	}

	provider := initOfferProvider(ctx, cfg, redisClient)
	generator := mockoffer.NewGenerator(cfg.Mock.Latency)

	return endpoints.Endpoints{
		SearchEndpoint: endpoints.MakeSearchEndpoint(service.NewSearchService(provider, generator)),
	}, closeFn
}

// initRedisClient returns nil unless the provider rate limit needs it.
func initRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Scraper.Enabled() || cfg.Scraper.RateLimitRPS <= 0 || cfg.Redis.Addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// initOfferProvider returns a nil provider when no scraper URL is configured,
// so mock-only mode never makes an outbound call.
func initOfferProvider(ctx context.Context, cfg *config.Config, redisClient *redis.Client) offerprovider.OfferProvider {
	if !cfg.Scraper.Enabled() {
		slog.InfoContext(ctx, "scraper API not configured, serving mock offers only")
		return nil
	}

	providerCfg := offerprovider.OfferProviderConfig{
		SearchAPIURL: cfg.Scraper.SearchAPIURL,
		Timeout:      cfg.Scraper.Timeout,
		RateLimitRPS: cfg.Scraper.RateLimitRPS,
	}

	if redisClient != nil {
		providerCfg.Limiter = redis_rate.NewLimiter(redisClient)
	}

	slog.InfoContext(ctx, "using scraper API", slog.String("url", cfg.Scraper.SearchAPIURL))

	return scraper.NewProvider(providerCfg)
}
