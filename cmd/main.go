package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"mediaplan/internal/adapter/cache"
	httpadapter "mediaplan/internal/adapter/http"
	"mediaplan/internal/adapter/postgres"
	"mediaplan/internal/adapter/restcountries"
	"mediaplan/internal/adapter/scrape"
	"mediaplan/internal/adapter/static"
	"mediaplan/internal/adapter/summarizer"
	"mediaplan/internal/adapter/usecase"
	"mediaplan/internal/config"
	"mediaplan/internal/config/configs"
	"mediaplan/internal/core/port"
	"mediaplan/internal/db"
	"mediaplan/internal/pkg/httpretry"
)

// main loads configuration, builds the benchmark table and collaborators,
// then serves HTTP until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("fatal", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	limiter := rate.NewLimiter(rate.Limit(cfg.Sources.RPS), cfg.Sources.Burst)
	doer := httpretry.NewRetryClient(
		httpretry.Limit(&http.Client{Timeout: cfg.Sources.Timeout}, limiter),
		cfg.Sources.MaxRetries,
		cfg.Sources.RetryDelay,
		logger,
	)
	// caller supplied URLs may only reach public addresses
	pageDoer := httpretry.NewRetryClient(
		httpretry.Limit(httpretry.NewPublicClient(cfg.Sources.Timeout), limiter),
		cfg.Sources.MaxRetries,
		cfg.Sources.RetryDelay,
		logger,
	)

	repo, closeRepo, err := benchmarkRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	var ctrSource, convSource port.RateSource
	if cfg.Benchmarks.CTRURL != "" {
		ctrSource = scrape.NewCTRTable(cfg.Benchmarks.CTRURL, doer)
	}
	if cfg.Benchmarks.ConversionURL != "" {
		convSource = scrape.NewConversionTable(cfg.Benchmarks.ConversionURL, doer)
	}
	table, err := usecase.LoadBenchmarks(ctx, repo, ctrSource, convSource, logger)
	if err != nil {
		return err
	}
	logger.Info("benchmarks loaded", slog.String("source", cfg.Benchmarks.Source), slog.Int("industries", table.Len()))

	var (
		countries port.CountryDirectory = restcountries.NewClient(cfg.Countries.BaseURL, doer)
		social    port.SocialMediaSource = scrape.NewSocialMediaTable(cfg.Social.URL, doer)
	)
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, lookups will not be cached until it recovers", slog.Any("error", err))
		}
		countries = cache.NewCountryDirectory(rdb, cfg.Redis.TTL, countries, logger)
		social = cache.NewSocialMediaSource(rdb, cfg.Redis.TTL, social, logger)
	} else if cfg.Sources.CacheTTL > 0 {
		countries = cache.NewMemoryCountryDirectory(cfg.Sources.CacheTTL, countries)
		social = cache.NewMemorySocialMediaSource(cfg.Sources.CacheTTL, social)
	}

	var summ port.Summarizer = summarizer.NewExtractive(cfg.Summarizer.MaxSentences)
	if cfg.Summarizer.GeminiAPIKey != "" {
		gemini, err := summarizer.NewGemini(ctx, cfg.Summarizer.GeminiAPIKey, cfg.Summarizer.Model)
		if err != nil {
			return err
		}
		defer gemini.Close()
		summ = gemini
	}

	svc := usecase.NewPlannerUseCase(table, usecase.Deps{
		Countries:  countries,
		Social:     social,
		Scraper:    scrape.NewWebpage(pageDoer),
		Summarizer: summ,
	}, logger)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Registry:       reg,
	})
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// benchmarkRepository returns the configured repository and a func releasing
// its resources.
func benchmarkRepository(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.BenchmarkRepository, func(), error) {
	if cfg.Benchmarks.Source != configs.BenchmarkSourcePostgres {
		repo, err := static.NewBenchmarkRepository(cfg.Benchmarks.File)
		return repo, func() {}, err
	}

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Psql.Seed {
		if err = seed(ctx, pool, cfg.Benchmarks.File); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("benchmarks seeded")
	}
	return postgres.NewBenchmarkRepository(pool), pool.Close, nil
}

func seed(ctx context.Context, pool *pgxpool.Pool, file string) error {
	src, err := static.NewBenchmarkRepository(file)
	if err != nil {
		return err
	}
	items, err := src.LoadBenchmarks(ctx)
	if err != nil {
		return err
	}
	return db.Seed(ctx, pool, items)
}
