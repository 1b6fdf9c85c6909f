package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
)

// LoadBenchmarks reads the benchmark table from repo and overlays the rates
// reported by ctr and conv. Either rate source may be nil. A failing rate
// source is logged and skipped; the repository must succeed.
func LoadBenchmarks(ctx context.Context, repo port.BenchmarkRepository, ctr, conv port.RateSource, logger *slog.Logger) (domain.BenchmarkTable, error) {
	items, err := repo.LoadBenchmarks(ctx)
	if err != nil {
		return domain.BenchmarkTable{}, fmt.Errorf("load benchmarks: %w", err)
	}
	table, err := domain.NewBenchmarkTable(items)
	if err != nil {
		return domain.BenchmarkTable{}, err
	}

	ctrRates := fetchRates(ctx, ctr, "ctr", logger)
	convRates := fetchRates(ctx, conv, "conversion", logger)
	if len(ctrRates) == 0 && len(convRates) == 0 {
		return table, nil
	}
	return table.WithRates(ctrRates, convRates), nil
}

func fetchRates(ctx context.Context, src port.RateSource, kind string, logger *slog.Logger) map[string]float64 {
	if src == nil {
		return nil
	}
	rates, err := src.Rates(ctx)
	if err != nil {
		logger.Warn("rate source failed, keeping seeded rates", "kind", kind, "err", err)
		return nil
	}
	logger.Info("rates loaded", "kind", kind, "industries", len(rates))
	return rates
}
