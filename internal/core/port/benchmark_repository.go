package port

import (
	"context"

	"mediaplan/internal/core/domain"
)

// BenchmarkRepository loads the industry benchmark rows. It is an outbound
// port read once at startup; the result becomes an immutable
// domain.BenchmarkTable.
type BenchmarkRepository interface {
	// LoadBenchmarks returns every industry benchmark known to the source.
	LoadBenchmarks(ctx context.Context) ([]domain.IndustryBenchmark, error)
}

// RateSource yields one per-industry rate, such as CTR percentages or
// conversion rates, keyed by industry name.
type RateSource interface {
	Rates(ctx context.Context) (map[string]float64, error)
}
