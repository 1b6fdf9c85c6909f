package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
)

// BenchmarkRepository implements port.BenchmarkRepository using pgxpool for PostgreSQL.
type BenchmarkRepository struct {
	pool *pgxpool.Pool
}

var _ port.BenchmarkRepository = (*BenchmarkRepository)(nil)

// NewBenchmarkRepository returns a new repository instance.
func NewBenchmarkRepository(pool *pgxpool.Pool) *BenchmarkRepository {
	return &BenchmarkRepository{pool: pool}
}

// LoadBenchmarks returns every industry together with its spend table.
func (r *BenchmarkRepository) LoadBenchmarks(ctx context.Context) ([]domain.IndustryBenchmark, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT name, avg_cpc, cost_per_conversion, ctr_percent, conversion_rate
        FROM industries
        ORDER BY name`)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.IndustryBenchmark, error) {
		var (
			b        domain.IndustryBenchmark
			ctr, cvr *float64
		)
		if err := row.Scan(&b.Industry, &b.AvgCPC, &b.CostPerConversion, &ctr, &cvr); err != nil {
			return b, err
		}
		b.CTRPercent = domain.FromPtr(ctr)
		b.ConversionRate = domain.FromPtr(cvr)
		return b, nil
	})
	if err != nil {
		return nil, err
	}

	spend, err := r.loadSpend(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].AverageSpendByCountry = spend[items[i].Industry]
	}
	return items, nil
}

type spendRow struct {
	Industry string
	Country  string
	Amount   float64
}

func (r *BenchmarkRepository) loadSpend(ctx context.Context) (map[string]map[string]float64, error) {
	rows, err := r.pool.Query(ctx, `SELECT industry, country, amount FROM industry_spend`)
	if err != nil {
		return nil, err
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[spendRow])
	if err != nil {
		return nil, err
	}

	out := make(map[string]map[string]float64)
	for _, s := range list {
		if out[s.Industry] == nil {
			out[s.Industry] = make(map[string]float64)
		}
		out[s.Industry][s.Country] = s.Amount
	}
	return out, nil
}
