package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mediaplan/internal/core/domain"
)

// Seed upserts items into the benchmark tables in a single transaction.
// Spend rows of a seeded industry are replaced.
func Seed(ctx context.Context, pool *pgxpool.Pool, items []domain.IndustryBenchmark) (err error) {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, b := range items {
		batch.Queue(`INSERT INTO industries (name, avg_cpc, cost_per_conversion, ctr_percent, conversion_rate, updated_at)
VALUES ($1,$2,$3,$4,$5,now())
ON CONFLICT (name) DO UPDATE SET
    avg_cpc = EXCLUDED.avg_cpc,
    cost_per_conversion = EXCLUDED.cost_per_conversion,
    ctr_percent = EXCLUDED.ctr_percent,
    conversion_rate = EXCLUDED.conversion_rate,
    updated_at = now()`,
			b.Industry, b.AvgCPC, b.CostPerConversion, b.CTRPercent.Ptr(), b.ConversionRate.Ptr())
		batch.Queue(`DELETE FROM industry_spend WHERE industry = $1`, b.Industry)
		for country, amount := range b.AverageSpendByCountry {
			batch.Queue(`INSERT INTO industry_spend (industry, country, amount) VALUES ($1,$2,$3)`,
				b.Industry, country, amount)
		}
	}
	return tx.SendBatch(ctx, batch).Close()
}
