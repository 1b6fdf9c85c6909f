package static

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediaplan/internal/core/domain"
)

func TestEmbeddedBenchmarks(t *testing.T) {
	repo, err := NewBenchmarkRepository("")
	require.NoError(t, err)

	items, err := repo.LoadBenchmarks(context.Background())
	require.NoError(t, err)

	table, err := domain.NewBenchmarkTable(items)
	require.NoError(t, err)
	assert.Equal(t, 16, table.Len())

	tech, ok := table.Lookup("Technology")
	require.True(t, ok)
	assert.Equal(t, 3.2, tech.AvgCPC)
	assert.Equal(t, 50.0, tech.CostPerConversion)
	assert.Equal(t, domain.Known(63000.0), tech.IndustryAverageSpend())
	assert.Equal(t, domain.Known(70000.0), tech.AverageSpend("United States"))

	ecom, ok := table.Lookup("E-commerce")
	require.True(t, ok)
	assert.Equal(t, 1.2, ecom.AvgCPC)
	assert.True(t, ecom.CTRPercent.IsKnown())

	dating, ok := table.Lookup("Dating & Personals")
	require.True(t, ok)
	assert.False(t, dating.IndustryAverageSpend().IsKnown())
}

func TestEmbeddedBenchmarksAreValid(t *testing.T) {
	repo, err := NewBenchmarkRepository("")
	require.NoError(t, err)
	items, err := repo.LoadBenchmarks(context.Background())
	require.NoError(t, err)

	for _, b := range items {
		plan, err := domain.PlanFor(1000, b)
		require.NoError(t, err, b.Industry)
		assert.LessOrEqual(t, plan.Clicks, plan.Impressions, b.Industry)
	}
}

func TestBenchmarksFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	doc := `industries:
  - name: Widgets
    avg_cpc: 0.8
    cost_per_conversion: 12
    average_spend:
      average: 100
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	repo, err := NewBenchmarkRepository(path)
	require.NoError(t, err)
	items, err := repo.LoadBenchmarks(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Widgets", items[0].Industry)
	assert.False(t, items[0].CTRPercent.IsKnown())
	assert.False(t, items[0].ConversionRate.IsKnown())
	assert.Equal(t, domain.Known(100.0), items[0].IndustryAverageSpend())
}

func TestBenchmarksErrors(t *testing.T) {
	_, err := NewBenchmarkRepository(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	repo := &BenchmarkRepository{raw: []byte("industries: [oops")}
	_, err = repo.LoadBenchmarks(context.Background())
	assert.Error(t, err)
}

func TestEmbeddedIndustryAverages(t *testing.T) {
	repo, err := NewBenchmarkRepository("")
	require.NoError(t, err)
	items, err := repo.LoadBenchmarks(context.Background())
	require.NoError(t, err)
	table, err := domain.NewBenchmarkTable(items)
	require.NoError(t, err)

	tests := []struct {
		industry string
		average  float64
	}{
		{"Advocacy", 4425},
		{"Auto", 18000},
		{"B2B", 15375},
		{"Consumer Services", 10250},
		{"E-commerce", 31500},
		{"Education", 26750},
		{"Finance & Insurance", 29500},
		{"Health & Medical", 16125},
		{"Home Goods", 13375},
		{"Industrial Services", 18500},
		{"Legal", 24000},
		{"Real Estate", 180000},
		{"Technology", 63000},
		{"Travel & Hospitality", 26750},
	}
	for _, tt := range tests {
		t.Run(tt.industry, func(t *testing.T) {
			b, ok := table.Lookup(tt.industry)
			require.True(t, ok)
			assert.Equal(t, domain.Known(tt.average), b.IndustryAverageSpend())
		})
	}
}
