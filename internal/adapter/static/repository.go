// Package static serves industry benchmarks from a YAML document.
package static

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
)

//go:embed benchmarks.yaml
var embedded []byte

type document struct {
	Industries []industry `yaml:"industries"`
}

type industry struct {
	Name              string             `yaml:"name"`
	AvgCPC            float64            `yaml:"avg_cpc"`
	CostPerConversion float64            `yaml:"cost_per_conversion"`
	CTRPercent        *float64           `yaml:"ctr_percent"`
	ConversionRate    *float64           `yaml:"conversion_rate"`
	AverageSpend      map[string]float64 `yaml:"average_spend"`
}

// BenchmarkRepository implements port.BenchmarkRepository over a YAML file.
type BenchmarkRepository struct {
	raw []byte
}

var _ port.BenchmarkRepository = (*BenchmarkRepository)(nil)

// NewBenchmarkRepository reads the document at path. An empty path selects
// the built-in reference table.
func NewBenchmarkRepository(path string) (*BenchmarkRepository, error) {
	if path == "" {
		return &BenchmarkRepository{raw: embedded}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read benchmarks: %w", err)
	}
	return &BenchmarkRepository{raw: raw}, nil
}

func (r *BenchmarkRepository) LoadBenchmarks(_ context.Context) ([]domain.IndustryBenchmark, error) {
	var doc document
	if err := yaml.Unmarshal(r.raw, &doc); err != nil {
		return nil, fmt.Errorf("parse benchmarks: %w", err)
	}

	out := make([]domain.IndustryBenchmark, 0, len(doc.Industries))
	for _, it := range doc.Industries {
		out = append(out, domain.IndustryBenchmark{
			Industry:              it.Name,
			AvgCPC:                it.AvgCPC,
			CostPerConversion:     it.CostPerConversion,
			CTRPercent:            domain.FromPtr(it.CTRPercent),
			ConversionRate:        domain.FromPtr(it.ConversionRate),
			AverageSpendByCountry: it.AverageSpend,
		})
	}
	return out, nil
}
