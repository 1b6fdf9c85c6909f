package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// AverageKey is the spend-table key holding the cross-country average.
const AverageKey = "average"

// IndustryBenchmark holds the market reference figures of one industry.
// CTRPercent and ConversionRate are unknown unless a source supplied them.
type IndustryBenchmark struct {
	Industry          string
	AvgCPC            float64 // currency per click
	CostPerConversion float64
	CTRPercent        Optional[float64] // 0..100
	ConversionRate    Optional[float64] // 0..1
	// AverageSpendByCountry maps country display name to average customer
	// spend. The AverageKey entry is the industry-wide figure.
	AverageSpendByCountry map[string]float64
}

// AverageSpend returns the spend seeded for country.
func (b IndustryBenchmark) AverageSpend(country string) Optional[float64] {
	v, ok := b.AverageSpendByCountry[country]
	if !ok {
		return Unknown[float64]()
	}
	return Known(v)
}

// IndustryAverageSpend returns the spend seeded under AverageKey.
func (b IndustryBenchmark) IndustryAverageSpend() Optional[float64] {
	return b.AverageSpend(AverageKey)
}

// BenchmarkTable is an immutable set of industry benchmarks. It is built
// once at startup and handed to whoever needs it.
type BenchmarkTable struct {
	byIndustry map[string]IndustryBenchmark
	industries []string
}

// NewBenchmarkTable validates and copies items into a table. Industry names
// must be non-empty and unique.
func NewBenchmarkTable(items []IndustryBenchmark) (BenchmarkTable, error) {
	t := BenchmarkTable{
		byIndustry: make(map[string]IndustryBenchmark, len(items)),
		industries: make([]string, 0, len(items)),
	}
	for _, it := range items {
		name := strings.TrimSpace(it.Industry)
		if name == "" {
			return BenchmarkTable{}, fmt.Errorf("%w: benchmark without industry name", ErrInvalidInput)
		}
		if _, dup := t.byIndustry[name]; dup {
			return BenchmarkTable{}, fmt.Errorf("%w: duplicate benchmark for %q", ErrInvalidInput, name)
		}
		it.Industry = name
		it.AverageSpendByCountry = maps.Clone(it.AverageSpendByCountry)
		t.byIndustry[name] = it
		t.industries = append(t.industries, name)
	}
	slices.Sort(t.industries)
	return t, nil
}

// Lookup returns a copy of the benchmark for industry.
func (t BenchmarkTable) Lookup(industry string) (IndustryBenchmark, bool) {
	b, ok := t.byIndustry[strings.TrimSpace(industry)]
	if !ok {
		return IndustryBenchmark{}, false
	}
	b.AverageSpendByCountry = maps.Clone(b.AverageSpendByCountry)
	return b, true
}

// Find is Lookup expressed as an Optional.
func (t BenchmarkTable) Find(industry string) Optional[IndustryBenchmark] {
	b, ok := t.Lookup(industry)
	if !ok {
		return Unknown[IndustryBenchmark]()
	}
	return Known(b)
}

// Industries returns the sorted industry names.
func (t BenchmarkTable) Industries() []string {
	return slices.Clone(t.industries)
}

func (t BenchmarkTable) Len() int {
	return len(t.industries)
}

// WithRates returns a new table where CTR percentages and conversion rates
// found in ctr and conv replace the seeded ones. Industries missing from a
// map keep their current value. Neither t nor the maps are modified.
func (t BenchmarkTable) WithRates(ctr, conv map[string]float64) BenchmarkTable {
	out := BenchmarkTable{
		byIndustry: make(map[string]IndustryBenchmark, len(t.byIndustry)),
		industries: slices.Clone(t.industries),
	}
	for name, b := range t.byIndustry {
		if v, ok := ctr[name]; ok {
			b.CTRPercent = Known(v)
		}
		if v, ok := conv[name]; ok {
			b.ConversionRate = Known(v)
		}
		out.byIndustry[name] = b
	}
	return out
}
