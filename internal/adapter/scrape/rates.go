package scrape

import (
	"context"

	"mediaplan/internal/core/port"
	"mediaplan/internal/pkg/httpretry"
)

// RateTable scrapes an industry -> "x.xx%" table into per-industry rates.
type RateTable struct {
	url   string
	doer  httpretry.HTTPDoer
	scale float64
}

var _ port.RateSource = (*RateTable)(nil)

// NewCTRTable reads CTR figures and keeps them as percentages.
func NewCTRTable(url string, doer httpretry.HTTPDoer) *RateTable {
	return &RateTable{url: url, doer: doer, scale: 1}
}

// NewConversionTable reads conversion percentages as fractions in [0,1].
func NewConversionTable(url string, doer httpretry.HTTPDoer) *RateTable {
	return &RateTable{url: url, doer: doer, scale: 0.01}
}

// Rates fetches the page and parses its first table. Rows whose value is
// not a number are left out so the calculator falls back to its defaults.
func (t *RateTable) Rates(ctx context.Context) (map[string]float64, error) {
	body, err := fetch(ctx, t.doer, t.url)
	if err != nil {
		return nil, err
	}
	rows, err := readTable(body, "table")
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for industry, raw := range rows {
		v, err := parseNumber(raw)
		if err != nil {
			continue
		}
		out[industry] = v * t.scale
	}
	return out, nil
}
