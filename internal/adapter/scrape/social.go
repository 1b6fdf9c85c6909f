package scrape

import (
	"context"
	"fmt"
	"strings"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
	"mediaplan/internal/pkg/httpretry"
)

// SocialMediaTable reads active social media users per country, in
// millions, from the first table.table of a statistics page.
type SocialMediaTable struct {
	url  string
	doer httpretry.HTTPDoer
}

var _ port.SocialMediaSource = (*SocialMediaTable)(nil)

func NewSocialMediaTable(url string, doer httpretry.HTTPDoer) *SocialMediaTable {
	return &SocialMediaTable{url: url, doer: doer}
}

// SocialMediaUsers returns the figure listed for country, or an unknown
// value when the country is not in the table.
func (s *SocialMediaTable) SocialMediaUsers(ctx context.Context, country string) (domain.Optional[float64], error) {
	if s.url == "" {
		return domain.Unknown[float64](), nil
	}
	body, err := fetch(ctx, s.doer, s.url)
	if err != nil {
		return domain.Unknown[float64](), err
	}
	rows, err := readTable(body, "table.table")
	if err != nil {
		return domain.Unknown[float64](), err
	}
	raw, ok := rows[strings.TrimSpace(country)]
	if !ok {
		return domain.Unknown[float64](), nil
	}
	v, err := parseNumber(raw)
	if err != nil {
		return domain.Unknown[float64](), fmt.Errorf("social media users of %q: %w", country, err)
	}
	return domain.Known(v), nil
}
