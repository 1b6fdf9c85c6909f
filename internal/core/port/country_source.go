package port

import (
	"context"

	"mediaplan/internal/core/domain"
)

// CountryDirectory resolves countries and their population. Implementations
// talk to the network and must be safe for concurrent use.
type CountryDirectory interface {
	// Countries returns the catalog of known country display names.
	Countries(ctx context.Context) (domain.CountryCatalog, error)
	// Population returns the total population of a country. A country the
	// source knows but has no figure for yields an unknown value and a nil
	// error.
	Population(ctx context.Context, country string) (domain.Optional[int64], error)
}

// SocialMediaSource reports active social media users of a country, in
// millions.
type SocialMediaSource interface {
	SocialMediaUsers(ctx context.Context, country string) (domain.Optional[float64], error)
}
