// Package cache keeps country lookups in Redis, or in process memory when
// no Redis is configured, so repeated proposals do not hit the upstream APIs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
)

const keyPrefix = "mediaplan:"

// CountryDirectory caches a port.CountryDirectory. Errors are never cached;
// a Redis failure falls through to the wrapped directory.
type CountryDirectory struct {
	rdb    *redis.Client
	ttl    time.Duration
	next   port.CountryDirectory
	logger *slog.Logger
}

var _ port.CountryDirectory = (*CountryDirectory)(nil)

func NewCountryDirectory(rdb *redis.Client, ttl time.Duration, next port.CountryDirectory, logger *slog.Logger) *CountryDirectory {
	return &CountryDirectory{rdb: rdb, ttl: ttl, next: next, logger: logger}
}

func (c *CountryDirectory) Countries(ctx context.Context) (domain.CountryCatalog, error) {
	codes, err := cached(ctx, c.rdb, c.logger, keyPrefix+"countries", c.ttl, func() (map[string]string, error) {
		catalog, err := c.next.Countries(ctx)
		if err != nil {
			return nil, err
		}
		return catalog.Codes(), nil
	})
	if err != nil {
		return domain.CountryCatalog{}, err
	}
	return domain.NewCountryCatalog(codes), nil
}

func (c *CountryDirectory) Population(ctx context.Context, country string) (domain.Optional[int64], error) {
	return cached(ctx, c.rdb, c.logger, keyPrefix+"population:"+normalize(country), c.ttl, func() (domain.Optional[int64], error) {
		return c.next.Population(ctx, country)
	})
}

// SocialMediaSource caches a port.SocialMediaSource.
type SocialMediaSource struct {
	rdb    *redis.Client
	ttl    time.Duration
	next   port.SocialMediaSource
	logger *slog.Logger
}

var _ port.SocialMediaSource = (*SocialMediaSource)(nil)

func NewSocialMediaSource(rdb *redis.Client, ttl time.Duration, next port.SocialMediaSource, logger *slog.Logger) *SocialMediaSource {
	return &SocialMediaSource{rdb: rdb, ttl: ttl, next: next, logger: logger}
}

func (s *SocialMediaSource) SocialMediaUsers(ctx context.Context, country string) (domain.Optional[float64], error) {
	return cached(ctx, s.rdb, s.logger, keyPrefix+"social:"+normalize(country), s.ttl, func() (domain.Optional[float64], error) {
		return s.next.SocialMediaUsers(ctx, country)
	})
}

// cached returns the JSON value stored under key, or calls load and stores
// its result for ttl.
func cached[T any](ctx context.Context, rdb *redis.Client, logger *slog.Logger, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	raw, err := rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if err = json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
		logger.Warn("cache entry unreadable", slog.String("key", key), slog.Any("error", err))
	case !errors.Is(err, redis.Nil):
		logger.Warn("cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return v, nil
	}
	if err = rdb.Set(ctx, key, b, ttl).Err(); err != nil {
		logger.Warn("cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return v, nil
}

func normalize(country string) string {
	return strings.ToLower(strings.TrimSpace(country))
}
