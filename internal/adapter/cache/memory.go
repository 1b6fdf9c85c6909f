package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
)

type entry struct {
	value   any
	expires time.Time
}

// memo is an in-process TTL store. Concurrent misses on one key share a
// single upstream call. Errors are never stored.
type memo struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.Mutex
	entries map[string]entry
}

func newMemo(ttl time.Duration) *memo {
	return &memo{ttl: ttl, now: time.Now, entries: make(map[string]entry)}
}

func remember[T any](m *memo, key string, load func() (T, error)) (T, error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	m.mu.Unlock()
	if ok && m.now().Before(e.expires) {
		return e.value.(T), nil
	}

	v, err, _ := m.group.Do(key, func() (any, error) {
		m.mu.Lock()
		e, ok := m.entries[key]
		m.mu.Unlock()
		if ok && m.now().Before(e.expires) {
			return e.value, nil
		}
		v, err := load()
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.entries[key] = entry{value: v, expires: m.now().Add(m.ttl)}
		m.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// MemoryCountryDirectory keeps country lookups in process memory. It is
// used when no Redis is configured.
type MemoryCountryDirectory struct {
	memo *memo
	next port.CountryDirectory
}

var _ port.CountryDirectory = (*MemoryCountryDirectory)(nil)

func NewMemoryCountryDirectory(ttl time.Duration, next port.CountryDirectory) *MemoryCountryDirectory {
	return &MemoryCountryDirectory{memo: newMemo(ttl), next: next}
}

func (c *MemoryCountryDirectory) Countries(ctx context.Context) (domain.CountryCatalog, error) {
	return remember(c.memo, "countries", func() (domain.CountryCatalog, error) {
		return c.next.Countries(ctx)
	})
}

func (c *MemoryCountryDirectory) Population(ctx context.Context, country string) (domain.Optional[int64], error) {
	return remember(c.memo, "population:"+normalize(country), func() (domain.Optional[int64], error) {
		return c.next.Population(ctx, country)
	})
}

// MemorySocialMediaSource keeps social media figures in process memory.
type MemorySocialMediaSource struct {
	memo *memo
	next port.SocialMediaSource
}

var _ port.SocialMediaSource = (*MemorySocialMediaSource)(nil)

func NewMemorySocialMediaSource(ttl time.Duration, next port.SocialMediaSource) *MemorySocialMediaSource {
	return &MemorySocialMediaSource{memo: newMemo(ttl), next: next}
}

func (s *MemorySocialMediaSource) SocialMediaUsers(ctx context.Context, country string) (domain.Optional[float64], error) {
	return remember(s.memo, "social:"+normalize(country), func() (domain.Optional[float64], error) {
		return s.next.SocialMediaUsers(ctx, country)
	})
}
