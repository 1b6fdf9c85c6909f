package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port/mocks"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCountriesCached(t *testing.T) {
	_, rdb := setupTestRedis(t)
	dir := mocks.NewMockCountryDirectory(t)
	dir.EXPECT().
		Countries(mock.Anything).
		Return(domain.NewCountryCatalog(map[string]string{"India": "IN"}), nil).
		Once()

	c := NewCountryDirectory(rdb, time.Hour, dir, discardLogger())
	for i := 0; i < 3; i++ {
		catalog, err := c.Countries(context.Background())
		require.NoError(t, err)
		code, ok := catalog.Resolve("India")
		assert.True(t, ok)
		assert.Equal(t, "IN", code)
	}
}

func TestPopulationCachedIncludingUnknown(t *testing.T) {
	_, rdb := setupTestRedis(t)
	dir := mocks.NewMockCountryDirectory(t)
	dir.EXPECT().Population(mock.Anything, "India").Return(domain.Known(int64(1_400_000_000)), nil).Once()
	dir.EXPECT().Population(mock.Anything, "Bouvet Island").Return(domain.Unknown[int64](), nil).Once()

	c := NewCountryDirectory(rdb, time.Hour, dir, discardLogger())
	for i := 0; i < 2; i++ {
		pop, err := c.Population(context.Background(), "India")
		require.NoError(t, err)
		assert.Equal(t, domain.Known(int64(1_400_000_000)), pop)

		pop, err = c.Population(context.Background(), "Bouvet Island")
		require.NoError(t, err)
		assert.False(t, pop.IsKnown())
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	_, rdb := setupTestRedis(t)
	social := mocks.NewMockSocialMediaSource(t)
	social.EXPECT().SocialMediaUsers(mock.Anything, "Peru").Return(domain.Unknown[float64](), errors.New("timeout")).Once()
	social.EXPECT().SocialMediaUsers(mock.Anything, "Peru").Return(domain.Known(24.6), nil).Once()

	s := NewSocialMediaSource(rdb, time.Hour, social, discardLogger())

	_, err := s.SocialMediaUsers(context.Background(), "Peru")
	assert.Error(t, err)

	users, err := s.SocialMediaUsers(context.Background(), "Peru")
	require.NoError(t, err)
	assert.Equal(t, domain.Known(24.6), users)

	users, err = s.SocialMediaUsers(context.Background(), " peru ")
	require.NoError(t, err)
	assert.Equal(t, domain.Known(24.6), users)
}

func TestEntriesExpire(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	social := mocks.NewMockSocialMediaSource(t)
	social.EXPECT().SocialMediaUsers(mock.Anything, "Chile").Return(domain.Known(16.0), nil).Twice()

	s := NewSocialMediaSource(rdb, time.Minute, social, discardLogger())
	_, err := s.SocialMediaUsers(context.Background(), "Chile")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = s.SocialMediaUsers(context.Background(), "Chile")
	require.NoError(t, err)
}

func TestRedisDownFallsThrough(t *testing.T) {
	mr, rdb := setupTestRedis(t)
	mr.Close()

	social := mocks.NewMockSocialMediaSource(t)
	social.EXPECT().SocialMediaUsers(mock.Anything, "Chile").Return(domain.Known(16.0), nil).Once()

	users, err := NewSocialMediaSource(rdb, time.Minute, social, discardLogger()).
		SocialMediaUsers(context.Background(), "Chile")
	require.NoError(t, err)
	assert.Equal(t, domain.Known(16.0), users)
}
