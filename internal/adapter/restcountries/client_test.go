package restcountries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/all", r.URL.Path)
		assert.Equal(t, "name,cca2", r.URL.Query().Get("fields"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name":{"common":"India","official":"Republic of India"},"cca2":"IN"},
			{"name":{"common":"United States"},"cca2":"US"}
		]`))
	}))
	defer srv.Close()

	catalog, err := NewClient(srv.URL+"/", srv.Client()).Countries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"India", "United States"}, catalog.Names())
	code, ok := catalog.Resolve("United States")
	assert.True(t, ok)
	assert.Equal(t, "US", code)
}

func TestPopulation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v3.1/name/United States":
			assert.Equal(t, "true", r.URL.Query().Get("fullText"))
			_, _ = w.Write([]byte(`[{"name":{"common":"United States"},"population":329484123}]`))
		case "/v3.1/name/Bouvet Island":
			_, _ = w.Write([]byte(`[{"name":{"common":"Bouvet Island"}}]`))
		default:
			http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	pop, err := c.Population(context.Background(), "United States")
	require.NoError(t, err)
	v, ok := pop.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(329484123), v)

	pop, err = c.Population(context.Background(), "Bouvet Island")
	require.NoError(t, err)
	assert.False(t, pop.IsKnown())

	pop, err = c.Population(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, pop.IsKnown())
}

func TestCountriesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).Countries(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-2xx: 500")
}
