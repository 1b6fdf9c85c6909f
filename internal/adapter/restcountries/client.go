// Package restcountries resolves country names and populations against a
// REST Countries v3.1 compatible API.
package restcountries

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"mediaplan/internal/core/domain"
	"mediaplan/internal/core/port"
	"mediaplan/internal/pkg/httpretry"
)

// DefaultBaseURL is the public REST Countries endpoint.
const DefaultBaseURL = "https://restcountries.com"

// ErrNotFound is returned when the API does not know a country.
var ErrNotFound = errors.New("country not found")

// Client implements port.CountryDirectory.
type Client struct {
	baseURL string
	doer    httpretry.HTTPDoer
}

var _ port.CountryDirectory = (*Client)(nil)

// NewClient returns a client for baseURL. An empty baseURL uses
// DefaultBaseURL.
func NewClient(baseURL string, doer httpretry.HTTPDoer) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), doer: doer}
}

type countryDTO struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	CCA2       string `json:"cca2"`
	Population *int64 `json:"population"`
}

// Countries returns every country keyed by its common name.
func (c *Client) Countries(ctx context.Context) (domain.CountryCatalog, error) {
	var list []countryDTO
	if err := c.getJSON(ctx, "/v3.1/all?fields=name,cca2", &list); err != nil {
		return domain.CountryCatalog{}, fmt.Errorf("list countries: %w", err)
	}
	codes := make(map[string]string, len(list))
	for _, it := range list {
		codes[it.Name.Common] = it.CCA2
	}
	return domain.NewCountryCatalog(codes), nil
}

// Population returns the population of the country whose full name matches.
// A matching record without a population field yields an unknown value.
func (c *Client) Population(ctx context.Context, country string) (domain.Optional[int64], error) {
	path := "/v3.1/name/" + url.PathEscape(country) + "?fullText=true&fields=name,population"
	var list []countryDTO
	if err := c.getJSON(ctx, path, &list); err != nil {
		return domain.Unknown[int64](), fmt.Errorf("population of %q: %w", country, err)
	}
	if len(list) == 0 {
		return domain.Unknown[int64](), fmt.Errorf("population of %q: %w", country, ErrNotFound)
	}
	return domain.FromPtr(list[0].Population), nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, string(b))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
