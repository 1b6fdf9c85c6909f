package domain

import (
	"maps"
	"slices"
	"strings"
)

// CountryCatalog maps country display names to ISO 3166-1 alpha-2 codes.
type CountryCatalog struct {
	codes map[string]string
	names []string
}

// NewCountryCatalog copies codes into a catalog. Blank names or codes are
// dropped.
func NewCountryCatalog(codes map[string]string) CountryCatalog {
	c := CountryCatalog{
		codes: make(map[string]string, len(codes)),
		names: make([]string, 0, len(codes)),
	}
	for name, code := range codes {
		name, code = strings.TrimSpace(name), strings.TrimSpace(code)
		if name == "" || code == "" {
			continue
		}
		if _, dup := c.codes[name]; !dup {
			c.names = append(c.names, name)
		}
		c.codes[name] = code
	}
	slices.Sort(c.names)
	return c
}

// Resolve returns the region code of a country display name.
func (c CountryCatalog) Resolve(name string) (string, bool) {
	code, ok := c.codes[strings.TrimSpace(name)]
	return code, ok
}

// Names returns the sorted display names.
func (c CountryCatalog) Names() []string {
	return slices.Clone(c.names)
}

// Codes returns a copy of the name to code mapping.
func (c CountryCatalog) Codes() map[string]string {
	return maps.Clone(c.codes)
}

func (c CountryCatalog) Len() int {
	return len(c.names)
}

// CountryFacts are the per-request demographics of one country. Each field
// is unknown when its source could not provide it.
type CountryFacts struct {
	TotalPopulation          Optional[int64]   `json:"total_population"`
	SocialMediaUsersMillions Optional[float64] `json:"social_media_users_millions"`
}
