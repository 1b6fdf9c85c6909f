package configs

import "time"

// Countries points at a restcountries compatible API.
type Countries struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://restcountries.com"`
}

// Social points at the page listing social media users per country. Empty
// URL leaves the figure unknown.
type Social struct {
	URL string `env:"URL" envDefault:"https://www.statista.com/statistics/278341/number-of-social-network-users-in-selected-countries/"`
}

// Sources tunes the outbound HTTP client shared by all collaborators.
type Sources struct {
	Timeout    time.Duration `env:"TIMEOUT" envDefault:"10s"`
	RPS        float64       `env:"RPS" envDefault:"5"`
	Burst      int           `env:"BURST" envDefault:"5"`
	MaxRetries int           `env:"MAX_RETRIES" envDefault:"2"`
	RetryDelay time.Duration `env:"RETRY_DELAY" envDefault:"200ms"`
	// CacheTTL bounds the in-process cache used when Redis is disabled.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}
