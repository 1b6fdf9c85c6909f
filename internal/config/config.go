package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mediaplan/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP   `envPrefix:"HTTP_"`
	Log  configs.Logger `envPrefix:"LOG_"`

	// Benchmarks selects where industry benchmarks come from and which
	// pages enrich them with rates.
	Benchmarks configs.Benchmarks `envPrefix:"BENCHMARK_"`

	// Psql is only used when Benchmarks.Source is postgres.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis caches country lookups. An empty address disables it.
	Redis configs.Redis `envPrefix:"REDIS_"`

	Countries configs.Countries `envPrefix:"COUNTRIES_"`
	Social    configs.Social    `envPrefix:"SOCIAL_MEDIA_"`
	Sources   configs.Sources   `envPrefix:"SOURCES_"`

	Summarizer configs.Summarizer `envPrefix:"SUMMARIZER_"`
}

// Load reads an optional .env file from the working directory and then
// parses environment variables into a Config. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	var cfg Config
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Benchmarks.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
