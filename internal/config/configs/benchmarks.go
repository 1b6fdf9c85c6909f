package configs

import "fmt"

const (
	BenchmarkSourceStatic   = "static"
	BenchmarkSourcePostgres = "postgres"
)

// Benchmarks selects the benchmark repository. Static reads File, or the
// built-in table when File is empty. The rate URLs are optional pages whose
// first table maps industry to a percentage.
type Benchmarks struct {
	Source        string `env:"SOURCE" envDefault:"static"`
	File          string `env:"FILE"`
	CTRURL        string `env:"CTR_URL"`
	ConversionURL string `env:"CONVERSION_URL"`
}

func (b Benchmarks) Validate() error {
	switch b.Source {
	case BenchmarkSourceStatic, BenchmarkSourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown benchmark source %q", b.Source)
	}
}
