package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	BatchSize   int
	MetricsAddr string
	Verbose     bool
}

// ParseFlags resolves configuration from flags, the environment, and an
// optional .env file, in that order of precedence. Remaining positional
// arguments (the command and its operands) are returned alongside.
func ParseFlags(args []string) (Config, []string, error) {
	// A missing .env is fine; explicit env and flags still apply.
	_ = godotenv.Load()

	var cfg Config
	var timeoutSec int

	fs := flag.NewFlagSet("polly", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "u", "", "API base URL")
	fs.IntVar(&timeoutSec, "timeout", 0, "Request timeout in seconds")
	fs.IntVar(&cfg.BatchSize, "batch", 0, "Page size for fetch-all pagination (1-100)")
	fs.StringVar(&cfg.MetricsAddr, "metrics", "", "Address to serve Prometheus metrics on")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AccessToken, "token", "", "Bearer access token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	// Fall back to environment variables
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("POLLY_BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000" // default
	}

	if cfg.AccessToken == "" {
		cfg.AccessToken = os.Getenv("POLLY_ACCESS_TOKEN")
	}

	if timeoutSec == 0 {
		if timeoutStr := os.Getenv("POLLY_TIMEOUT"); timeoutStr != "" {
			seconds, err := strconv.Atoi(timeoutStr)
			if err != nil {
				return Config{}, nil, errors.New("invalid POLLY_TIMEOUT env variable")
			}
			timeoutSec = seconds
		} else {
			timeoutSec = 30 // default
		}
	}
	if timeoutSec <= 0 {
		return Config{}, nil, errors.New("timeout must be a positive number of seconds")
	}
	cfg.Timeout = time.Duration(timeoutSec) * time.Second

	if cfg.BatchSize == 0 {
		if batchStr := os.Getenv("POLLY_BATCH_SIZE"); batchStr != "" {
			batch, err := strconv.Atoi(batchStr)
			if err != nil {
				return Config{}, nil, errors.New("invalid POLLY_BATCH_SIZE env variable")
			}
			cfg.BatchSize = batch
		} else {
			cfg.BatchSize = 50 // default
		}
	}
	if cfg.BatchSize < 1 || cfg.BatchSize > 100 {
		return Config{}, nil, errors.New("batch size must be between 1 and 100")
	}

	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = os.Getenv("POLLY_METRICS_ADDR")
	}

	return cfg, fs.Args(), nil
}
