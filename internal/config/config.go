package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by INVESTORDASH_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("INVESTORDASH_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Missing files are fine; real environment variables still apply
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DataSource returns where documents are read from.
// Defaults to "file" if not set.
// Valid values: file, http, postgres
func DataSource() string {
	s := os.Getenv("DATA_SOURCE")
	if s == "" {
		return "file"
	}
	return s
}

// DataDir is the root of the file source: manifest.json and tenants/.
func DataDir() string {
	d := os.Getenv("DATA_DIR")
	if d == "" {
		return "data"
	}
	return d
}

// DataBaseURL is the site serving /data/... for the http source.
func DataBaseURL() string {
	return os.Getenv("DATA_BASE_URL")
}

func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

// SourceTimeout bounds each document fetch of the http source.
// Defaults to 10s if not set.
func SourceTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("SOURCE_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// ScoringPolicy names the step-score preset.
// Defaults to "coarse" if not set.
// Valid values: coarse, proportional
func ScoringPolicy() string {
	p := os.Getenv("SCORING_POLICY")
	if p == "" {
		return "coarse"
	}
	return p
}

// ScoringPolicyPath points at a YAML policy file. When set it takes
// precedence over SCORING_POLICY.
func ScoringPolicyPath() string {
	return os.Getenv("SCORING_POLICY_PATH")
}

// ProbeInterval returns how often the data source is probed.
// Defaults to 60s if not set.
func ProbeInterval() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("PROBE_INTERVAL_SECONDS"))
	if err != nil || secs <= 0 {
		return 60 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// AssetsDir is served under /assets/ when set.
func AssetsDir() string {
	return os.Getenv("ASSETS_DIR")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
