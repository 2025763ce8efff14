package generator

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the configuration for the generator application
type Config struct {
	HTTPAddr string
	// RepoBackend selects the payload store: "mem" or "pg".
	RepoBackend string
	// DatabaseDSN is the Postgres DSN; required when RepoBackend is "pg".
	DatabaseDSN string
	// QRSize is the default QR symbol edge length in pixels.
	QRSize int
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr:    "localhost:9090",
		RepoBackend: "mem",
		QRSize:      256,
	}
}

// LoadConfig reads configuration from the environment. A .env file is
// loaded first when present; real environment variables take precedence.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getenv("HTTP_ADDR", "localhost:9090"),
		RepoBackend: getenv("REPO_BACKEND", "mem"),
		DatabaseDSN: getenv("DB_DSN", ""),
		QRSize:      getenvInt("QR_SIZE", 256),
	}

	switch cfg.RepoBackend {
	case "mem":
	case "pg":
		if cfg.DatabaseDSN == "" {
			return nil, fmt.Errorf("DB_DSN is required for pg backend")
		}
	default:
		return nil, fmt.Errorf("unsupported REPO_BACKEND=%s", cfg.RepoBackend)
	}
	if cfg.QRSize <= 0 {
		return nil, fmt.Errorf("QR_SIZE must be positive")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return parsed
}
