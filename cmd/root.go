package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"forkful/internal/store"
)

// Config holds CLI configuration.
type Config struct {
	DBPath    string
	APIBase   string
	PageLimit int
}

// ParseFlags parses command-line flags and returns configuration. Env
// vars (and .env/.env.local files) provide defaults; flags win.
func ParseFlags() (*Config, error) {
	config := &Config{}

	// Load .env files first so env-based defaults work with flag parsing.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	flag.StringVar(&config.DBPath, "db", "", "Path to SQLite database file (default: ~/.forkful/forkful.db)")
	flag.StringVar(&config.APIBase, "api", "", "TheMealDB API base URL (or set MEALDB_API_BASE)")
	flag.IntVar(&config.PageLimit, "limit", 0, "Meals per catalog page (or set FORKFUL_PAGE_LIMIT)")
	flag.Parse()

	if config.APIBase == "" {
		config.APIBase = os.Getenv("MEALDB_API_BASE")
	}

	if config.PageLimit == 0 {
		if raw := os.Getenv("FORKFUL_PAGE_LIMIT"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid FORKFUL_PAGE_LIMIT %q: %w", raw, err)
			}
			config.PageLimit = limit
		}
	}
	if config.PageLimit <= 0 {
		config.PageLimit = store.DefaultPageLimit
	}

	if config.DBPath == "" {
		config.DBPath = os.Getenv("FORKFUL_DB")
	}
	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir := filepath.Join(home, ".forkful")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		config.DBPath = filepath.Join(configDir, "forkful.db")
	}

	return config, nil
}
