// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/reach-board/colorscale"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	defaultPort         = 3318
	defaultSQLiteURL    = "file:reach-board.db"
	defaultItemsPerPage = 10
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	WriteKey     string
	ItemsPerPage int
	ColorScheme  string
	BucketsFile  string
	EnvFile      string
	Seed         bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("reach-board", flag.ContinueOnError)

	// Network and storage (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.WriteKey, "write-key", "", "Key required on mutating requests (prefer env)")

	// Presentation
	fs.IntVar(&cfg.ItemsPerPage, "per-page", 0, "Default influencers per page")
	fs.StringVar(&cfg.ColorScheme, "scheme", "", "Map color scheme")
	fs.StringVar(&cfg.BucketsFile, "buckets", "", "YAML bucket table for map colors")

	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Dotenv file to load")
	fs.BoolVar(&cfg.Seed, "seed", false, "Insert sample data on startup")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Values already in the environment win over the file
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		port, err := envInt("PORT", defaultPort)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envOr("DATABASE_TYPE", DatabaseSQLite)
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	if cfg.WriteKey == "" {
		cfg.WriteKey = os.Getenv("WRITE_KEY")
	}

	if cfg.ItemsPerPage == 0 {
		perPage, err := envInt("ITEMS_PER_PAGE", defaultItemsPerPage)
		if err != nil {
			return Config{}, err
		}
		cfg.ItemsPerPage = perPage
	}
	if cfg.ItemsPerPage < 1 {
		return Config{}, errors.New("items per page must be positive")
	}

	if cfg.ColorScheme == "" {
		cfg.ColorScheme = envOr("COLOR_SCHEME", colorscale.DefaultScheme)
	}
	if _, ok := colorscale.SchemeByName(cfg.ColorScheme); !ok {
		return Config{}, fmt.Errorf("unknown color scheme %q", cfg.ColorScheme)
	}

	if cfg.BucketsFile == "" {
		cfg.BucketsFile = os.Getenv("BUCKETS_FILE")
	}

	return cfg, nil
}

// Buckets loads the configured bucket table, or the defaults when none is set
func (c Config) Buckets() (colorscale.Buckets, error) {
	if c.BucketsFile == "" {
		return colorscale.DefaultBuckets(), nil
	}
	return colorscale.LoadBucketsFile(c.BucketsFile)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
