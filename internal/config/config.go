package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Fixed generation parameters.
const (
	DefaultSamples    = 100_000
	DefaultSeed       = 42
	DefaultOutputPath = "transport_dataset_ml.csv"
	DefaultDBPath     = "data/shipments.db"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Get returns the trimmed value of key, or fallback when it is unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

type Generator struct {
	OutputPath string `validate:"required"`
	Samples    int    `validate:"gt=0"`
	Seed       uint64
}

// LoadGenerator reads OUTPUT_PATH; sample count and seed stay at their fixed values.
func LoadGenerator() (Generator, error) {
	cfg := Generator{
		OutputPath: Get("OUTPUT_PATH", DefaultOutputPath),
		Samples:    DefaultSamples,
		Seed:       DefaultSeed,
	}
	if err := validate.Struct(cfg); err != nil {
		return Generator{}, fmt.Errorf("load generator config: %w", err)
	}
	return cfg, nil
}

// Loader configures cmd/dbtool. DatabaseURL selects Postgres; otherwise DBPath names a SQLite file.
type Loader struct {
	DatasetPath string `validate:"required"`
	DatabaseURL string `validate:"omitempty,url"`
	DBPath      string `validate:"required_without=DatabaseURL"`
}

func LoadLoader() (Loader, error) {
	cfg := Loader{
		DatasetPath: Get("DATASET_PATH", DefaultOutputPath),
		DatabaseURL: Get("DATABASE_URL", ""),
		DBPath:      Get("DB_PATH", DefaultDBPath),
	}
	if err := validate.Struct(cfg); err != nil {
		return Loader{}, fmt.Errorf("load loader config: %w", err)
	}
	return cfg, nil
}

func (l Loader) UsePostgres() bool { return l.DatabaseURL != "" }
