package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	// Path is the directory of the json config files.
	Path = "infra/config"
	// EnvFile is the optional dotenv file loaded before parsing the environment.
	EnvFile = ".env"
)

// ErrInvalid is returned when the loaded config cannot drive a run.
var ErrInvalid = errors.New("invalid config")

// Predict configures a prediction run.
type Predict struct {
	// Rows and Cols are the shape of the synthetic ground truth matrix.
	Rows int `json:"rows" env:"PREDICT_ROWS"`
	Cols int `json:"cols" env:"PREDICT_COLS"`
	// Density is the fraction of known entries of the matrix.
	Density float64 `json:"density" env:"PREDICT_DENSITY"`
	Rounds  int     `json:"rounds" env:"PREDICT_ROUNDS"`
	// Noise is the standard deviation of the samples around the true value.
	Noise     float64 `json:"noise" env:"PREDICT_NOISE"`
	Seed      uint64  `json:"seed" env:"PREDICT_SEED"`
	Workers   int     `json:"workers" env:"PREDICT_WORKERS"`
	Precision int     `json:"precision" env:"PREDICT_PRECISION"`
	LogLevel  string  `json:"log_level" env:"LOG_LEVEL"`
	Console   bool    `json:"console" env:"LOG_CONSOLE"`
	// MetricsAddr is the listen address of the metrics endpoint, metrics are not served if empty.
	MetricsAddr string `json:"metrics_addr" env:"METRICS_ADDR"`
	// Plot is the output file of the sample histogram, no plot is written if empty.
	Plot string `json:"plot" env:"PREDICT_PLOT"`
	Bins int    `json:"bins" env:"PREDICT_BINS"`
}

// Default returns the config used when nothing else is provided.
func Default() *Predict {
	return &Predict{
		Rows:      10,
		Cols:      10,
		Density:   0.2,
		Rounds:    100,
		Noise:     1,
		Seed:      1,
		Workers:   0,
		Precision: 2,
		LogLevel:  "info",
		Console:   true,
		Bins:      16,
	}
}

// Validate checks the config can drive a run.
func (p *Predict) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("%w: shape %dx%d", ErrInvalid, p.Rows, p.Cols)
	}
	if p.Density <= 0 || p.Density > 1 {
		return fmt.Errorf("%w: density %v", ErrInvalid, p.Density)
	}
	if p.Rounds < 0 {
		return fmt.Errorf("%w: rounds %d", ErrInvalid, p.Rounds)
	}
	if p.Noise < 0 {
		return fmt.Errorf("%w: noise %v", ErrInvalid, p.Noise)
	}
	if p.Precision < 0 {
		return fmt.Errorf("%w: precision %d", ErrInvalid, p.Precision)
	}
	if p.Bins <= 0 {
		return fmt.Errorf("%w: bins %d", ErrInvalid, p.Bins)
	}
	return nil
}

// Load loads the config for the given key.
// The defaults are overridden by the json file of the key, if it exists,
// and then by the environment, including the variables of the dotenv file.
func Load(key string) (*Predict, error) {
	cfg := Default()

	file := filepath.Join(Path, fmt.Sprintf("%s.json", key))
	b, err := os.ReadFile(file)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("could not unmarshal the config for %s: %w", key, err)
		}
		log.Debug().Str("key", key).Str("file", file).Msg("loaded default config")
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("key", key).Str("file", file).Msg("no config file")
	default:
		return nil, fmt.Errorf("could not load config for %s: %w", key, err)
	}

	// NOTE : godotenv does not override variables already set in the environment
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load env file %s: %w", EnvFile, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse environment for %s: %w", key, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad loads the config for the given key and panics on failure.
func MustLoad(key string) *Predict {
	cfg, err := Load(key)
	if err != nil {
		panic(fmt.Sprintf("could not load config for %s: %s", key, err.Error()))
	}
	return cfg
}
