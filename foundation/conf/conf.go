// Package conf loads runtime settings for the rankcode binaries from the
// environment. Settings only shape the boundary layer (how many files encode
// at once, whether runs are traced); the encoding itself has no knobs.
package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the boundary-layer settings.
type Config struct {
	Workers int  // concurrent file encodes in batch mode
	Trace   bool // per-run trace logging to stderr
}

// Load reads the configuration from environment variables, with a .env file
// in the current or a parent directory applied first. Unset variables fall
// back to defaults.
func Load() (Config, error) {
	_ = loadEnvFile()

	cfg := Config{
		Workers: 4,
	}

	if v := os.Getenv("RANKCODE_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			return Config{}, fmt.Errorf("RANKCODE_WORKERS %q: expected a positive integer", v)
		}
		cfg.Workers = workers
	}

	if v := os.Getenv("RANKCODE_TRACE"); v != "" {
		trace, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("RANKCODE_TRACE %q: %w", v, err)
		}
		cfg.Trace = trace
	}

	return cfg, nil
}

// loadEnvFile walks up from the working directory looking for a .env file.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	// Look up to 5 levels.
	for i := 0; i < 5; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return os.ErrNotExist
}
