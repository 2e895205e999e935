package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the .env file read from the working directory.
const DefaultEnvFile = ".env"

// LoadDotEnv loads environment variables from .env files without replacing
// variables that are already set. With no paths, DefaultEnvFile is read if
// it exists. Explicitly named files must exist.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			slog.Debug("no .env file, using process environment")
			return nil
		}
		paths = []string{DefaultEnvFile}
	}

	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	slog.Debug("loaded env file", slog.Any("paths", paths))
	return nil
}
