package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv looks for a .env file in dir and its parents and loads the first
// one found into the process environment. Variables already set in the
// environment are never overridden.
//
// It returns the path that was loaded, or "" when no file exists.
// A missing file is not an error; the process environment is used as-is.
func LoadDotEnv(dir string, logger *slog.Logger) (string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	path, err := findDotEnv(dir)
	if err != nil {
		return "", err
	}
	if path == "" {
		logger.Warn(".env file not found; using existing environment variables")
		return "", nil
	}

	if err := godotenv.Load(path); err != nil {
		return "", err
	}
	logger.Info(".env file loaded", slog.String("path", path))
	return path, nil
}

func findDotEnv(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(abs, ".env")
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", nil
		}
		abs = parent
	}
}
