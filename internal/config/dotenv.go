package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"habit-tracker-go/pkg/logger"

	"github.com/joho/godotenv"
)

const dotenvFilename = ".env"

// loadDotEnv fills unset variables from ENV_FILE, or from the nearest .env
// found walking up from the working directory. Variables already present in
// the environment are never overridden.
func loadDotEnv(log logger.Logger) error {
	path := strings.TrimSpace(os.Getenv("ENV_FILE"))
	if path == "" {
		found, err := findDotEnv(dotenvFilename)
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("dotenv: no .env file found")
			return nil
		}
		if err != nil {
			return err
		}
		path = found
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	loaded, skipped, err := applyDotEnv(values)
	if err != nil {
		return err
	}

	log.Info("dotenv: loaded variables", "count", loaded, "path", path)
	if len(skipped) > 0 {
		log.Info("dotenv: skipped variables already set in env", "keys", skipped)
	}
	return nil
}

func applyDotEnv(values map[string]string) (int, []string, error) {
	loaded := 0
	var skipped []string
	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			skipped = append(skipped, key)
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return loaded, skipped, err
		}
		loaded++
	}
	sort.Strings(skipped)
	return loaded, skipped, nil
}

func findDotEnv(filename string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, filename)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
