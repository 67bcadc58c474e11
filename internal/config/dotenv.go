package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultEnvFiles = ".env.local,.env"

// LoadEnvFiles reads the local env files named by DOTENV_FILES into the
// process environment. Files that do not exist are skipped, and variables
// already set in the environment are never overridden, so earlier files in
// the list take precedence over later ones.
func LoadEnvFiles() ([]string, error) {
	files := os.Getenv("DOTENV_FILES")
	if files == "" {
		files = DefaultEnvFiles
	}

	loaded := make([]string, 0)
	for _, file := range strings.Split(files, ",") {
		file = strings.TrimSpace(file)
		if file == "" {
			continue
		}

		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("failed to stat env file %s: %w", file, err)
		}

		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}

	return loaded, nil
}
