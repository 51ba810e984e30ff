package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig = ".config"
	appName   = "gaugeview"
	envName   = ".env"
)

func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName), nil
}

// EnvFile is the per-user .env loaded after the working directory's.
func EnvFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, envName), nil
}

// Output is the file a render format is written to inside dir.
func Output(dir, format string) string {
	return filepath.Join(dir, "gauge."+format)
}
