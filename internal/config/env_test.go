package config

import (
	"os"
	"testing"
)

// clearEnv unsets keys for the duration of a test and restores them afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
	}
}

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for key, value := range values {
		t.Setenv(key, value)
	}
}

var baseEnvKeys = []string{"ENV", "LOGGER_LEVEL", "LOGGER_FORMAT"}
