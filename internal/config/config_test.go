package config

import (
	"testing"
	"time"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name       string
		envValue   string
		defaultVal string
		expected   string
	}{
		{"uses env value", "hello", "default", "hello"},
		{"uses default when empty", "", "default", "default"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("QUIZOWL_TEST_VAR", tc.envValue)
			if got := getEnv("QUIZOWL_TEST_VAR", tc.defaultVal); got != tc.expected {
				t.Errorf("getEnv() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{"parses integer", "42", 42},
		{"uses default for empty", "", 10},
		{"uses default for non-numeric", "abc", 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("QUIZOWL_TEST_INT", tc.envValue)
			if got := getEnvAsInt("QUIZOWL_TEST_INT", 10); got != tc.expected {
				t.Errorf("getEnvAsInt() = %d, want %d", got, tc.expected)
			}
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	tests := []struct {
		envValue string
		expected bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"", false},
		{"nope", false},
	}

	for _, tc := range tests {
		t.Run(tc.envValue, func(t *testing.T) {
			t.Setenv("QUIZOWL_TEST_BOOL", tc.envValue)
			if got := getEnvAsBool("QUIZOWL_TEST_BOOL", false); got != tc.expected {
				t.Errorf("getEnvAsBool(%q) = %v, want %v", tc.envValue, got, tc.expected)
			}
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		envValue string
		expected time.Duration
	}{
		{"30m", 30 * time.Minute},
		{"", time.Hour},
		{"-5m", time.Hour},
		{"soon", time.Hour},
	}

	for _, tc := range tests {
		t.Run(tc.envValue, func(t *testing.T) {
			t.Setenv("QUIZOWL_TEST_DURATION", tc.envValue)
			if got := getEnvAsDuration("QUIZOWL_TEST_DURATION", time.Hour); got != tc.expected {
				t.Errorf("getEnvAsDuration(%q) = %v, want %v", tc.envValue, got, tc.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("JOURNAL_ENABLED", "")
	t.Setenv("DB_TYPE", "")

	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
	if cfg.JournalEnabled {
		t.Error("journal should be disabled by default")
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %v, want 24h", cfg.SessionDuration)
	}
}

func TestLoadSessionSecret(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		secret   string
		expected string
	}{
		{"development default", "", "", "quizowl-development-secret"},
		{"explicit development", "Development", "", "quizowl-development-secret"},
		{"production unset", "production", "", ""},
		{"staging unset", "staging", "", ""},
		{"production configured", "production", "s3cret", "s3cret"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", tc.env)
			t.Setenv("SESSION_SECRET", tc.secret)
			if got := Load().SessionSecret; got != tc.expected {
				t.Errorf("SessionSecret = %q, want %q", got, tc.expected)
			}
		})
	}
}
