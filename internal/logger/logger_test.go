package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizowl/internal/config"
)

func TestNewWritesToLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "quizowl.log")
	log := New(&config.Config{Environment: "production", LogFile: logFile})

	log.Info("server started")
	log.Debug("hidden in production")
	_ = log.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"msg":"server started"`) {
		t.Errorf("log file missing info entry: %s", content)
	}
	if strings.Contains(content, "hidden in production") {
		t.Error("debug entry written in production")
	}
}

func TestNewWithoutFile(t *testing.T) {
	if New(&config.Config{Environment: "development"}) == nil {
		t.Fatal("New() returned nil")
	}
}
