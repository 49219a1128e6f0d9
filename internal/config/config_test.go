package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/markopoloparadox/web-crawler/internal/config"
)

func TestWithDefault(t *testing.T) {
	cfg := config.WithDefault()
	if cfg == nil {
		t.Fatal("WithDefault() returned nil")
	}

	built, err := cfg.Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}

	if built.ListenAddr() != "127.0.0.1:8080" {
		t.Errorf("expected ListenAddr '127.0.0.1:8080', got '%s'", built.ListenAddr())
	}
	if built.Concurrency() != 10 {
		t.Errorf("expected Concurrency 10, got %d", built.Concurrency())
	}
	if built.Timeout() != 10*time.Second {
		t.Errorf("expected Timeout 10s, got %v", built.Timeout())
	}
	if built.UserAgent() != "web-crawler/1.0" {
		t.Errorf("expected UserAgent 'web-crawler/1.0', got '%s'", built.UserAgent())
	}
	if built.ArchiveRoot() != "downloaded" {
		t.Errorf("expected ArchiveRoot 'downloaded', got '%s'", built.ArchiveRoot())
	}
	if built.RobotsEnabledByDefault() != false {
		t.Errorf("expected RobotsEnabledByDefault false, got %v", built.RobotsEnabledByDefault())
	}
}

func TestWithListenAddr(t *testing.T) {
	cfg, err := config.WithDefault().WithListenAddr("0.0.0.0:9090").Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.ListenAddr() != "0.0.0.0:9090" {
		t.Errorf("expected ListenAddr '0.0.0.0:9090', got '%s'", cfg.ListenAddr())
	}
}

func TestWithListenAddr_Empty(t *testing.T) {
	_, err := config.WithDefault().WithListenAddr("").Build()
	if err == nil {
		t.Fatal("expected error for empty listenAddr")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestWithConcurrency_ClampedLow(t *testing.T) {
	cfg, err := config.WithDefault().WithConcurrency(1).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.Concurrency() != 3 {
		t.Errorf("expected Concurrency clamped to 3, got %d", cfg.Concurrency())
	}
}

func TestWithConcurrency_ClampedHigh(t *testing.T) {
	cfg, err := config.WithDefault().WithConcurrency(500).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.Concurrency() != 50 {
		t.Errorf("expected Concurrency clamped to 50, got %d", cfg.Concurrency())
	}
}

func TestWithConcurrency_WithinRange(t *testing.T) {
	cfg, err := config.WithDefault().WithConcurrency(20).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.Concurrency() != 20 {
		t.Errorf("expected Concurrency 20, got %d", cfg.Concurrency())
	}
}

func TestWithTimeout(t *testing.T) {
	testTimeout := 30 * time.Second
	cfg, err := config.WithDefault().WithTimeout(testTimeout).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.Timeout() != testTimeout {
		t.Errorf("expected Timeout %v, got %v", testTimeout, cfg.Timeout())
	}
}

func TestWithTimeout_Invalid(t *testing.T) {
	_, err := config.WithDefault().WithTimeout(0).Build()
	if err == nil {
		t.Fatal("expected error for zero timeout")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestWithUserAgent(t *testing.T) {
	testAgent := "CustomBot/2.0"
	cfg, err := config.WithDefault().WithUserAgent(testAgent).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.UserAgent() != testAgent {
		t.Errorf("expected UserAgent '%s', got '%s'", testAgent, cfg.UserAgent())
	}
}

func TestWithArchiveRoot(t *testing.T) {
	testDir := "/custom/archive/path"
	cfg, err := config.WithDefault().WithArchiveRoot(testDir).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.ArchiveRoot() != testDir {
		t.Errorf("expected ArchiveRoot '%s', got '%s'", testDir, cfg.ArchiveRoot())
	}
}

func TestWithRobotsEnabledByDefault(t *testing.T) {
	cfg, err := config.WithDefault().WithRobotsEnabledByDefault(true).Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if cfg.RobotsEnabledByDefault() != true {
		t.Errorf("expected RobotsEnabledByDefault true, got %v", cfg.RobotsEnabledByDefault())
	}
}

func TestBuild_ReturnsValueNotPointer(t *testing.T) {
	original := config.WithDefault()
	built, err := original.Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}

	newBuilt, err := original.Build()
	if err != nil {
		t.Errorf("should not have any error, got %v", err)
	}
	if newBuilt.ListenAddr() != built.ListenAddr() {
		t.Error("Build() did not return matching config")
	}
}

func TestWithConfigFile_FileDoesNotExist(t *testing.T) {
	_, err := config.WithConfigFile("/nonexistent/path/config.json")

	if err == nil {
		t.Fatal("expected error for non-existent file, got nil")
	}
	if !errors.Is(err, config.ErrFileDoesNotExist) {
		t.Errorf("expected ErrFileDoesNotExist, got: %v", err)
	}
}

func TestWithConfigFile_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.json")

	if err := os.WriteFile(configPath, []byte("{invalid json content}"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	_, err := config.WithConfigFile(configPath)
	if err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
	if !errors.Is(err, config.ErrConfigParsingFail) {
		t.Errorf("expected ErrConfigParsingFail, got: %v", err)
	}
}

func TestWithConfigFile_ValidCompleteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.json")

	if err := os.WriteFile(configPath, []byte(completeConfigJson()), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loaded, err := config.WithConfigFile(configPath)
	if err != nil {
		t.Fatalf("unexpected error loading valid config: %v", err)
	}

	if loaded.ListenAddr() != "0.0.0.0:9999" {
		t.Errorf("expected ListenAddr '0.0.0.0:9999', got '%s'", loaded.ListenAddr())
	}
	if loaded.Concurrency() != 20 {
		t.Errorf("expected Concurrency 20, got %d", loaded.Concurrency())
	}
	if loaded.Timeout() != 30*time.Second {
		t.Errorf("expected Timeout 30s, got %v", loaded.Timeout())
	}
	if loaded.UserAgent() != "TestBot/1.0" {
		t.Errorf("expected UserAgent 'TestBot/1.0', got '%s'", loaded.UserAgent())
	}
	if loaded.ArchiveRoot() != "test_archive" {
		t.Errorf("expected ArchiveRoot 'test_archive', got '%s'", loaded.ArchiveRoot())
	}
	if !loaded.RobotsEnabledByDefault() {
		t.Errorf("expected RobotsEnabledByDefault true, got %v", loaded.RobotsEnabledByDefault())
	}
}

func TestWithConfigFile_PartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.json")

	partialData := `{
		"userAgent": "PartialBot/1.0",
		"archiveRoot": "partial_archive"
	}`

	if err := os.WriteFile(configPath, []byte(partialData), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loaded, err := config.WithConfigFile(configPath)
	if err != nil {
		t.Fatalf("unexpected error loading partial config: %v", err)
	}

	if loaded.UserAgent() != "PartialBot/1.0" {
		t.Errorf("expected UserAgent 'PartialBot/1.0', got '%s'", loaded.UserAgent())
	}
	if loaded.ArchiveRoot() != "partial_archive" {
		t.Errorf("expected ArchiveRoot 'partial_archive', got '%s'", loaded.ArchiveRoot())
	}

	// Defaults preserved for fields not present in the file.
	if loaded.ListenAddr() != "127.0.0.1:8080" {
		t.Errorf("expected ListenAddr to remain default, got '%s'", loaded.ListenAddr())
	}
	if loaded.Concurrency() != 10 {
		t.Errorf("expected Concurrency to remain default 10, got %d", loaded.Concurrency())
	}
}

func TestWithConfigFile_EmptyJSON(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.json")

	if err := os.WriteFile(configPath, []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	loaded, err := config.WithConfigFile(configPath)
	if err != nil {
		t.Fatalf("empty config should fall back to defaults, got error: %v", err)
	}
	if loaded.ListenAddr() != "127.0.0.1:8080" {
		t.Errorf("expected default ListenAddr, got '%s'", loaded.ListenAddr())
	}
}

func completeConfigJson() string {
	return `
	{
	"listenAddr": "0.0.0.0:9999",
	"concurrency": 20,
	"timeout": 30000000000,
	"userAgent": "TestBot/1.0",
	"archiveRoot": "test_archive",
	"robotsEnabledByDefault": true
}
	`
}
