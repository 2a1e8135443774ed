package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		Port:       "8080",
		SourcesDir: "./sources",
		ExportDir:  "./exports",
		Timeout:    30,
		MaxRetries: 3,
		RetryDelay: 1000,
		Backoff:    "exponential",
		UserAgent:  "Test Agent",
		Timezone:   "UTC",
		Debug:      true,
		Version:    "test-version",
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.SourcesDir != "./sources" {
		t.Errorf("Expected sources dir './sources', got '%s'", cfg.SourcesDir)
	}
	if cfg.ExportDir != "./exports" {
		t.Errorf("Expected export dir './exports', got '%s'", cfg.ExportDir)
	}
	if cfg.Timeout != 30 {
		t.Errorf("Expected timeout 30, got %d", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 1000 {
		t.Errorf("Expected retry delay 1000, got %d", cfg.RetryDelay)
	}
	if cfg.Backoff != "exponential" {
		t.Errorf("Expected backoff 'exponential', got '%s'", cfg.Backoff)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Expected timezone 'UTC', got '%s'", cfg.Timezone)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
