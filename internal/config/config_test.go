// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playbymail/vb6parse/internal/config"
)

func TestLoad(t *testing.T) {
	// Test non-existent file
	t.Run("non-existent file", func(t *testing.T) {
		cfg, err := config.Load("non-existent-file.json", false)
		if err != nil {
			t.Errorf("expected no error for non-existent file, got %v", err)
		}
		if cfg == nil {
			t.Fatalf("expected non-nil config")
		}
		// Should return default config
		if cfg.Resources.CacheSize != 16 {
			t.Errorf("expected default cache size, got %d", cfg.Resources.CacheSize)
		}
	})

	// Test directory instead of file
	t.Run("directory error", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := config.Load(tmpDir, false)
		if err == nil {
			t.Errorf("expected error for directory, got nil")
		}
	})

	// Test empty config file
	t.Run("empty config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		err := os.WriteFile(configFile, []byte("{}"), 0644)
		if err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Resources.CacheSize != 16 {
			t.Errorf("expected default cache size, got %d", cfg.Resources.CacheSize)
		}
	})

	// Test partial config loading
	t.Run("partial config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		data := []byte(`{"Parser": {"StrictMode": true}, "Resources": {"CacheSize": 4}}`)
		if err := os.WriteFile(configFile, data, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if !cfg.Parser.StrictMode {
			t.Errorf("expected strict mode")
		}
		if cfg.Resources.CacheSize != 4 {
			t.Errorf("expected cache size 4, got %d", cfg.Resources.CacheSize)
		}
	})

	// Test malformed config falls back to defaults
	t.Run("malformed config", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		if err := os.WriteFile(configFile, []byte("{not json"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Resources.CacheSize != 16 {
			t.Errorf("expected default cache size, got %d", cfg.Resources.CacheSize)
		}
	})
}
