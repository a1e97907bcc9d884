// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"16MB", 16 * 1024 * 1024, false},
		{"512KB", 512 * 1024, false},
		{"1GB", 1 * 1024 * 1024 * 1024, false},
		{"100", 100, false},        // Bytes
		{"1024B", 1024, false},     // Bytes with suffix
		{" 4 MB ", 4194304, false}, // Spaces
		{"8mb", 8388608, false},    // Lowercase
		{"invalid", 0, true},
		{"10XB", 0, true},
		{"-10MB", 0, true},
	}

	for _, tc := range tests {
		val, err := parseSize(tc.input)
		if tc.hasError {
			assert.Error(t, err, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, "16MB", cfg.Server.MaxUploadSize)
		assert.Equal(t, int64(16*1024*1024), cfg.MaxUploadBytes)
		assert.Equal(t, []string{"/media", "/mnt"}, cfg.Scan.Roots)
		assert.Equal(t, 5*time.Minute, cfg.ThemeCacheTTL)
	})

	t.Run("Defaults are not shared", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, cfg.ParseAndValidate())
		cfg.Scan.Roots[0] = "/elsewhere"
		assert.Equal(t, "/media", DefaultScanRoots[0])
	})

	t.Run("Custom values", func(t *testing.T) {
		cfg := &Config{
			Server: ServerConfig{MaxUploadSize: "1MB"},
			Scan:   ScanConfig{Roots: []string{" /run/media/user/ ", "/srv"}},
			Cache:  CacheConfig{ThemeTTL: "0"},
		}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, int64(1048576), cfg.MaxUploadBytes)
		assert.Equal(t, []string{"/run/media/user", "/srv"}, cfg.Scan.Roots)
		assert.Equal(t, time.Duration(0), cfg.ThemeCacheTTL)
	})

	t.Run("Invalid size", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{MaxUploadSize: "NotASize"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid max_upload_size")
	})

	t.Run("Invalid root", func(t *testing.T) {
		cfg := &Config{Scan: ScanConfig{Roots: []string{"  "}}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid scan root")
	})

	t.Run("Invalid ttl", func(t *testing.T) {
		cfg := &Config{Cache: CacheConfig{ThemeTTL: "soon"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid theme_ttl")
	})

	t.Run("Drive history schedule", func(t *testing.T) {
		cfg := &Config{Scan: ScanConfig{RecordInterval: "1h", HistoryRetention: " 720h "}}
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, time.Hour, cfg.RecordInterval)
		assert.Equal(t, 720*time.Hour, cfg.HistoryRetention)

		cfg = &Config{}
		require.NoError(t, cfg.ParseAndValidate())
		assert.Zero(t, cfg.RecordInterval)
		assert.Zero(t, cfg.HistoryRetention)
	})

	t.Run("Invalid record interval", func(t *testing.T) {
		cfg := &Config{Scan: ScanConfig{RecordInterval: "-5m"}}
		err := cfg.ParseAndValidate()
		assert.ErrorContains(t, err, "invalid record_interval")

		cfg = &Config{Scan: ScanConfig{HistoryRetention: "forever"}}
		assert.ErrorContains(t, cfg.ParseAndValidate(), "invalid history_retention")
	})

	t.Run("Invalid port", func(t *testing.T) {
		cfg := &Config{Server: ServerConfig{Port: 70000}}
		assert.Error(t, cfg.ParseAndValidate())
	})
}

func TestLoadAndSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
secret = "s3cret"

[server]
host = "127.0.0.1"
port = 5000

[database]
path = "movies.db"

[scan]
roots = ["/media"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "movies.db", cfg.Database.Path)
	assert.Equal(t, []string{"/media"}, cfg.Scan.Roots)
	assert.Equal(t, "s3cret", cfg.Secret)

	cfg.Secret = "rotated"
	require.NoError(t, SaveConfig(path, cfg))

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "rotated", reloaded.Secret)
	assert.Equal(t, 5000, reloaded.Server.Port)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}
