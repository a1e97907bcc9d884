// filepath: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// DefaultScanRoots are the conventional mount directories for removable and general mounts.
var DefaultScanRoots = []string{"/media", "/mnt"}

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`
	Scan     ScanConfig     `toml:"scan"`
	Cache    CacheConfig    `toml:"cache"`

	// Secret signs the flash-message session cookie. Generated and persisted if empty.
	Secret string `toml:"secret"`

	MaxUploadBytes   int64         `toml:"-"` // Runtime computed value
	ThemeCacheTTL    time.Duration `toml:"-"` // Runtime computed value
	RecordInterval   time.Duration `toml:"-"` // Runtime computed value
	HistoryRetention time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host          string `toml:"host"`
	Port          int    `toml:"port"`
	MaxUploadSize string `toml:"max_upload_size"` // e.g. "16MB", "512KB"
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// ScanConfig lists the directories whose children are inspected for mounted drives.
type ScanConfig struct {
	Roots []string `toml:"roots"`
	// RecordInterval enables periodic drive history recording while serving, e.g. "1h".
	RecordInterval string `toml:"record_interval"`
	// HistoryRetention prunes drive records not seen for this long, e.g. "720h".
	HistoryRetention string `toml:"history_retention"`
}

// CacheConfig holds the in-process cache settings.
type CacheConfig struct {
	ThemeTTL string `toml:"theme_ttl"` // e.g. "5m"; "0" disables caching
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
// Used to persist the auto-generated session secret.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	// Default MaxUploadSize to 16MB if not specified
	if c.Server.MaxUploadSize == "" {
		c.Server.MaxUploadSize = "16MB"
	}

	sizeBytes, err := parseSize(c.Server.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	c.MaxUploadBytes = sizeBytes

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	if len(c.Scan.Roots) == 0 {
		c.Scan.Roots = append([]string(nil), DefaultScanRoots...)
	}
	roots := make([]string, 0, len(c.Scan.Roots))
	for _, root := range c.Scan.Roots {
		root = strings.TrimSpace(root)
		if root == "" {
			return fmt.Errorf("invalid scan root: empty path")
		}
		roots = append(roots, filepath.Clean(root))
	}
	c.Scan.Roots = roots

	if c.Cache.ThemeTTL == "" {
		c.Cache.ThemeTTL = "5m"
	}
	ttl, err := time.ParseDuration(c.Cache.ThemeTTL)
	if err != nil || ttl < 0 {
		return fmt.Errorf("invalid theme_ttl: %s", c.Cache.ThemeTTL)
	}
	c.ThemeCacheTTL = ttl

	if c.RecordInterval, err = parseOptionalDuration(c.Scan.RecordInterval); err != nil {
		return fmt.Errorf("invalid record_interval: %s", c.Scan.RecordInterval)
	}
	if c.HistoryRetention, err = parseOptionalDuration(c.Scan.HistoryRetention); err != nil {
		return fmt.Errorf("invalid history_retention: %s", c.Scan.HistoryRetention)
	}

	return nil
}

// parseOptionalDuration treats an empty string as zero and rejects negative values.
func parseOptionalDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", raw)
	}
	return d, nil
}

// parseSize parses a size string (e.g., "100G", "500MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	switch unit {
	case "T":
		return value * (1 << 40), nil
	case "G":
		return value * (1 << 30), nil
	case "M":
		return value * (1 << 20), nil
	case "K":
		return value * (1 << 10), nil
	default:
		return value, nil
	}
}
