// filepath: internal/cli/config_loader.go
package cli

import (
	"fmt"
	"moviecatalog/internal/config"
	"moviecatalog/internal/logging"
	"os"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "MOVIECATALOG"
	defaultConfigPath = "config.toml"
)

var (
	// Global config object populated by flags/env/file
	cfg *config.Config

	// Flags variables
	cfgFile       string
	logLevel      string
	dbPath        string
	scanRoots     []string
	host          string
	port          int
	maxUploadSize string
	secret        string
	themeTTL      string
	auditEnabled  bool
)

func registerPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config_path", defaultConfigPath, "Path to the base configuration file. (Env: MOVIECATALOG_CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Logging level (debug, info, warn, error). (Env: MOVIECATALOG_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&dbPath, "db-path", "", "Path to the SQLite database file. (Env: MOVIECATALOG_DB_PATH)")
	cmd.PersistentFlags().StringSliceVar(&scanRoots, "scan-root", nil, "Directory whose children are inspected for mounted drives, repeatable. (Env: MOVIECATALOG_SCAN_ROOT, comma separated)")
}

func registerServerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&host, "host", "", "Interface the HTTP server binds to. (Env: MOVIECATALOG_HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "Port for the HTTP server. (Env: MOVIECATALOG_PORT)")
	cmd.Flags().StringVar(&maxUploadSize, "max-upload-size", "", "Maximum request body size (e.g. '16MB'). (Env: MOVIECATALOG_MAX_UPLOAD_SIZE)")
	cmd.Flags().StringVar(&secret, "secret", "", "Key signing the flash message cookie. (Env: MOVIECATALOG_SECRET)")
	cmd.Flags().StringVar(&themeTTL, "theme-ttl", "", "Theme cache lifetime, '0' disables the cache. (Env: MOVIECATALOG_THEME_TTL)")
	cmd.Flags().BoolVar(&auditEnabled, "audit-enabled", false, "Log every catalog mutation as an audit event. (Env: MOVIECATALOG_AUDIT_ENABLED=true)")
}

// newViper binds the command's flags and the MOVIECATALOG_* environment.
// A changed flag wins over the environment.
func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindEnv(f.Name); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("failed to bind env for %s: %w", f.Name, err)
		}
	})
	return v, bindErr
}

// initializeConfig loads and overrides configuration values.
func initializeConfig(cmd *cobra.Command) error {
	v, err := newViper(cmd)
	if err != nil {
		return err
	}

	// 1. Check environment variable for config path first
	if !cmd.Flags().Changed("config_path") && cfgFile == defaultConfigPath {
		if envPath := os.Getenv(envPrefix + "_CONFIG_PATH"); envPath != "" {
			cfgFile = envPath
		}
	}

	cfg, err = config.LoadConfig(cfgFile)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = &config.Config{}
		} else {
			return fmt.Errorf("failed to load configuration from %s: %w", cfgFile, err)
		}
	}

	// 2. Apply Overrides (Env Vars and CLI Flags)
	applyOverrides(cfg, v)

	// 3. Validate
	if err := cfg.ParseAndValidate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// 4. Initialize Logging
	logging.Init(cfg.Logging.Level)
	goose.SetLogger(logging.Log)

	return nil
}

func applyOverrides(c *config.Config, v *viper.Viper) {
	// --- Environment Variables and CLI Flags ---
	if v.IsSet("host") {
		c.Server.Host = v.GetString("host")
	}
	if v.IsSet("port") {
		c.Server.Port = v.GetInt("port")
	}
	if v.IsSet("max-upload-size") {
		c.Server.MaxUploadSize = v.GetString("max-upload-size")
	}
	if v.IsSet("log-level") {
		c.Logging.Level = v.GetString("log-level")
	}
	if v.IsSet("db-path") {
		c.Database.Path = v.GetString("db-path")
	}
	if v.IsSet("scan-root") {
		if roots := splitList(v.GetStringSlice("scan-root")); len(roots) > 0 {
			c.Scan.Roots = roots
		}
	}
	if v.IsSet("secret") {
		c.Secret = v.GetString("secret")
	}
	if v.IsSet("theme-ttl") {
		c.Cache.ThemeTTL = v.GetString("theme-ttl")
	}
	if v.IsSet("audit-enabled") {
		c.Logging.AuditEnabled = v.GetBool("audit-enabled")
	}

	// --- Defaults ---
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Database.Path == "" {
		c.Database.Path = "movies.db"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// splitList flattens comma separated entries, which is how list values arrive from the environment.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
