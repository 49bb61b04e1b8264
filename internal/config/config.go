// Package config layers the CLI's configuration sources — flags, a config
// file, and environment variables — the way spec §1 describes for the
// (out-of-core) CLI front-end: "argument parsing, file/stdin/env
// ingestion, interactive prompts, config-file loading".
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the CLI's resolved configuration, after defaults/file/env
// precedence has been applied. Command flags are applied on top of it by
// the commands themselves.
type Config struct {
	StorePath    string `mapstructure:"store_path"`
	AuditLogPath string `mapstructure:"audit_log_path"`
	AuditKeyHex  string `mapstructure:"audit_key"`
	DefaultN     int    `mapstructure:"default_shares"`
	DefaultK     int    `mapstructure:"default_threshold"`
	Format       string `mapstructure:"format"`
}

// Defaults returns the built-in configuration used when no file, env var,
// or flag overrides a field.
func Defaults() Config {
	return Config{
		StorePath:    "xsss-store.json",
		AuditLogPath: "xsss-audit.log",
		DefaultN:     5,
		DefaultK:     3,
		Format:       "json",
	}
}

// Load resolves configuration from, in ascending priority: built-in
// defaults, a YAML config file (if configPath is non-empty; a path that
// cannot be read is an error), and environment variables prefixed XSSS_.
// It reads no command-line flags.
func Load(configPath string) (Config, error) {
	v := viper.New()
	def := Defaults()
	v.SetDefault("store_path", def.StorePath)
	v.SetDefault("audit_log_path", def.AuditLogPath)
	v.SetDefault("audit_key", def.AuditKeyHex)
	v.SetDefault("default_shares", def.DefaultN)
	v.SetDefault("default_threshold", def.DefaultK)
	v.SetDefault("format", def.Format)

	v.SetEnvPrefix("xsss")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}
	return cfg, nil
}
