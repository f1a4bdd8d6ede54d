package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var loadConfigOnce sync.Once
var configInstance AppConfig

func LoadConfig() AppConfig {
	loadConfigOnce.Do(func() {
		viper.SetEnvPrefix("esg_server")
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.SetConfigName("server")
		viper.AddConfigPath("config")
		viper.AddConfigPath("/config")
		if err := viper.ReadInConfig(); err != nil {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
		configInstance = AppConfig{
			General: GeneralConfig{
				LogLevel: viper.GetString("general.log_level"),
			},
			Server: ServerConfig{
				Addr:           viper.GetString("server.addr"),
				AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			},
			Backend: BackendConfig{
				BaseURL: viper.GetString("backend.base_url"),
				Timeout: viper.GetDuration("backend.timeout"),
			},
			SchemaCache: SchemaCacheConfig{
				TTL: viper.GetDuration("schema_cache.ttl"),
			},
			Sessions: SessionsConfig{
				IdleTTL:          viper.GetDuration("sessions.idle_ttl"),
				DefaultCompanyID: viper.GetInt("sessions.default_company_id"),
			},
			SnapshotRefresh: SnapshotRefreshConfig{
				Schedule: viper.GetString("snapshot_refresh.schedule"),
			},
		}
	})

	return configInstance
}

type AppConfig struct {
	General         GeneralConfig
	Server          ServerConfig
	Backend         BackendConfig
	SchemaCache     SchemaCacheConfig
	Sessions        SessionsConfig
	SnapshotRefresh SnapshotRefreshConfig
}

type GeneralConfig struct {
	LogLevel string
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// BackendConfig points at the ESG backend that owns schema, submissions and
// scores.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SchemaCacheConfig struct {
	TTL time.Duration
}

// SessionsConfig governs form session lifecycle. DefaultCompanyID is used
// when a session is created without one; it replaces the hard-coded company
// the previous UI shipped with.
type SessionsConfig struct {
	IdleTTL          time.Duration
	DefaultCompanyID int
}

// SnapshotRefreshConfig holds the cron expression for background refresh of
// session display data.
type SnapshotRefreshConfig struct {
	Schedule string
}
