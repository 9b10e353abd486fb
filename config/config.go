package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// dothis specifics
	Parser         ParserConfig
	Storage        StorageConfig
	GoogleCalendar GoogleCalendarConfig
	Recurrence     RecurrenceConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	FilePath     string // rotated log file, empty for stdout only
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables the limiter
	MaxClients     int
	TTL            time.Duration
}

type ParserConfig struct {
	Timezone string // IANA name, empty for the process zone
}

type StorageConfig struct {
	SQLitePath string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Enabled reports whether calendar sync is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

type RecurrenceConfig struct {
	PreviewLimit int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/dothis/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path falls back to the search paths.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/dothis/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.FilePath = v.GetString("logger.file_path")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = v.GetInt("rate_limit.max_clients")
	cfg.RateLimit.TTL = v.GetDuration("rate_limit.ttl")

	// dothis specifics
	cfg.Parser.Timezone = v.GetString("parser.timezone")
	if tz := v.GetString("tz"); cfg.Parser.Timezone == "" && tz != "" {
		cfg.Parser.Timezone = tz
	}

	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")

	cfg.GoogleCalendar.CredentialsPath = expandEnvVar(v, v.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.TokenPath = expandEnvVar(v, v.GetString("google_calendar.token_path"))
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Recurrence.PreviewLimit = v.GetInt("recurrence.preview_limit")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 120)
	v.SetDefault("rate_limit.max_clients", 1000)
	v.SetDefault("rate_limit.ttl", "5m")
	v.SetDefault("storage.sqlite_path", "data/dothis.db")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
	v.SetDefault("recurrence.preview_limit", 5)
}

func (c *Config) validate() error {
	if c.HTTPServer.Port <= 0 || c.HTTPServer.Port > 65535 {
		return fmt.Errorf("http_server.port out of range: %d", c.HTTPServer.Port)
	}
	if c.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	if c.Recurrence.PreviewLimit < 1 || c.Recurrence.PreviewLimit > 50 {
		return fmt.Errorf("recurrence.preview_limit must be between 1 and 50, got %d", c.Recurrence.PreviewLimit)
	}
	if c.Storage.SQLitePath == "" {
		return fmt.Errorf("storage.sqlite_path is required")
	}
	if c.Parser.Timezone != "" {
		if _, err := time.LoadLocation(c.Parser.Timezone); err != nil {
			return fmt.Errorf("parser.timezone: %w", err)
		}
	}
	return nil
}

// Location resolves Parser.Timezone, falling back to the process zone.
func (c ParserConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}
