package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dothis/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := config.LoadFile(writeConfig(t, "environment:\n  name: staging\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.Environment.Name != "staging" {
		t.Errorf("Environment.Name = %q", cfg.Environment.Name)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.HTTPServer.Mode != "debug" {
		t.Errorf("HTTPServer = %+v", cfg.HTTPServer)
	}
	if cfg.RateLimit.RequestsPerMin != 120 || cfg.RateLimit.TTL != 5*time.Minute {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Storage.SQLitePath != "data/dothis.db" {
		t.Errorf("SQLitePath = %q", cfg.Storage.SQLitePath)
	}
	if cfg.GoogleCalendar.CalendarID != "primary" || cfg.GoogleCalendar.Enabled() {
		t.Errorf("GoogleCalendar = %+v", cfg.GoogleCalendar)
	}
	if cfg.Recurrence.PreviewLimit != 5 {
		t.Errorf("PreviewLimit = %d", cfg.Recurrence.PreviewLimit)
	}
}

func TestLoadFileValues(t *testing.T) {
	t.Setenv("DOTHIS_TEST_CREDS", "/secrets/google.json")

	cfg, err := config.LoadFile(writeConfig(t, `
http_server:
  port: 9090
  mode: release
logger:
  level: info
  file_path: logs/dothis.log
rate_limit:
  requests_per_min: 30
  ttl: 90s
parser:
  timezone: Asia/Ho_Chi_Minh
storage:
  sqlite_path: /var/lib/dothis/tasks.db
google_calendar:
  credentials_path: ${DOTHIS_TEST_CREDS}
  calendar_id: team@example.com
recurrence:
  preview_limit: 12
`))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 || cfg.HTTPServer.Mode != "release" {
		t.Errorf("HTTPServer = %+v", cfg.HTTPServer)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.FilePath != "logs/dothis.log" {
		t.Errorf("Logger = %+v", cfg.Logger)
	}
	if cfg.RateLimit.RequestsPerMin != 30 || cfg.RateLimit.TTL != 90*time.Second {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if got := cfg.Parser.Location().String(); got != "Asia/Ho_Chi_Minh" {
		t.Errorf("Location = %s", got)
	}
	if cfg.GoogleCalendar.CredentialsPath != "/secrets/google.json" || !cfg.GoogleCalendar.Enabled() {
		t.Errorf("GoogleCalendar = %+v", cfg.GoogleCalendar)
	}
	if cfg.Recurrence.PreviewLimit != 12 {
		t.Errorf("PreviewLimit = %d", cfg.Recurrence.PreviewLimit)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad port", "http_server:\n  port: 70000\n", "http_server.port"},
		{"bad timezone", "parser:\n  timezone: Mars/Olympus\n", "parser.timezone"},
		{"preview limit", "recurrence:\n  preview_limit: 500\n", "preview_limit"},
		{"negative rate", "rate_limit:\n  requests_per_min: -1\n", "requests_per_min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFile(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %q", err, tt.want)
			}
		})
	}

	if _, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit file should fail")
	}
}

func TestParserLocationDefault(t *testing.T) {
	if got := (config.ParserConfig{}).Location(); got != time.Local {
		t.Errorf("Location = %v, want Local", got)
	}
}
