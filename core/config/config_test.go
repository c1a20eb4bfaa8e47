// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for loading TOML, YAML and native settings files,
//              environment overrides, struct decoding and saving.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Native format, Decode and Save tests

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/msto63/lu/core/errors"
	"github.com/msto63/lu/core/log"
)

type wrapSettings struct {
	WrapWidth int
	TabWidth  int
	Channels  []string
	Timeout   time.Duration
	Version   string `lu:",readonly"`
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("load TOML config", func(t *testing.T) {
		path := writeConfig(t, "test.toml", `
[database]
host = "localhost"
port = 5432
ssl = true

[server]
timeout = "30s"
features = ["auth", "logging"]
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}
		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}
		if ssl := cfg.GetBool("database.ssl"); !ssl {
			t.Errorf("Expected ssl true, got %v", ssl)
		}
		if timeout := cfg.GetDuration("server.timeout"); timeout != 30*time.Second {
			t.Errorf("Expected timeout 30s, got %v", timeout)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Expected TOML format, got %v", cfg.Format())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeConfig(t, "test.yml", `
database:
  host: localhost
  port: 5432
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if host := cfg.GetString("database.host"); host != "localhost" {
			t.Errorf("Expected host 'localhost', got '%s'", host)
		}
		if port := cfg.GetInt("database.port"); port != 5432 {
			t.Errorf("Expected port 5432, got %d", port)
		}
	})

	t.Run("load native config", func(t *testing.T) {
		path := writeConfig(t, "lu.conf", `
# settings for lu
[Settings]
wrapWidth       72
server.host     "irc.example.net"
#logLevel
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatNative {
			t.Errorf("Expected native format, got %v", cfg.Format())
		}
		if width := cfg.GetInt("Settings.wrapWidth"); width != 72 {
			t.Errorf("Expected wrapWidth 72, got %d", width)
		}
		if host := cfg.GetString("Settings.server.host"); host != "irc.example.net" {
			t.Errorf("Expected unquoted host, got '%s'", host)
		}
		if cfg.Has("Settings.logLevel") {
			t.Error("Commented key should not be present")
		}
		if got := cfg.Sections(); !reflect.DeepEqual(got, []string{"Settings"}) {
			t.Errorf("Expected sections [Settings], got %v", got)
		}
	})

	t.Run("malformed native header", func(t *testing.T) {
		path := writeConfig(t, "bad.conf", "[Settings\nwrapWidth 1\n")
		_, err := Load(path)
		if !errors.IsInvalidFormat(err) {
			t.Errorf("Expected invalid format error, got %v", err)
		}
	})

	t.Run("nonexistent file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
		if !errors.IsNotFound(err) {
			t.Errorf("Expected not found error, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Load("  "); !errors.IsInvalidArgument(err) {
			t.Errorf("Expected invalid argument error, got %v", err)
		}
	})
}

func TestEnvironmentVariables(t *testing.T) {
	path := writeConfig(t, "test.toml", `
[database]
host = "localhost"
port = 5432
`)
	t.Setenv("LU_DATABASE_HOST", "production-db")
	t.Setenv("LU_DATABASE_PORT", "3306")

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "LU"})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if host := cfg.GetString("database.host"); host != "production-db" {
		t.Errorf("Expected host 'production-db' from env var, got '%s'", host)
	}
	if port := cfg.GetInt("database.port"); port != 3306 {
		t.Errorf("Expected port 3306 from env var, got %d", port)
	}

	plain, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if host := plain.GetString("database.host"); host != "localhost" {
		t.Errorf("Expected file value without prefix, got '%s'", host)
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		prefix, key, want string
	}{
		{"LU", "server.wrapWidth", "LU_SERVER_WRAP_WIDTH"},
		{"lu", "wrapWidth", "LU_WRAP_WIDTH"},
		{"", "database.host", "DATABASE_HOST"},
		{"LU", "log-level", "LU_LOG_LEVEL"},
		{"LU", "tab2Width", "LU_TAB2_WIDTH"},
	}
	for _, tt := range tests {
		if got := EnvKey(tt.prefix, tt.key); got != tt.want {
			t.Errorf("EnvKey(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
		}
	}
}

func TestDefaults(t *testing.T) {
	path := writeConfig(t, "test.toml", "[database]\nhost = \"localhost\"\n")

	cfg, err := LoadWithOptions(path, LoadOptions{
		Defaults: map[string]interface{}{"name": "lu", "database": "overridden"},
	})
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if name := cfg.GetString("name"); name != "lu" {
		t.Errorf("Expected default name 'lu', got '%s'", name)
	}
	if host := cfg.GetString("database.host"); host != "localhost" {
		t.Errorf("File values should win over defaults, got '%s'", host)
	}
	if port := cfg.GetInt("database.port", 5432); port != 5432 {
		t.Errorf("Expected default port 5432, got %d", port)
	}
	if timeout := cfg.GetDuration("server.timeout", 30*time.Second); timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", timeout)
	}
}

func TestHasAndSet(t *testing.T) {
	cfg, err := LoadFromString("[database]\nhost = \"localhost\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if !cfg.Has("database.host") {
		t.Error("Expected database.host to exist")
	}
	if cfg.Has("database.port") {
		t.Error("Expected database.port to be absent")
	}

	cfg.Set("database.port", 5432)
	cfg.Set("cache.redis.host", "cache")

	if port := cfg.GetInt("database.port"); port != 5432 {
		t.Errorf("Expected port 5432 after Set, got %d", port)
	}
	if host := cfg.GetString("cache.redis.host"); host != "cache" {
		t.Errorf("Expected nested Set to create tables, got '%s'", host)
	}
}

func TestGetAllIsACopy(t *testing.T) {
	cfg, err := LoadFromString("[database]\nhost = \"localhost\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	all := cfg.GetAll()
	all["database"].(map[string]interface{})["host"] = "changed"

	if host := cfg.GetString("database.host"); host != "localhost" {
		t.Errorf("GetAll must not expose internal state, got '%s'", host)
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString("server:\n  port: 8080\n", FormatYAML)
	if err != nil {
		t.Fatalf("Failed to load YAML string: %v", err)
	}
	if port := cfg.GetInt("server.port"); port != 8080 {
		t.Errorf("Expected port 8080, got %d", port)
	}

	if _, err := LoadFromString("[server\nport = ", FormatTOML); !errors.IsInvalidFormat(err) {
		t.Errorf("Expected invalid format error, got %v", err)
	}

	cfg, err = LoadFromString("", FormatYAML)
	if err != nil {
		t.Fatalf("Empty YAML should load: %v", err)
	}
	if len(cfg.GetAll()) != 0 {
		t.Errorf("Expected empty config, got %v", cfg.GetAll())
	}
}

func TestFormatDetection(t *testing.T) {
	tests := map[string]Format{
		"app.toml": FormatTOML,
		"app.YAML": FormatYAML,
		"app.yml":  FormatYAML,
		"lu.conf":  FormatNative,
		"settings": FormatNative,
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", path, got, want)
		}
	}

	if f, err := ParseFormat("yml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yml) = %v, %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for xml, got %v", err)
	}
}

func TestDecode(t *testing.T) {
	cfg, err := LoadFromString(`
[wrap]
wrapWidth = 72
tabWidth = 8
channels = ["#a", "#b"]
timeout = "5s"
colour = "red"
version = "9"
`, FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var s wrapSettings
	ignored, err := cfg.Decode("wrap", &s)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	want := wrapSettings{WrapWidth: 72, TabWidth: 8, Channels: []string{"#a", "#b"}, Timeout: 5 * time.Second}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("Decode = %+v, want %+v", s, want)
	}
	if !reflect.DeepEqual(ignored, []string{"colour", "version"}) {
		t.Errorf("Expected ignored [colour version], got %v", ignored)
	}
}

func TestDecodeNative(t *testing.T) {
	path := writeConfig(t, "lu.conf", `
[wrapSettings]
wrapWidth    100
channels     #a,#b
timeout      1m
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var s wrapSettings
	ignored, err := cfg.Decode("wrapSettings", &s)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(ignored) != 0 {
		t.Errorf("Expected nothing ignored, got %v", ignored)
	}
	if s.WrapWidth != 100 || s.Timeout != time.Minute || len(s.Channels) != 2 {
		t.Errorf("Unexpected decode result %+v", s)
	}
}

func TestDecodeEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString("[wrap]\nwrapWidth = 72\n", FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	t.Setenv("LU_WRAP_WIDTH", "100")
	t.Setenv("LU_TAB_WIDTH", "not-a-number")
	t.Setenv("LU_VERSION", "9")

	var out bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: &out})

	s := wrapSettings{TabWidth: 4}
	if _, err := cfg.WithEnvPrefix("LU").WithLogger(logger).Decode("wrap", &s); err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if s.WrapWidth != 100 {
		t.Errorf("Expected env override 100, got %d", s.WrapWidth)
	}
	if s.TabWidth != 4 {
		t.Errorf("Invalid override must leave the field alone, got %d", s.TabWidth)
	}
	if s.Version != "" {
		t.Errorf("Read-only field must not be overridden, got %q", s.Version)
	}
	if !strings.Contains(out.String(), "LU_TAB_WIDTH") {
		t.Errorf("Expected warning about LU_TAB_WIDTH, got %q", out.String())
	}
}

func TestDecodeErrors(t *testing.T) {
	cfg, err := LoadFromString("name = \"lu\"\n[wrap]\nwrapWidth = 1\n", FormatTOML)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var s wrapSettings
	if _, err := cfg.Decode("missing", &s); !errors.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
	if _, err := cfg.Decode("name", &s); !errors.IsTypeMismatch(err) {
		t.Errorf("Expected type mismatch, got %v", err)
	}
	if _, err := cfg.Decode("wrap", s); !errors.IsInvalidArgument(err) {
		t.Errorf("Expected invalid argument for non-pointer target, got %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	for _, name := range []string{"out.toml", "out.yaml", "out.conf"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			in := wrapSettings{WrapWidth: 80, TabWidth: 2, Channels: []string{"#go"}, Timeout: 3 * time.Second}

			if err := Save(path, FormatAuto, &in); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Reload failed: %v", err)
			}

			var out wrapSettings
			if _, err := cfg.Decode("wrapSettings", &out); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(out, in) {
				t.Errorf("Round trip = %+v, want %+v", out, in)
			}
		})
	}
}
