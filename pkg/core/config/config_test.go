package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mdwerror "github.com/msto63/iadate/foundation/core/error"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{5 * time.Minute}
	result, err := d.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "5m0s" {
		t.Errorf("MarshalText() = %v, want 5m0s", string(result))
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.Locale != "en_US" {
		t.Errorf("General.Locale = %v, want en_US", cfg.General.Locale)
	}
	if cfg.Live.Period.Duration != time.Second {
		t.Errorf("Live.Period = %v, want 1s", cfg.Live.Period.Duration)
	}
	if cfg.Live.BufferSize != 16 {
		t.Errorf("Live.BufferSize = %v, want 16", cfg.Live.BufferSize)
	}
	if cfg.Server.Port != 8300 {
		t.Errorf("Server.Port = %v, want 8300", cfg.Server.Port)
	}
	if cfg.Store.Path != filepath.Join("./data", "marks.db") {
		t.Errorf("Store.Path = %v", cfg.Store.Path)
	}
	if cfg.Server.Addr() != "127.0.0.1:8300" {
		t.Errorf("Server.Addr() = %v", cfg.Server.Addr())
	}
}

func TestConfig_applyDefaults_PreservesValues(t *testing.T) {
	cfg := &Config{
		General: GeneralConfig{DataDir: "/var/lib/iadate", LogLevel: "debug"},
		Server:  ServerConfig{Port: 9000},
	}
	cfg.applyDefaults()

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %v, want 9000", cfg.Server.Port)
	}
	if cfg.Store.Path != filepath.Join("/var/lib/iadate", "marks.db") {
		t.Errorf("Store.Path should follow DataDir, got %v", cfg.Store.Path)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "iadate.toml", `
[general]
log_level = "debug"
locale = "en_GB"

[live]
period = "250ms"
buffer_size = 4

[server]
port = 9090

[store]
path = "${IADATE_TEST_DIR}/marks.db"
`)
	t.Setenv("IADATE_TEST_DIR", "/tmp/iadate-test")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v", cfg.General.LogLevel)
	}
	if cfg.General.Locale != "en_GB" {
		t.Errorf("General.Locale = %v", cfg.General.Locale)
	}
	if cfg.Live.Period.Duration != 250*time.Millisecond {
		t.Errorf("Live.Period = %v", cfg.Live.Period.Duration)
	}
	if cfg.Live.BufferSize != 4 {
		t.Errorf("Live.BufferSize = %v", cfg.Live.BufferSize)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %v", cfg.Server.Port)
	}
	if cfg.Store.Path != "/tmp/iadate-test/marks.db" {
		t.Errorf("Store.Path = %v", cfg.Store.Path)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "iadate.yaml", `
general:
  log_format: json
live:
  period: 2s
server:
  host: 0.0.0.0
  port: 8088
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v", cfg.General.LogFormat)
	}
	if cfg.Live.Period.Duration != 2*time.Second {
		t.Errorf("Live.Period = %v", cfg.Live.Period.Duration)
	}
	if cfg.Server.Addr() != "0.0.0.0:8088" {
		t.Errorf("Server.Addr() = %v", cfg.Server.Addr())
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode mdwerror.Code
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.toml") },
			wantCode: mdwerror.CodeConfigError,
		},
		{
			name:     "unsupported extension",
			path:     func(t *testing.T) string { return writeFile(t, "iadate.ini", "x=1") },
			wantCode: mdwerror.CodeConfigError,
		},
		{
			name:     "broken toml",
			path:     func(t *testing.T) string { return writeFile(t, "iadate.toml", "[general\n") },
			wantCode: mdwerror.CodeConfigError,
		},
		{
			name:     "bad duration",
			path:     func(t *testing.T) string { return writeFile(t, "iadate.yaml", "live:\n  period: soon\n") },
			wantCode: mdwerror.CodeConfigError,
		},
		{
			name:     "port out of range",
			path:     func(t *testing.T) string { return writeFile(t, "iadate.toml", "[server]\nport = 70000\n") },
			wantCode: mdwerror.CodeInvalidConfig,
		},
		{
			name:     "negative period",
			path:     func(t *testing.T) string { return writeFile(t, "iadate.toml", "[live]\nperiod = \"-1s\"\n") },
			wantCode: mdwerror.CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !mdwerror.HasCode(err, tt.wantCode) {
				t.Errorf("Load() error code = %v, want %v", mdwerror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "custom.toml", "[server]\nport = 8400\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Server.Port != 8400 {
		t.Errorf("Server.Port = %v, want 8400", cfg.Server.Port)
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Server.Port != 8300 {
		t.Errorf("Server.Port = %v, want default 8300", cfg.Server.Port)
	}
}
