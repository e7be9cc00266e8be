package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
}

func TestLoadFromReader_Valid(t *testing.T) {
	const yml = `
server:
  port: 9090
  read_timeout: 5s
  max_batch_size: 10
log:
  file: /tmp/textnorm.log
  json: false
warm_up:
  enabled: false
stream:
  workers: 3
`
	cfg, err := LoadFromReader(strings.NewReader(yml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %s, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.MaxBatchSize != 10 {
		t.Errorf("Server.MaxBatchSize = %d, want 10", cfg.Server.MaxBatchSize)
	}
	if cfg.Log.File != "/tmp/textnorm.log" || cfg.Log.JSON {
		t.Errorf("Log = %+v, want file set and json off", cfg.Log)
	}
	if cfg.WarmUp.Enabled {
		t.Error("WarmUp.Enabled = true, want false")
	}
	if cfg.Stream.Workers != 3 {
		t.Errorf("Stream.Workers = %d, want 3", cfg.Stream.Workers)
	}

	// Unset values keep their defaults.
	def := Default()
	if cfg.Server.WriteTimeout != def.Server.WriteTimeout {
		t.Errorf("Server.WriteTimeout = %s, want default %s", cfg.Server.WriteTimeout, def.Server.WriteTimeout)
	}
	if cfg.Stream.BatchSize != def.Stream.BatchSize {
		t.Errorf("Stream.BatchSize = %d, want default %d", cfg.Stream.BatchSize, def.Stream.BatchSize)
	}
}

func TestLoadFromReader_EmptyIsDefault(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("LoadFromReader(\"\") = %+v, want %+v", *cfg, *Default())
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("server:\n  prot: 80\n"))
	if err == nil {
		t.Fatal("LoadFromReader() error = nil, want unknown field error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"Port too low", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"Port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"Negative read timeout", func(c *Config) { c.Server.ReadTimeout = -time.Second }, "server.read_timeout"},
		{"Zero request size", func(c *Config) { c.Server.MaxRequestSize = 0 }, "server.max_request_size"},
		{"Zero batch size", func(c *Config) { c.Server.MaxBatchSize = 0 }, "server.max_batch_size"},
		{"Negative warm-up iterations", func(c *Config) { c.WarmUp.Iterations = -1 }, "warm_up.iterations"},
		{"Negative workers", func(c *Config) { c.Stream.Workers = -2 }, "stream.workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.field)
			}
		})
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = -1
	cfg.Stream.BatchSize = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	for _, field := range []string{"server.port", "stream.batch_size"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("Validate() error = %q, want mention of %q", err, field)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}
}
