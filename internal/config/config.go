// Package config holds the file configuration shared by the server and the
// command-line tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	WarmUp WarmUpConfig `yaml:"warm_up"`
	Stream StreamConfig `yaml:"stream"`
}

// ServerConfig configures the HTTP host.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	// Concurrency limits concurrent requests; 0 means the fasthttp default.
	Concurrency int `yaml:"concurrency"`
	// MaxBatchSize limits the number of texts in one batch request.
	MaxBatchSize int `yaml:"max_batch_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	// File is the log file path; empty means stdout.
	File string `yaml:"file"`
	JSON bool   `yaml:"json"`
}

// WarmUpConfig configures the startup warm-up run.
type WarmUpConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Concurrency int           `yaml:"concurrency"`
	Iterations  int           `yaml:"iterations"`
	Duration    time.Duration `yaml:"duration"`
}

// StreamConfig configures line-oriented normalization.
type StreamConfig struct {
	Workers     int `yaml:"workers"`
	BatchSize   int `yaml:"batch_size"`
	MaxLineSize int `yaml:"max_line_size"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxRequestSize: 10 * 1024 * 1024, // 10MB
			MaxBatchSize:   1000,
		},
		Log: LogConfig{
			JSON: true,
		},
		WarmUp: WarmUpConfig{
			Enabled:     true,
			Concurrency: 4,
			Iterations:  100,
			Duration:    2 * time.Second,
		},
		Stream: StreamConfig{
			BatchSize:   64,
			MaxLineSize: 1024 * 1024,
		},
	}
}

// Load reads the YAML file at path on top of Default and validates it.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes YAML from r on top of Default and validates the
// result. Unknown fields are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// All failures are reported together, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d is out of range [1, 65535]", c.Server.Port))
	}
	if c.Server.ReadTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.read_timeout %s is negative", c.Server.ReadTimeout))
	}
	if c.Server.WriteTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.write_timeout %s is negative", c.Server.WriteTimeout))
	}
	if c.Server.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_request_size must be positive, got %d", c.Server.MaxRequestSize))
	}
	if c.Server.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("server.concurrency %d is negative", c.Server.Concurrency))
	}
	if c.Server.MaxBatchSize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_batch_size must be positive, got %d", c.Server.MaxBatchSize))
	}

	if c.WarmUp.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("warm_up.concurrency %d is negative", c.WarmUp.Concurrency))
	}
	if c.WarmUp.Iterations < 0 {
		errs = append(errs, fmt.Errorf("warm_up.iterations %d is negative", c.WarmUp.Iterations))
	}
	if c.WarmUp.Duration < 0 {
		errs = append(errs, fmt.Errorf("warm_up.duration %s is negative", c.WarmUp.Duration))
	}

	if c.Stream.Workers < 0 {
		errs = append(errs, fmt.Errorf("stream.workers %d is negative", c.Stream.Workers))
	}
	if c.Stream.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("stream.batch_size %d is negative", c.Stream.BatchSize))
	}
	if c.Stream.MaxLineSize < 0 {
		errs = append(errs, fmt.Errorf("stream.max_line_size %d is negative", c.Stream.MaxLineSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
