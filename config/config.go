package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"greg-hacke/go-imagedpi/meta"
)

// Config represents the application configuration
type Config struct {
	Resolver ResolverConfig `yaml:"resolver"`
	Watch    WatchConfig    `yaml:"watch"`
	Output   OutputConfig   `yaml:"output"`
}

type ResolverConfig struct {
	DefaultDPI int  `yaml:"default_dpi"`
	ScanLimit  int  `yaml:"scan_limit"`
	Verbose    bool `yaml:"verbose"`
}

type WatchConfig struct {
	Dirs       []string      `yaml:"dirs"`
	Extensions []string      `yaml:"extensions"`
	Debounce   time.Duration `yaml:"debounce"`
}

type OutputConfig struct {
	Format string `yaml:"format"` // text or json
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Resolver: ResolverConfig{
			DefaultDPI: meta.DefaultDPI,
			ScanLimit:  meta.DefaultScanLimit,
		},
		Watch: WatchConfig{
			Extensions: []string{".jpg", ".jpeg", ".png"},
			Debounce:   500 * time.Millisecond,
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads and parses the configuration file. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.Resolver.DefaultDPI <= 0 {
		return fmt.Errorf("resolver.default_dpi must be positive")
	}
	if c.Resolver.ScanLimit <= 0 {
		return fmt.Errorf("resolver.scan_limit must be positive")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be text or json, got %q", c.Output.Format)
	}
	return nil
}

// NewResolver builds a resolver from the resolver section
func (c *Config) NewResolver(logger *log.Logger) *meta.Resolver {
	return &meta.Resolver{
		DefaultDPI: c.Resolver.DefaultDPI,
		ScanLimit:  c.Resolver.ScanLimit,
		Logger:     logger,
		Verbose:    c.Resolver.Verbose,
	}
}

// WatchesExtension reports whether files named name should be watched
func (c *Config) WatchesExtension(name string) bool {
	ext := strings.ToLower(name)
	if i := strings.LastIndexByte(ext, '.'); i >= 0 {
		ext = ext[i:]
	} else {
		return false
	}
	for _, e := range c.Watch.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
