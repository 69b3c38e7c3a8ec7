// Package config loads and validates server configuration.
//
// Sources are layered, later wins: built-in defaults, an optional YAML file
// named by GODOTY_DOCS_CONFIG, then individual environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/MarbleSodas/godoty-docs/internal/logging"
	"github.com/MarbleSodas/godoty-docs/pkg/types"
)

// Environment variable names.
const (
	EnvConfigFile = "GODOTY_DOCS_CONFIG"
	EnvCorpusDir  = "GODOTY_DOCS_CORPUS"
	EnvCachePath  = "GODOTY_DOCS_CACHE"
	EnvLogLevel   = "GODOTY_DOCS_LOG"
	EnvYieldEvery = "GODOTY_DOCS_YIELD_EVERY"
)

// Defaults.
const (
	DefaultCorpusDir  = "./doc"
	DefaultCachePath  = "./.cache/docindex.json.gz"
	DefaultLogLevel   = "info"
	DefaultYieldEvery = 25

	// ClassesSubdir is the required member-files subdirectory of the corpus.
	ClassesSubdir = "classes"
)

// Config holds server configuration.
type Config struct {
	CorpusDir string `yaml:"corpus_dir"`
	CachePath string `yaml:"cache_path"`
	LogLevel  string `yaml:"log_level"`
	// YieldEvery is the number of corpus files parsed between cooperative
	// cancellation checks during warm-up.
	YieldEvery int `yaml:"yield_every"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		CorpusDir:  DefaultCorpusDir,
		CachePath:  DefaultCachePath,
		LogLevel:   DefaultLogLevel,
		YieldEvery: DefaultYieldEvery,
	}
}

// FromEnv builds a Config from defaults, the optional YAML file, and the
// environment. It does not validate paths; call Validate before use.
func FromEnv() (*Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, types.NewInvalidConfig("config file %s: %v", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, types.NewInvalidConfig("config file %s: %v", path, err)
		}
	}

	if v := os.Getenv(EnvCorpusDir); v != "" {
		cfg.CorpusDir = v
	}
	if v := os.Getenv(EnvCachePath); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvYieldEvery); v != "" {
		n, err := cast.ToIntE(v)
		if err != nil || n < 1 {
			return nil, types.NewInvalidConfig("%s must be a positive integer, got %q", EnvYieldEvery, v)
		}
		cfg.YieldEvery = n
	}

	return cfg, nil
}

// Validate checks that configured paths and values are usable. The corpus
// directory and its classes/ subdirectory must both exist as directories.
func (c *Config) Validate() error {
	if err := requireDir(c.CorpusDir, "corpus directory"); err != nil {
		return err
	}
	if err := requireDir(filepath.Join(c.CorpusDir, ClassesSubdir), "corpus classes directory"); err != nil {
		return err
	}
	if c.CachePath == "" {
		return types.NewInvalidConfig("cache path must not be empty")
	}
	if !logging.ValidLevel(c.LogLevel) {
		return types.NewInvalidConfig("unknown log level %q (want silent|error|warn|info|debug)", c.LogLevel)
	}
	if c.YieldEvery < 1 {
		return types.NewInvalidConfig("yield_every must be positive, got %d", c.YieldEvery)
	}
	return nil
}

// ClassesDir returns the directory holding the per-class corpus files.
func (c *Config) ClassesDir() string {
	return filepath.Join(c.CorpusDir, ClassesSubdir)
}

func requireDir(path, what string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return types.NewInvalidConfig("%s does not exist: %s", what, path)
	}
	if err != nil {
		return types.NewInvalidConfig("%s is not accessible: %s: %v", what, path, err)
	}
	if !info.IsDir() {
		return types.NewInvalidConfig("%s is not a directory: %s", what, path)
	}
	return nil
}

// String renders the effective configuration for startup logging.
func (c *Config) String() string {
	return fmt.Sprintf("corpus=%s cache=%s log=%s yield_every=%d",
		c.CorpusDir, c.CachePath, c.LogLevel, c.YieldEvery)
}
