// Package config loads polyroots settings from a TOML file.
//
// Every field has a default, so a missing file is not an error unless its path
// was given explicitly. Unknown keys are rejected to catch typos early.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/polyroots/polyroots/pkg/errors"
)

const appName = "polyroots"

// EnvPath names the environment variable that overrides the config location.
const EnvPath = "POLYROOTS_CONFIG"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatTable = "table"
)

// Config is the full settings tree.
type Config struct {
	Cache    Cache    `toml:"cache"`
	Redis    Redis    `toml:"redis"`
	Output   Output   `toml:"output"`
	Server   Server   `toml:"server"`
	Averages Averages `toml:"averages"`
}

// Cache selects where root search results are kept and for how long.
type Cache struct {
	Backend string   `toml:"backend"`
	TTL     Duration `toml:"ttl"`
	// Dir overrides the file cache location; empty means the XDG cache dir.
	Dir string `toml:"dir"`
}

// Redis holds connection settings for the redis cache backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Output sets the default format for command output.
type Output struct {
	Format string `toml:"format"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
	// MaxDegree rejects larger polynomials with INVALID_INPUT; 0 disables the check.
	MaxDegree int `toml:"max_degree"`
	// Timeout bounds each request; 0 disables it.
	Timeout Duration `toml:"timeout"`
}

// Averages configures the averages command.
type Averages struct {
	// MaxInline caps how many integers may be passed on the command line.
	MaxInline int `toml:"max_inline"`
}

// Duration is a time.Duration written as a Go duration string ("168h").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string such as "90s" or "168h".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats d the way time.Duration.String does.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Cache:    Cache{Backend: BackendFile, TTL: Duration{7 * 24 * time.Hour}},
		Redis:    Redis{Addr: "localhost:6379"},
		Output:   Output{Format: FormatText},
		Server:   Server{Addr: ":8080", MaxDegree: 1000, Timeout: Duration{10 * time.Second}},
		Averages: Averages{MaxInline: 8},
	}
}

// Load reads settings from path layered over Default.
//
// An empty path falls back to $POLYROOTS_CONFIG and then to DefaultPath; a
// file that does not exist at the default location yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if env := os.Getenv(EnvPath); env != "" {
			path, explicit = env, true
		} else {
			p, err := DefaultPath()
			if err != nil {
				return Default(), nil
			}
			path = p
		}
	}

	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config file %s does not exist", path)
		}
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache.backend must be one of %s, %s, %s (got %q)", BackendFile, BackendRedis, BackendNone, c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Cache.Backend == BackendRedis && c.Redis.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis.addr is required for the redis cache backend")
	}
	if err := errors.ValidateFormat(c.Output.Format, FormatText, FormatJSON, FormatTable); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "output.format")
	}
	if c.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.MaxDegree < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.max_degree must not be negative")
	}
	if c.Server.Timeout.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server.timeout must not be negative")
	}
	if c.Averages.MaxInline < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "averages.max_inline must be at least 1")
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/polyroots/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the file cache directory: Cache.Dir when set, otherwise
// $XDG_CACHE_HOME/polyroots or ~/.cache/polyroots.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
