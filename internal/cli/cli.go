// Package cli implements the polyroots command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/internal/config"
	"github.com/polyroots/polyroots/pkg/buildinfo"
	"github.com/polyroots/polyroots/pkg/cache"
	"github.com/polyroots/polyroots/pkg/errors"
	"github.com/polyroots/polyroots/pkg/observability"
	"github.com/polyroots/polyroots/pkg/solver"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "polyroots"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// apiKeyPrefix scopes cache entries written by the HTTP server.
const apiKeyPrefix = "api:"

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	verbose    bool
	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Find integer roots of integer polynomials",
		Long: `polyroots finds every integer root of a polynomial with integer coefficients,
evaluates polynomials exactly, and serves both operations over HTTP.

Coefficients are given highest power first; negative values need no "--".`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Commands that take negative numbers parse their own flags, so
			// the global ones have to be picked out of the raw arguments.
			if cmd.DisableFlagParsing {
				g := scanGlobalFlags(args)
				c.verbose = c.verbose || g.verbose
				if g.config != "" {
					c.configPath = g.config
				}
			}
			return c.configure()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/polyroots/config.toml)")

	root.AddCommand(c.rootsCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.isRootCommand())
	root.AddCommand(c.averagesCommand())
	root.AddCommand(c.stripCRCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// configure applies the log level and loads the config file.
func (c *CLI) configure() error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetSolverHooks(hooks)
		observability.SetCacheHooks(hooks)
		observability.SetAPIHooks(hooks)
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("config loaded", "cache", cfg.Cache.Backend, "format", cfg.Output.Format)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a solver runner for CLI use. The returned func releases
// the cache and must be called when the runner is no longer needed.
func (c *CLI) newRunner(ctx context.Context, noCache bool, keyer cache.Keyer) (*solver.Runner, func(), error) {
	ch, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := ch.Close(); err != nil {
			c.Logger.Debug("close cache", "err", err)
		}
	}
	return solver.NewRunner(ch, keyer, c.Logger), closeFn, nil
}

// newCache opens the configured backend. An unreachable redis server or an
// unknown cache location degrades to no caching rather than failing.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}

	switch c.Config.Cache.Backend {
	case config.BackendNone:
		return cache.NewNullCache(), nil

	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.Config.Redis.Addr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil

	default:
		dir, err := c.Config.CacheDir()
		if err != nil {
			c.Logger.Debug("no cache directory", "err", err)
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open cache %s", dir)
		}
		return fc, nil
	}
}

// solveOptions builds runner options from the config and the given refresh flag.
func (c *CLI) solveOptions(refresh bool) solver.Options {
	return solver.Options{Refresh: refresh, TTL: c.Config.Cache.TTL.Duration}
}

// outputFormat resolves the --format flag against the configured default.
func (c *CLI) outputFormat(flag string) (string, error) {
	format := flag
	if format == "" {
		format = c.Config.Output.Format
	}
	if err := errors.ValidateFormat(format, config.FormatText, config.FormatJSON, config.FormatTable); err != nil {
		return "", err
	}
	return format, nil
}

func describeBackend(cfg *config.Config) string {
	switch cfg.Cache.Backend {
	case config.BackendRedis:
		return fmt.Sprintf("redis://%s/%d", cfg.Redis.Addr, cfg.Redis.DB)
	case config.BackendNone:
		return "disabled"
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return "unavailable"
	}
	return dir
}
