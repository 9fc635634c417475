package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/internal/config"
	"github.com/polyroots/polyroots/pkg/cache"
	"github.com/polyroots/polyroots/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var (
				count int
				err   error
			)
			switch c.Config.Cache.Backend {
			case config.BackendNone:
				printInfo(out, "Caching is disabled")
				return nil

			case config.BackendRedis:
				rc, rerr := cache.NewRedisCache(ctx, cache.RedisOptions{
					Addr:     c.Config.Redis.Addr,
					Password: c.Config.Redis.Password,
					DB:       c.Config.Redis.DB,
				})
				if rerr != nil {
					return errors.Wrap(errors.ErrCodeInternal, rerr, "connect to redis")
				}
				defer rc.Close()
				count, err = rc.Clear(ctx, "")

			default:
				dir, derr := c.Config.CacheDir()
				if derr != nil {
					return fmt.Errorf("get cache dir: %w", derr)
				}
				fc, ferr := cache.NewFileCache(dir)
				if ferr != nil {
					return fmt.Errorf("open cache: %w", ferr)
				}
				count, err = fc.Clear(ctx)
			}
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "clear cache")
			}

			switch count {
			case 0:
				printInfo(out, "Cache is empty")
			case 1:
				printSuccess(out, "Cleared 1 cached entry")
			default:
				printSuccess(out, "Cleared %d cached entries", count)
			}
			printDetail(out, "Location: %s", describeBackend(c.Config))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where results are cached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), describeBackend(c.Config))
			return nil
		},
	}
}
