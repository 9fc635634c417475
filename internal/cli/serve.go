package cli

import (
	"fmt"
	"net"

	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/internal/config"
	"github.com/polyroots/polyroots/internal/server"
	"github.com/polyroots/polyroots/pkg/buildinfo"
	"github.com/polyroots/polyroots/pkg/cache"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the root finder over HTTP",
		Long: `Serve the root finder and evaluator as a JSON API.

  GET  /healthz
  POST /v1/roots      {"coefficients":[1,-5,6]}
  GET  /v1/roots?c=1,-5,6
  POST /v1/evaluate   {"coefficients":[1,-5,6],"x":2}

Requests are limited by server.max_degree (default 1000) and
server.timeout (default 10s) in the config file; 0 disables either.
The server stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			ctx := cmd.Context()

			runner, closeCache, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, apiKeyPrefix))
			if err != nil {
				return err
			}
			defer closeCache()

			srv := server.New(runner, c.Logger, server.Options{
				Solve:     c.solveOptions(false),
				MaxDegree: c.Config.Server.MaxDegree,
				Timeout:   c.Config.Server.Timeout.Duration,
			})
			out := cmd.ErrOrStderr()
			return srv.ListenAndServe(ctx, addr, func(a net.Addr) {
				printSuccess(out, "Serving on http://%s", a)
				printKeyValue(out, "version", buildinfo.String())
				printKeyValue(out, "limits", fmt.Sprintf("degree %d, timeout %s",
					c.Config.Server.MaxDegree, c.Config.Server.Timeout.Duration))
				if noCache || c.Config.Cache.Backend == config.BackendNone {
					printWarning(out, "Result cache disabled")
					return
				}
				printKeyValue(out, "cache", describeBackend(c.Config))
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")
	return cmd
}
