package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/pkg/poly"
)

const rootsUsage = `Usage:
  polyroots roots COEFF1 COEFF2 ...

Find integer roots of a polynomial with integer coefficients.

Example:

Find the roots of x^4 - 3x^3 - 75x^2 + 475x - 750.

  $ polyroots roots 1 -3 -75 475 -750
  -10
  3
  5
`

const rootsFlags = `
Flags:
  -o, --format string   output format: text, json or table (default from config)
      --no-cache        do not read or write the result cache
      --refresh         recompute and overwrite any cached result
  -h, --help            help for roots

Global Flags:
      --config string   config file
  -v, --verbose         enable debug logging
`

func (c *CLI) rootsCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "roots COEFF...",
		Short:              "Find the integer roots of a polynomial",
		Long:               rootsUsage,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArgs(args, "format", "no-cache", "refresh")
			if err != nil {
				return err
			}
			if a.bool("help") {
				fmt.Fprint(cmd.OutOrStdout(), rootsUsage+rootsFlags)
				return nil
			}
			if len(a.positional) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), rootsUsage)
				return nil
			}

			format, err := c.outputFormat(a.value("format"))
			if err != nil {
				return err
			}
			p, err := poly.Parse(a.positional)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			runner, closeCache, err := c.newRunner(ctx, a.bool("no-cache"), nil)
			if err != nil {
				return err
			}
			defer closeCache()

			prog := newProgress(c.Logger)
			res, cached, err := runner.Roots(ctx, p, c.solveOptions(a.bool("refresh")))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("found %s of %s", plural(len(res.Roots), "root"), res.Polynomial))

			return writeRoots(cmd.OutOrStdout(), format, res, cached)
		},
	}
}
