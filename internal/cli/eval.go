package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/pkg/errors"
	"github.com/polyroots/polyroots/pkg/poly"
)

const evalFlags = `
Flags:
      --at int          the value of x (required)
  -o, --format string   output format: text, json or table (default from config)
  -h, --help            help for %s

Global Flags:
      --config string   config file
  -v, --verbose         enable debug logging
`

func (c *CLI) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval --at X COEFF...",
		Short: "Evaluate a polynomial at an integer",
		Long: `Evaluate a polynomial with integer coefficients at x, exactly.

The value is printed in full even when it exceeds 64 bits.

  $ polyroots eval --at 3 1 -5 6
  0
`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEval(cmd, args, true)
		},
	}
}

func (c *CLI) isRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "isroot --at X COEFF...",
		Short: "Check whether an integer is a root of a polynomial",
		Long: `Report whether x is a root of a polynomial with integer coefficients.

  $ polyroots isroot --at -2 1 -1 -6
  true
`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEval(cmd, args, false)
		},
	}
}

func (c *CLI) runEval(cmd *cobra.Command, args []string, showValue bool) error {
	a, err := parseArgs(args, "at", "format")
	if err != nil {
		return err
	}
	if a.bool("help") || len(a.positional) == 0 {
		fmt.Fprint(cmd.OutOrStdout(), cmd.Long+fmt.Sprintf(evalFlags, cmd.Name()))
		return nil
	}
	if !a.has("at") {
		return errors.New(errors.ErrCodeInvalidInput, "--at is required")
	}
	x, err := strconv.ParseInt(a.value("at"), 10, 64)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "--at %q is not an integer", a.value("at"))
	}

	format, err := c.outputFormat(a.value("format"))
	if err != nil {
		return err
	}
	p, err := poly.Parse(a.positional)
	if err != nil {
		return err
	}

	v := p.Value(x)
	c.Logger.Debug("evaluated", "polynomial", p.String(), "x", x, "bits", v.BitLen())
	return writeEval(cmd.OutOrStdout(), format, evalOutput{
		Polynomial: p.String(),
		X:          x,
		Value:      v.String(),
		Root:       v.Sign() == 0,
	}, showValue)
}
