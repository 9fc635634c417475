package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/pkg/errors"
	"github.com/polyroots/polyroots/pkg/stats"
)

const averagesFlags = `
Flags:
      --file string     read whitespace-separated integers from a file
      --mean            print the mean
      --median          print the median
      --lower           for an even count, report the lower middle value as
                        the median instead of the mean of the two middles
      --mode            print the mode(s)
  -o, --format string   output format: text, json or table (default from config)
  -h, --help            help for averages

Global Flags:
      --config string   config file
  -v, --verbose         enable debug logging
`

func (c *CLI) averagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "averages [N...] [--file F] [--mean] [--median] [--mode] [--lower]",
		Short: "Take averages of a set of integers",
		Long: `Take the mean, median and mode of a set of integers.

Integers come either from the command line (at most averages.max_inline of
them, 8 by default) or from a file given with --file, never both. Without
--mean, --median or --mode all three are printed.

  $ polyroots averages 1 2 2 7
  Mean: 3
  Median: 2
  Mode: 2
`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseArgs(args, "file", "mean", "median", "mode", "lower", "format")
			if err != nil {
				return err
			}
			if a.bool("help") {
				fmt.Fprint(cmd.OutOrStdout(), cmd.Long+averagesFlags)
				return nil
			}

			format, err := c.outputFormat(a.value("format"))
			if err != nil {
				return err
			}
			vals, err := c.readAverageInputs(a)
			if err != nil {
				return err
			}
			summary, err := stats.Summarize(vals)
			if err != nil {
				return err
			}
			if a.bool("lower") {
				lower, err := stats.LowerMedian(vals)
				if err != nil {
					return err
				}
				summary.Median = float64(lower)
			}

			mean, median, mode := a.bool("mean"), a.bool("median"), a.bool("mode")
			if !mean && !median && !mode {
				mean, median, mode = true, true, true
			}
			return writeAverages(cmd.OutOrStdout(), format, newAveragesOutput(summary, mean, median, mode))
		},
	}
}

// readAverageInputs collects the integers from exactly one source.
func (c *CLI) readAverageInputs(a *argSet) ([]int64, error) {
	file := a.value("file")
	switch {
	case file != "" && len(a.positional) > 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "give either integers or --file, not both")

	case file != "":
		if err := errors.ValidateFilePath(file); err != nil {
			return nil, err
		}
		c.Logger.Debug("reading integers", "file", file)
		f, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", file)
		}
		defer f.Close()
		vals, err := stats.ReadInts(f)
		if err != nil {
			return nil, err
		}
		if err := errors.ValidateCount("integers", len(vals), 0); err != nil {
			return nil, err
		}
		return vals, nil

	case len(a.positional) > 0:
		c.Logger.Debug("reading integers from the command line")
		if err := errors.ValidateCount("integers", len(a.positional), c.Config.Averages.MaxInline); err != nil {
			return nil, err
		}
		return stats.ParseInts(a.positional)

	default:
		return nil, errors.New(errors.ErrCodeNoData, "no file or integers given")
	}
}
