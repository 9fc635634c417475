package cli

import (
	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/pkg/crlf"
)

func (c *CLI) stripCRCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stripcr FILE...",
		Short: "Remove carriage returns from files in place",
		Long: `Remove every carriage return from the given files, converting DOS (CRLF)
line endings to Unix (LF). A shell reports "bad interpreter" for scripts
saved with CRLF endings; this fixes them. File permissions are preserved.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				n, err := crlf.StripFile(path)
				if err != nil {
					return err
				}
				if n == 0 {
					printInfo(out, "%s: no carriage returns", path)
					continue
				}
				printSuccess(out, "%s: removed %s", path, plural(n, "carriage return"))
			}
			return nil
		},
	}
}
