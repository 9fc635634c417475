package cli

import (
	"github.com/spf13/cobra"

	"github.com/polyroots/polyroots/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for polyroots commands and flags.

To load completions:

Bash:
  $ source <(polyroots completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ polyroots completion bash > /etc/bash_completion.d/polyroots
  # macOS:
  $ polyroots completion bash > $(brew --prefix)/etc/bash_completion.d/polyroots

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ polyroots completion zsh > "${fpath[1]}/_polyroots"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ polyroots completion fish | source

  # To load completions for each session, execute once:
  $ polyroots completion fish > ~/.config/fish/completions/polyroots.fish

PowerShell:
  PS> polyroots completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> polyroots completion powershell > polyroots.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.New(errors.ErrCodeUnsupported,
				"unsupported shell %q (use bash, zsh, fish or powershell)", args[0])
		},
	}

	return cmd
}
