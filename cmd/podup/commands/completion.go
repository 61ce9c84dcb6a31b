package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Completion returns the completion command for shell autocompletion.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Emit a completion script for the given shell on stdout.

Try it out in the current shell:

  bash:       source <(podup completion bash)
  zsh:        source <(podup completion zsh)
  fish:       podup completion fish | source
  powershell: podup completion powershell | Out-String | Invoke-Expression

To make it permanent, write the script where your shell picks it up:

  bash (Linux):  podup completion bash > /etc/bash_completion.d/podup
  bash (macOS):  podup completion bash > $(brew --prefix)/etc/bash_completion.d/podup
  zsh:           podup completion zsh > "${fpath[1]}/_podup"
  fish:          podup completion fish > ~/.config/fish/completions/podup.fish
  powershell:    podup completion powershell > podup.ps1  (dot-source from your profile)

Zsh needs compinit enabled; if it is not, run once:

  echo "autoload -U compinit; compinit" >> ~/.zshrc
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
