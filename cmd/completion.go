package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for oclctl.

To load completions:

Bash:
  $ source <(oclctl completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ oclctl completion bash > /etc/bash_completion.d/oclctl
  # macOS:
  $ oclctl completion bash > $(brew --prefix)/etc/bash_completion.d/oclctl

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ oclctl completion zsh > "${fpath[1]}/_oclctl"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ oclctl completion fish | source
  # To load completions for each session, execute once:
  $ oclctl completion fish > ~/.config/fish/completions/oclctl.fish

PowerShell:
  PS> oclctl completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> oclctl completion powershell > oclctl.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(w, true)
		case "zsh":
			return rootCmd.GenZshCompletion(w)
		case "fish":
			return rootCmd.GenFishCompletion(w, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(w)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
