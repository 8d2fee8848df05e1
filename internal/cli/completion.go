package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/screenruler/pkg/render/sink"
	"github.com/matzehuels/screenruler/pkg/ruler"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for screenruler. Besides command names it
completes --unit with the ruler units and --format with the output formats.

  $ source <(screenruler completion bash)
  $ screenruler completion zsh > "${fpath[1]}/_screenruler"
  $ screenruler completion fish | source
  PS> screenruler completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			root := cmd.Root()
			var err error
			switch args[0] {
			case "bash":
				err = root.GenBashCompletionV2(w, true)
			case "zsh":
				err = root.GenZshCompletion(w)
			case "fish":
				err = root.GenFishCompletion(w, true)
			case "powershell":
				err = root.GenPowerShellCompletionWithDesc(w)
			}
			if err != nil {
				return fmt.Errorf("generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}

	return cmd
}

// completeUnits completes --unit with the ruler units.
func completeUnits(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	units := make([]string, len(ruler.Units))
	for i, u := range ruler.Units {
		units[i] = string(u)
	}
	return units, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the last entry of a comma-separated --format
// value, skipping formats already listed.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	seen := map[string]bool{}
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
		for _, f := range strings.Split(toComplete[:i], ",") {
			seen[strings.TrimSpace(f)] = true
		}
	}
	var out []string
	for _, f := range sink.Formats {
		if !seen[f] {
			out = append(out, prefix+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
