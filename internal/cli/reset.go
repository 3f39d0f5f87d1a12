package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved preferences",
	Long: `Delete everything dualtimer has saved and go back to the default theme.

Examples:
  dualtimer reset          # Ask before deleting
  dualtimer reset --yes    # Delete without asking`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if !resetYes && !confirmPrompt(cmd.InOrStdin(), out, "This will delete ALL saved preferences. Continue?") {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}

		if err := appInstance.PreferenceRepo.Clear(cmd.Context()); err != nil {
			return err
		}
		// nothing is stored now, so this applies the default theme
		appInstance.ThemeService.Load(cmd.Context())

		fmt.Fprintln(out, "✓ All saved preferences have been deleted.")
		return nil
	},
}

func confirmPrompt(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N] ", message)
	reader := bufio.NewReader(in)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
}
