package cli

import (
	"fmt"
	"io"

	"github.com/andy/dualtimer/internal/domain"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
	Long:  `Show or change the light/dark mode and accent color used by the TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTheme(cmd.OutOrStdout())
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printTheme(cmd.OutOrStdout())
		return nil
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.ThemeService.ToggleMode(cmd.Context()); err != nil {
			return fmt.Errorf("failed to toggle theme: %w", err)
		}
		printTheme(cmd.OutOrStdout())
		return nil
	},
}

var themeModeCmd = &cobra.Command{
	Use:       "mode <light|dark>",
	Short:     "Set the display mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ThemeModeLight), string(domain.ThemeModeDark)},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseThemeMode(args[0])
		if err != nil {
			return err
		}
		if err := appInstance.ThemeService.SetMode(cmd.Context(), mode); err != nil {
			return fmt.Errorf("failed to set mode: %w", err)
		}
		printTheme(cmd.OutOrStdout())
		return nil
	},
}

var themeColorCmd = &cobra.Command{
	Use:       "color <name>",
	Short:     "Set the accent color",
	Args:      cobra.ExactArgs(1),
	ValidArgs: colorNames(),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := domain.ParseColorKey(args[0])
		if err != nil {
			return fmt.Errorf("%w (choose from %v)", err, colorNames())
		}
		if err := appInstance.ThemeService.SetColor(cmd.Context(), color); err != nil {
			return fmt.Errorf("failed to set color: %w", err)
		}
		printTheme(cmd.OutOrStdout())
		return nil
	},
}

var themePaletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List every accent color and its tokens",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printPalette(cmd.OutOrStdout(), appInstance.ThemeService.Current())
		return nil
	},
}

var themeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Go back to the default theme (light, indigo)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.ThemeService.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset theme: %w", err)
		}
		printTheme(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeModeCmd)
	themeCmd.AddCommand(themeColorCmd)
	themeCmd.AddCommand(themePaletteCmd)
	themeCmd.AddCommand(themeResetCmd)
}

func colorNames() []string {
	keys := domain.ColorKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}

func printTheme(w io.Writer) {
	p := appInstance.ThemeService.Palette()
	fmt.Fprintf(w, "Mode:  %s\n", p.Mode)
	fmt.Fprintf(w, "Color: %s (%s)\n", p.Name, p.Key)
	fmt.Fprintf(w, "  primary %s, hover %s, text %s, secondary %s\n",
		p.Tokens.Primary, p.Tokens.PrimaryHover, p.Tokens.PrimaryText, p.Tokens.Secondary)
}

func printPalette(w io.Writer, current domain.ThemePreference) {
	fmt.Fprintf(w, "  %-8s %-8s %-6s %-12s %-12s %-12s %-14s\n",
		"Key", "Name", "Mode", "Primary", "Hover", "Text", "Secondary")
	fmt.Fprintln(w, "------------------------------------------------------------------------------")
	for _, key := range domain.ColorKeys() {
		entry, _ := domain.LookupPalette(key)
		for _, mode := range []domain.ThemeMode{domain.ThemeModeLight, domain.ThemeModeDark} {
			marker := " "
			if key == current.Color && mode == current.Mode {
				marker = "*"
			}
			t := entry.Tokens(mode)
			fmt.Fprintf(w, "%s %-8s %-8s %-6s %-12s %-12s %-12s %-14s\n",
				marker, key, entry.Name, mode, t.Primary, t.PrimaryHover, t.PrimaryText, t.Secondary)
		}
	}
}
