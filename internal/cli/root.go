package cli

import (
	"github.com/andy/dualtimer/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:   "dualtimer",
	Short: "A countdown and count-up timer for the terminal",
	Long: `dualtimer is a 25 minute countdown and a 24 hour count-up in one timer,
with a light/dark theme and accent color that are remembered between runs.

By default, running dualtimer without arguments launches the interactive TUI.
Use subcommands for headless timers and theme settings.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if appInstance != nil || !needsApp(cmd) {
			return nil
		}
		a, err := app.New(cmd.Context(), app.Options{ConfigPath: configPath, Debug: debug})
		if err != nil {
			return err
		}
		appInstance = a
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command and shuts the app down afterwards
func Execute() error {
	defer func() {
		if appInstance != nil {
			appInstance.Close()
		}
	}()
	return rootCmd.Execute()
}

// needsApp reports whether cmd touches the timer or the preference store.
// Help and shell completion must work without a config or keyring.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "completion":
			return false
		}
	}
	return true
}

// SetApp sets the app instance for commands to use (skips config loading)
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/dualtimer/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")

	rootCmd.AddCommand(countdownCmd)
	rootCmd.AddCommand(countupCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(tuiCmd)
}
