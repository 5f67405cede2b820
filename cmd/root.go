// Package cmd implements the io-app CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/PasqualeAiello/io-app/app"
	"github.com/PasqualeAiello/io-app/config"
	applog "github.com/PasqualeAiello/io-app/utils/log"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

var (
	locale   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "io-app",
	Short: "Activate the holiday bonus from the terminal",
	Long:  "io-app requests the holiday bonus activation and follows it to its outcome, in a full-screen UI or in plain terminal output.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		applog.Init("io-app")
		if logLevel != "" {
			applog.SetLevel(applog.ParseLevel(logLevel))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		applog.Sync()
	},
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "override the UI locale (it, en)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(activateCmd)
}

// SetVersion sets the version shown by --version and the status panel.
func SetVersion(version string) {
	app.Version = version
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if locale != "" {
		cfg.Locale = locale
	}
	return cfg, nil
}

var realClock = clockwork.NewRealClock()
