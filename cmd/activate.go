package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PasqualeAiello/io-app/activation"
	"github.com/PasqualeAiello/io-app/bonusapi"
	"github.com/PasqualeAiello/io-app/headless"
	"github.com/PasqualeAiello/io-app/i18n"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var noSpinner bool

var activateCmd = &cobra.Command{
	Use:   "activate",
	Short: "Request the bonus activation and print its outcome",
	Long: "Request the bonus activation in plain terminal output. " +
		"Press Enter on the outcome to finish, Ctrl+C to cancel and go back.",
	RunE: runActivate,
}

func init() {
	activateCmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "disable the progress spinner")
}

func runActivate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var opts []headless.Option
	if noSpinner || !term.IsTerminal(int(os.Stdout.Fd())) {
		opts = append(opts, headless.WithoutSpinner())
	}
	console := headless.New(out, i18n.New(cfg.Locale), opts...)

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	client := bonusapi.NewClient(cfg.API)
	task := bonusapi.NewActivationTask(client, realClock, cfg.Polling)

	outcome, err := headless.Run(cmd.Context(), console, task, cmd.InOrStdin(), interrupts)
	if err != nil {
		return fmt.Errorf("activation: %w", err)
	}
	if outcome == activation.OutcomeCancelled {
		fmt.Fprintln(out, "activation cancelled")
	}
	return nil
}
