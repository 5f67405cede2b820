package cmd

import (
	"fmt"

	"github.com/PasqualeAiello/io-app/app"
	"github.com/PasqualeAiello/io-app/bonusapi"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen UI (default)",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := bonusapi.NewClient(cfg.API)
	m := app.New(cfg, bonusapi.NewActivationTask(client, realClock, cfg.Polling))
	defer m.Shutdown()

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Attach(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
