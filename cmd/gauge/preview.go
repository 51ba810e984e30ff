package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/gaugeview/internal/measure"
	"github.com/garrettladley/gaugeview/internal/tui"
)

func previewCmd(flags *gaugeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview the gauge in the terminal",
		Long:  "Opens a full-screen preview that lays the gauge out again on every resize.",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			model := tui.New(tui.Deps{
				Settings: e.settings,
				Viewport: e.viewport,
				Measurer: measure.Basic(),
			})

			p := tea.NewProgram(&model)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}
			return nil
		},
	}
}
