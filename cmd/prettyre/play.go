package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"prettyre/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [flags] recipe.toml",
	Short: "Try a pattern interactively",
	Long:  `Play opens an interactive prompt that highlights matches of the recipe's pattern in the text you type`,
	Args:  cobra.ExactArgs(1),
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	name, pattern, err := loadAndBuild(args[0])
	if err != nil {
		return err
	}
	re, err := pattern.Compile()
	if err != nil {
		return err
	}

	model := ui.NewPlayModel(name, pattern.String(), re)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("playground failed: %w", err)
	}
	return nil
}
