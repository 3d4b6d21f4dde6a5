package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newExitCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:     "exit",
		Aliases: []string{"bye"},
		Short:   "Save and quit",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = exitCommand{}
			return nil
		},
	}
}

type exitCommand struct{}

func (exitCommand) IsExit() bool { return true }

func (exitCommand) Execute(m *manager.Manager, _ ui.Sink) error {
	if err := m.Save(); err != nil {
		return fmt.Errorf("saving data: %w", err)
	}
	return nil
}
