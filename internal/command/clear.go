package command

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newClearCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = clearCommand{}
			return nil
		},
	}
}

type clearCommand struct{ notExit }

func (clearCommand) Execute(m *manager.Manager, out ui.Sink) error {
	m.Foods.Clear()
	out.Print("The food list has been cleared.")
	return nil
}
