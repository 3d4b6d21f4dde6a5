package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newSaveCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Write your data to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = saveCommand{}
			return nil
		},
	}
}

type saveCommand struct{ notExit }

func (saveCommand) Execute(m *manager.Manager, out ui.Sink) error {
	if err := m.Save(); err != nil {
		return fmt.Errorf("saving data: %w", err)
	}
	out.Print("Your data has been saved.")
	return nil
}
