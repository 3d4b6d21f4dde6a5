package command

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newDeleteCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Remove the entry with that number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return apperror.InvalidInput(fmt.Sprintf("delete needs the number of an entry, got %q", args[0]))
			}
			*parsed = deleteCommand{index: index}
			return nil
		},
	}
}

type deleteCommand struct {
	notExit
	index int
}

func (c deleteCommand) Execute(m *manager.Manager, out ui.Sink) error {
	removed, err := m.Foods.RemoveAt(c.index)
	if err != nil {
		return err
	}
	out.Print("Removed from the food list:\n  " + removed.String())
	return nil
}
