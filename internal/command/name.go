package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newNameCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "name NAME...",
		Short: "Set your name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = nameCommand{name: strings.Join(args, " ")}
			return nil
		},
	}
}

type nameCommand struct {
	notExit
	name string
}

func (c nameCommand) Execute(m *manager.Manager, out ui.Sink) error {
	m.Person.Name = c.name
	out.Print(fmt.Sprintf("Hi %s! Nice to meet you.", c.name))
	return nil
}
