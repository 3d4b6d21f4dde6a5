package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/model"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newInfoCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:     "info",
		Aliases: []string{"userinfo"},
		Short:   "Show your profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = infoCommand{}
			return nil
		},
	}
}

type infoCommand struct{ notExit }

func (infoCommand) Execute(m *manager.Manager, out ui.Sink) error {
	msg := "Here is your profile:\n" + m.Person.String()
	if bmi, err := m.Person.BMI(); err == nil {
		msg += fmt.Sprintf("\n  BMI: %.1f (%s)", bmi, model.BMICategory(bmi))
	}
	out.Print(msg)
	return nil
}
