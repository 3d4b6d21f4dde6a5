package command

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/catalog"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newFoodsCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:     "foods [STORE...]",
		Aliases: []string{"database"},
		Short:   "Show the food database, optionally only one store",
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = foodsCommand{store: strings.Join(args, " ")}
			return nil
		},
	}
}

type foodsCommand struct {
	notExit
	store string
}

func (c foodsCommand) Execute(m *manager.Manager, out ui.Sink) error {
	stores := m.Catalog.Stores()
	if c.store != "" {
		s, err := m.Catalog.Store(c.store)
		if err != nil {
			return err
		}
		stores = []catalog.Store{s}
	}
	if len(stores) == 0 {
		out.Print("The food database is empty.")
		return nil
	}

	var b strings.Builder
	b.WriteString("Here are the foods in the database:")
	for _, s := range stores {
		b.WriteString("\n" + s.Name + ":")
		for _, f := range s.Foods {
			b.WriteString("\n  " + f.String())
		}
	}
	out.Print(b.String())
	return nil
}
