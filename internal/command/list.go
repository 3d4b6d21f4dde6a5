package command

import (
	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/foodlist"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/model"
	"github.com/Tiliavir/dietbook/internal/timecalc"
	"github.com/Tiliavir/dietbook/internal/ui"
)

func newListCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "list [today|week|FROM [TO]]",
		Short: "Show logged foods, oldest first when a period is given",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			*parsed = listCommand{period: args}
			return nil
		},
	}
}

type listCommand struct {
	notExit
	period []string
}

func (c listCommand) Execute(m *manager.Manager, out ui.Sink) error {
	if len(c.period) == 0 {
		if m.Foods.Size() == 0 {
			out.Print("Your food list is empty.")
			return nil
		}
		out.Print("Here are the foods you have eaten:\n" + m.Foods.String())
		return nil
	}

	period, err := timecalc.ParsePeriod(c.period, m.Now())
	if err != nil {
		return err
	}
	entries, err := selectPeriod(m, period)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		out.Print("No entries found for " + period.Label + ".")
		return nil
	}
	out.Print("Here are the foods you have eaten for " + period.Label + ":\n" + foodlist.RenderNumberedDated(entries))
	return nil
}

// selectPeriod returns the dated entries within period, oldest first.
func selectPeriod(m *manager.Manager, period timecalc.Period) ([]model.DatedEntry, error) {
	entries, err := m.Foods.DatedEntries()
	if err != nil {
		return nil, err
	}
	if period.Bounded() {
		entries = foodlist.FilterRange(entries, period.From, period.To)
	} else {
		entries = foodlist.FilterSince(entries, period.From)
	}
	return foodlist.SortByDate(entries), nil
}
