package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/foodlist"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/model"
	"github.com/Tiliavir/dietbook/internal/timecalc"
	"github.com/Tiliavir/dietbook/internal/ui"
)

// macros accepted by calculate.
var macros = []string{"all", "calorie", "carbohydrate", "protein", "fat"}

func newCalculateCmd(parsed *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "calculate all|calorie|carbohydrate|protein|fat [today|week|FROM [TO]]",
		Short: "Total intake, scaled by portion size",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			macro := strings.ToLower(args[0])
			switch macro {
			case "carb":
				macro = "carbohydrate"
			case "calories":
				macro = "calorie"
			}
			if !slices.Contains(macros, macro) {
				return apperror.InvalidInput(fmt.Sprintf("cannot calculate %q, use one of: %s", args[0], strings.Join(macros, ", ")))
			}
			*parsed = calculateCommand{macro: macro, period: args[1:]}
			return nil
		},
	}
}

type calculateCommand struct {
	notExit
	macro  string
	period []string
}

func (c calculateCommand) Execute(m *manager.Manager, out ui.Sink) error {
	entries := m.Foods.Entries()
	label := "all entries"
	if len(c.period) > 0 {
		period, err := timecalc.ParsePeriod(c.period, m.Now())
		if err != nil {
			return err
		}
		dated, err := selectPeriod(m, period)
		if err != nil {
			return err
		}
		entries = make([]model.Entry, len(dated))
		for i, d := range dated {
			entries[i] = d
		}
		label = period.Label
	}

	total := foodlist.Total(foodlist.ToPortionedFoods(entries))
	switch c.macro {
	case "calorie":
		out.Print(fmt.Sprintf("Total calorie intake for %s: %s kcal", label, total.Calorie()))
	case "carbohydrate":
		out.Print(fmt.Sprintf("Total carbohydrate intake for %s: %s g", label, total.Carbohydrate()))
	case "protein":
		out.Print(fmt.Sprintf("Total protein intake for %s: %s g", label, total.Protein()))
	case "fat":
		out.Print(fmt.Sprintf("Total fat intake for %s: %s g", label, total.Fat()))
	default:
		out.Print(fmt.Sprintf("Total intake for %s (%d entries):\n  calorie: %s kcal\n  carbohydrate: %s g\n  protein: %s g\n  fat: %s g",
			label, len(entries), total.Calorie(), total.Carbohydrate(), total.Protein(), total.Fat()))
	}
	return nil
}
