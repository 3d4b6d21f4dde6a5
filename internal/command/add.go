package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/model"
	"github.com/Tiliavir/dietbook/internal/timecalc"
	"github.com/Tiliavir/dietbook/internal/ui"
)

// macroFlags are the flags that describe a food not taken from the database.
var macroFlags = []string{"calorie", "carbohydrate", "protein", "fat"}

func newAddCmd(parsed *Command) *cobra.Command {
	var (
		calorie, carb, protein, fat decimal.Decimal
		portion                     int
		date, store                 string
	)
	cmd := &cobra.Command{
		Use:   "add NAME... [flags]",
		Short: "Log a food, from the food database unless -k is given",
		Example: `  add chicken rice -x 2
  add kopi --store drinks
  add Fried rice -k 200 -c 45 -p 4 -f 0.4 -d 2026-10-19T12:30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := addCommand{name: strings.Join(args, " "), store: store, portion: portion}
			if portion < 1 {
				return apperror.InvalidEntry("portion", fmt.Sprintf("portion size must be at least 1, got %d", portion))
			}
			for _, f := range macroFlags {
				c.custom = c.custom || cmd.Flags().Changed(f)
			}
			if c.custom {
				if store != "" {
					return apperror.InvalidInput("--store only applies to foods from the database")
				}
				food, err := model.NewFood(c.name, calorie, carb, protein, fat)
				if err != nil {
					return err
				}
				c.food = food
			}
			if date != "" {
				at, err := timecalc.ParseDateTime(date)
				if err != nil {
					return err
				}
				c.at = at
			}
			*parsed = c
			return nil
		},
	}
	cmd.Flags().VarP(decimalFlag{&calorie}, "calorie", "k", "Calories in kcal per portion")
	cmd.Flags().VarP(decimalFlag{&carb}, "carbohydrate", "c", "Carbohydrate in g per portion")
	cmd.Flags().VarP(decimalFlag{&protein}, "protein", "p", "Protein in g per portion")
	cmd.Flags().VarP(decimalFlag{&fat}, "fat", "f", "Fat in g per portion")
	cmd.Flags().IntVarP(&portion, "portion", "x", 1, "Number of portions")
	cmd.Flags().StringVarP(&date, "date", "d", "", "When it was eaten, yyyy-MM-ddTHH:mm (default now)")
	cmd.Flags().StringVarP(&store, "store", "s", "", "Only look in this store of the food database")
	return cmd
}

type addCommand struct {
	notExit
	name    string
	store   string
	custom  bool // food holds the macros given on the line
	food    model.Food
	portion int
	at      time.Time // zero: use the manager clock
}

func (c addCommand) Execute(m *manager.Manager, out ui.Sink) error {
	food := c.food
	if !c.custom {
		var err error
		if food, err = m.Catalog.Find(c.name, c.store); err != nil {
			return err
		}
	}
	at := c.at
	if at.IsZero() {
		at = m.Now()
	}
	entry, err := model.NewDatedEntry(food, c.portion, at)
	if err != nil {
		return err
	}
	m.Foods.Add(entry)
	out.Print(fmt.Sprintf("Added to the food list:\n  %s", entry.DatedString()))
	return nil
}
