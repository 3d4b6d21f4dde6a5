package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/model"
	"github.com/Tiliavir/dietbook/internal/ui"
)

// profileInts are the whole-number profile fields editinfo can set.
var profileInts = []struct {
	flag, shorthand, usage string
	set                    func(p *model.Person, v int)
}{
	{"age", "a", "Age in years", func(p *model.Person, v int) { p.Age = v }},
	{"height", "", "Height in cm", func(p *model.Person, v int) { p.Height = v }},
	{"original", "o", "Weight in kg when you started", func(p *model.Person, v int) { p.OriginalWeight = v }},
	{"current", "c", "Current weight in kg", func(p *model.Person, v int) { p.CurrentWeight = v }},
	{"target", "t", "Target weight in kg", func(p *model.Person, v int) { p.TargetWeight = v }},
}

func newEditInfoCmd(parsed *Command) *cobra.Command {
	var (
		name, gender string
		level        int
		ints         = make([]int, len(profileInts))
	)
	cmd := &cobra.Command{
		Use:     "editinfo [flags]",
		Short:   "Update your profile; only the given fields change",
		Example: `  editinfo -g female -a 30 --height 165 -c 60 -t 55 -l 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				return apperror.InvalidInput("editinfo needs at least one field, see help editinfo")
			}

			var updates []func(p *model.Person)
			if cmd.Flags().Changed("name") {
				if strings.TrimSpace(name) == "" {
					return apperror.InvalidInput("name must not be empty")
				}
				updates = append(updates, func(p *model.Person) { p.Name = name })
			}
			if cmd.Flags().Changed("gender") {
				g := parseGender(gender)
				updates = append(updates, func(p *model.Person) { p.Gender = g })
			}
			for i, f := range profileInts {
				if !cmd.Flags().Changed(f.flag) {
					continue
				}
				v := ints[i]
				if v < 0 {
					return apperror.InvalidInput(fmt.Sprintf("%s must not be negative, got %d", f.flag, v))
				}
				updates = append(updates, func(p *model.Person) { f.set(p, v) })
			}
			if cmd.Flags().Changed("level") {
				lvl, ok := model.FitnessLevelFromInt(level)
				if !ok {
					return apperror.InvalidInput(fmt.Sprintf("fitness level must be between 1 and 5, got %d", level))
				}
				updates = append(updates, func(p *model.Person) { p.FitnessLevel = lvl })
			}

			*parsed = editInfoCommand{update: func(p *model.Person) {
				for _, u := range updates {
					u(p)
				}
			}}
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Your name")
	cmd.Flags().StringVarP(&gender, "gender", "g", "", "male, female or other")
	for i, f := range profileInts {
		cmd.Flags().IntVarP(&ints[i], f.flag, f.shorthand, 0, f.usage)
	}
	cmd.Flags().IntVarP(&level, "level", "l", 0, "Fitness level from 1 (none) to 5 (extreme)")
	return cmd
}

// editInfoCommand applies validated profile updates all at once.
type editInfoCommand struct {
	notExit
	update func(p *model.Person)
}

func (c editInfoCommand) Execute(m *manager.Manager, out ui.Sink) error {
	c.update(&m.Person)
	out.Print("Your profile has been updated:\n" + m.Person.String())
	return nil
}

// parseGender accepts M/Male and F/Female in any case.
func parseGender(s string) model.Gender {
	switch strings.ToLower(s) {
	case "m", "male":
		return model.Male
	case "f", "female":
		return model.Female
	default:
		return model.Others
	}
}
