// Package command turns a typed line into an executable action on the
// session state. Each line is split like a shell would split it and parsed
// by a fresh cobra command tree, so flags and help behave the same as on a
// command line.
package command

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

// Command is one parsed user action.
type Command interface {
	Execute(m *manager.Manager, out ui.Sink) error
	// IsExit reports whether the session ends after this command.
	IsExit() bool
}

// notExit is embedded by every command that keeps the session running.
type notExit struct{}

func (notExit) IsExit() bool { return false }

const usageTemplate = `Usage:
  {{if .HasAvailableSubCommands}}COMMAND [arguments] [flags]{{else}}{{.Use}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Type "help COMMAND" for more about a command.{{end}}
`

// newRootCmd builds the command tree for one line. The RunE of the matched
// command stores its Command in parsed.
func newRootCmd(parsed *Command) *cobra.Command {
	root := &cobra.Command{
		Use:           "dietbook",
		Long:          "Track what you eat. Type a command followed by its arguments.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetUsageTemplate(usageTemplate)
	root.AddCommand(
		newAddCmd(parsed),
		newListCmd(parsed),
		newDeleteCmd(parsed),
		newClearCmd(parsed),
		newCalculateCmd(parsed),
		newFoodsCmd(parsed),
		newNameCmd(parsed),
		newInfoCmd(parsed),
		newEditInfoCmd(parsed),
		newSaveCmd(parsed),
		newExitCmd(parsed),
	)
	return root
}

// Parse reads a command line: a command word followed by its arguments and
// flags. Quotes group words into one argument. Help requests, including
// --help on any command, parse to a command that prints the help text.
func Parse(line string) (Command, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, apperror.InvalidInput(fmt.Sprintf("cannot read %q: %v", line, err))
	}
	if len(args) == 0 {
		return nil, apperror.InvalidInput("please enter a command, type help to list them")
	}
	args[0] = strings.ToLower(args[0])

	var (
		parsed Command
		help   bytes.Buffer
	)
	root := newRootCmd(&parsed)
	root.SetArgs(args)
	root.SetOut(&help)
	root.SetErr(&help)
	if err := root.Execute(); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.InvalidInput(err.Error())
	}
	if parsed == nil {
		return helpCommand{text: help.String()}, nil
	}
	return parsed, nil
}

// decimalFlag is a flag value holding a decimal number.
type decimalFlag struct {
	d *decimal.Decimal
}

func (f decimalFlag) String() string {
	if f.d == nil {
		return "0"
	}
	return f.d.String()
}

func (f decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*f.d = d
	return nil
}

func (decimalFlag) Type() string { return "number" }

type helpCommand struct {
	notExit
	text string
}

func (c helpCommand) Execute(_ *manager.Manager, out ui.Sink) error {
	out.Print(c.text)
	return nil
}
