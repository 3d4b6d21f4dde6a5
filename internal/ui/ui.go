// Package ui is the line-based interactive surface: it reads one command per
// line and prints messages, styling errors and headings when the output is a
// terminal.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sink receives the output of commands.
type Sink interface {
	Print(msg string)
	PrintError(msg string)
}

// UI reads commands from in and writes messages to out.
type UI struct {
	scanner *bufio.Scanner
	out     io.Writer

	heading lipgloss.Style
	errText lipgloss.Style
	prompt  lipgloss.Style
}

// New returns a UI reading from in and writing to out. Styles are only
// applied when out is a terminal.
func New(in io.Reader, out io.Writer) *UI {
	r := lipgloss.NewRenderer(out)
	return &UI{
		scanner: bufio.NewScanner(in),
		out:     out,
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		errText: r.NewStyle().Foreground(lipgloss.Color("196")),
		prompt:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// ReadCommand prompts for and returns the next trimmed line. It returns
// io.EOF at end of input and the reader's error, such as bufio.ErrTooLong,
// when the input cannot be read further.
func (u *UI) ReadCommand() (string, error) {
	fmt.Fprint(u.out, u.prompt.Render(">"), " ")
	if !u.scanner.Scan() {
		fmt.Fprintln(u.out)
		if err := u.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(u.scanner.Text()), nil
}

// Print writes msg on its own line.
func (u *UI) Print(msg string) {
	fmt.Fprintln(u.out, strings.TrimRight(msg, "\n"))
}

// PrintError writes msg prefixed with "Error: ".
func (u *UI) PrintError(msg string) {
	fmt.Fprintln(u.out, u.errText.Render("Error: "+msg))
}

// Welcome greets a first-time user.
func (u *UI) Welcome() {
	fmt.Fprintln(u.out, u.heading.Render("Welcome to DietBook!"))
	u.Print("Looks like this is your first time here. Start by telling me your name: name YOUR NAME")
	u.Print("Type help to see every command.")
}

// WelcomeBack greets a returning user.
func (u *UI) WelcomeBack(name string) {
	if name == "" {
		name = "back"
	}
	fmt.Fprintln(u.out, u.heading.Render("Welcome "+name+"!"))
	u.Print("Your profile and food log have been restored. Type help to see every command.")
}

// Goodbye is printed when the session ends with exit.
func (u *UI) Goodbye() {
	u.Print("Bye, your data has been saved. Stay healthy!")
}
