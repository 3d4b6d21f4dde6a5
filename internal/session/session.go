// Package session runs the interactive loop of dietbook.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Tiliavir/dietbook/internal/command"
	"github.com/Tiliavir/dietbook/internal/manager"
	"github.com/Tiliavir/dietbook/internal/ui"
)

// genericFailure is shown when a command fails unexpectedly.
const genericFailure = "Oops something went wrong!"

// Session ties the state, the interactive surface and the logger together.
type Session struct {
	manager *manager.Manager
	ui      *ui.UI
	logger  *slog.Logger

	// parse turns a line into a command.
	parse func(line string) (command.Command, error)
}

// New returns a session over m that talks to u.
func New(m *manager.Manager, u *ui.UI, logger *slog.Logger) *Session {
	return &Session{manager: m, ui: u, logger: logger, parse: command.Parse}
}

// Run restores persisted state, greets the user and processes commands until
// exit or end of input. End of input saves like exit does.
func (s *Session) Run() error {
	s.ui.Print("Loading your data...")
	status, err := s.manager.Load(s.ui)
	if err != nil {
		s.ui.PrintError(err.Error())
	}
	s.logger.Info("session started", slog.String("status", status.String()))
	s.greet(status)

	for {
		line, err := s.ui.ReadCommand()
		if err != nil {
			return s.stop(err)
		}
		if line == "" {
			continue
		}
		if s.handle(line) {
			s.ui.Goodbye()
			return nil
		}
	}
}

// stop saves after the input ended or failed. A read error other than end
// of input is reported and returned.
func (s *Session) stop(readErr error) error {
	if !errors.Is(readErr, io.EOF) {
		s.logger.Error("cannot read input", slog.String("error", readErr.Error()))
		s.ui.PrintError("cannot read input: " + readErr.Error())
	}
	s.logger.Info("input ended, saving")
	if err := s.manager.Save(); err != nil {
		return fmt.Errorf("saving on end of input: %w", err)
	}
	if !errors.Is(readErr, io.EOF) {
		return fmt.Errorf("reading input: %w", readErr)
	}
	return nil
}

func (s *Session) greet(status manager.Status) {
	switch status {
	case manager.Restored:
		s.ui.WelcomeBack(s.manager.Person.Name)
	default:
		s.ui.Welcome()
	}
}

// handle runs one line and reports whether the session should end. Errors
// and panics are reported to the user; they never end the session.
func (s *Session) handle(line string) (exit bool) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("command panicked", slog.String("line", line), slog.Any("panic", r))
			s.ui.PrintError(genericFailure)
			exit = false
		}
	}()

	cmd, err := s.parse(line)
	if err != nil {
		s.ui.PrintError(err.Error())
		return false
	}
	if err := cmd.Execute(s.manager, s.ui); err != nil {
		s.logger.Debug("command failed", slog.String("line", line), slog.String("error", err.Error()))
		s.ui.PrintError(err.Error())
		return false
	}
	return cmd.IsExit()
}
