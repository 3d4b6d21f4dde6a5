// Package apperror defines the error taxonomy shared by the dietbook packages.
//
// Every AppError matches its own sentinel via errors.Is, so the command layer
// can turn it into a user-facing message without inspecting low-level causes.
// An error built around a cause also matches whatever the cause matches: a
// corrupt record whose line holds a negative macro is both ErrCorruptRecord
// and ErrInvalidEntry.
package apperror

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidEntry    = errors.New("invalid entry")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrCorruptRecord   = errors.New("corrupt record")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidRange    = errors.New("invalid range")
	ErrUndatedEntry    = errors.New("entry has no date")
	ErrUnknownFood     = errors.New("unknown food")
)

// AppError is the error type returned by the constructors below.
type AppError struct {
	Err     error  // sentinel the error matches
	Message string // human-readable message
	Field   string // optional: field or argument causing the error
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes both the sentinel and the underlying cause, if any.
func (e *AppError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.cause}
}

// NotFound reports a missing persisted file. It also matches fs.ErrNotExist.
func NotFound(path string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("file %s not found", path),
		cause:   fs.ErrNotExist,
	}
}

func InvalidEntry(field, message string) *AppError {
	return &AppError{
		Err:     ErrInvalidEntry,
		Message: message,
		Field:   field,
	}
}

func IndexOutOfRange(index, size int) *AppError {
	return &AppError{
		Err:     ErrIndexOutOfRange,
		Message: fmt.Sprintf("index %d is out of range, the list has %d entries", index, size),
	}
}

// CorruptRecord reports a line of a data file that cannot be decoded.
func CorruptRecord(path string, line int, cause error) *AppError {
	return &AppError{
		Err:     ErrCorruptRecord,
		Message: fmt.Sprintf("corrupt record in %s line %d: %v", path, line, cause),
		cause:   cause,
	}
}

func InvalidInput(message string) *AppError {
	return &AppError{
		Err:     ErrInvalidInput,
		Message: message,
	}
}

func InvalidRange(message string) *AppError {
	return &AppError{
		Err:     ErrInvalidRange,
		Message: message,
	}
}

// UndatedEntry reports a plain entry found where only dated entries are allowed.
func UndatedEntry(index int) *AppError {
	return &AppError{
		Err:     ErrUndatedEntry,
		Message: fmt.Sprintf("entry %d has no date", index),
	}
}

// UnknownFood reports a food or store that is not in the food catalog.
func UnknownFood(message string) *AppError {
	return &AppError{
		Err:     ErrUnknownFood,
		Message: message,
	}
}
