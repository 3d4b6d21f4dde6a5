package model

import (
	"fmt"
	"time"

	"github.com/Tiliavir/dietbook/internal/apperror"
)

// DateTimeLayout is the minute-precision layout used for entry timestamps in
// files and command arguments.
const DateTimeLayout = "2006-01-02T15:04"

// displayLayout is used when rendering dated entries to the user.
const displayLayout = "2006-01-02 15:04"

// Entry is one logged food with a portion multiplier. It is implemented only
// by PlainEntry and DatedEntry.
type Entry interface {
	// Food returns the unscaled food.
	Food() Food
	PortionSize() int
	String() string
	sealed()
}

// portioned is the part shared by both entry variants.
type portioned struct {
	food    Food
	portion int
}

// PlainEntry is an entry without a timestamp.
type PlainEntry struct {
	portioned
}

// DatedEntry is an entry logged at a minute-precision point in time.
type DatedEntry struct {
	portioned
	at time.Time
}

func newPortioned(food Food, portion int) (portioned, error) {
	if portion < 1 {
		return portioned{}, apperror.InvalidEntry("portion", fmt.Sprintf("portion size must be at least 1, got %d", portion))
	}
	return portioned{food: food, portion: portion}, nil
}

// NewPlainEntry builds an entry without a timestamp. portion must be at least 1.
func NewPlainEntry(food Food, portion int) (PlainEntry, error) {
	p, err := newPortioned(food, portion)
	if err != nil {
		return PlainEntry{}, err
	}
	return PlainEntry{p}, nil
}

// NewDatedEntry builds a dated entry; at is truncated to the minute.
func NewDatedEntry(food Food, portion int, at time.Time) (DatedEntry, error) {
	p, err := newPortioned(food, portion)
	if err != nil {
		return DatedEntry{}, err
	}
	if at.IsZero() {
		return DatedEntry{}, apperror.InvalidEntry("date", "entry date must be set")
	}
	return DatedEntry{portioned: p, at: at.Truncate(time.Minute)}, nil
}

func (e portioned) Food() Food       { return e.food }
func (e portioned) PortionSize() int { return e.portion }
func (portioned) sealed()            {}

func (e portioned) String() string {
	return fmt.Sprintf("%d x %s", e.portion, e.food)
}

func (e DatedEntry) DateTime() time.Time { return e.at }

// DatedString renders the entry followed by its timestamp.
func (e DatedEntry) DatedString() string {
	return fmt.Sprintf("%s @ %s", e.String(), e.at.Format(displayLayout))
}

// Compare orders entries by timestamp ascending.
func (e DatedEntry) Compare(other DatedEntry) int {
	return e.at.Compare(other.at)
}

// Before reports whether e was logged strictly before other.
func (e DatedEntry) Before(other DatedEntry) bool {
	return e.at.Before(other.at)
}

// EntryEqual reports whether a and b are the same variant with equal food,
// portion and timestamp.
func EntryEqual(a, b Entry) bool {
	if a.PortionSize() != b.PortionSize() || !a.Food().Equal(b.Food()) {
		return false
	}
	da, aDated := a.(DatedEntry)
	db, bDated := b.(DatedEntry)
	if aDated != bDated {
		return false
	}
	return !aDated || da.at.Equal(db.at)
}
