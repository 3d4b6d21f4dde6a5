package timecalc

import (
	"fmt"
	"time"

	"github.com/Tiliavir/dietbook/internal/apperror"
	"github.com/Tiliavir/dietbook/internal/model"
)

// ParseDateTime parses a minute-precision timestamp like "2026-10-19T08:15"
// in the local time zone.
func ParseDateTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(model.DateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, apperror.InvalidInput(fmt.Sprintf("invalid date %q, want format yyyy-MM-ddTHH:mm", s))
	}
	return t, nil
}

// Now returns the current local time truncated to the minute.
func Now() time.Time {
	return time.Now().Truncate(time.Minute)
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := StartOfDay(t.AddDate(0, 0, -(wd - 1)))
	return monday, EndOfDay(monday.AddDate(0, 0, 6))
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// Period selects entries by timestamp. A zero To means no upper bound.
type Period struct {
	From  time.Time
	To    time.Time
	Label string
}

// Bounded reports whether the period has an upper bound.
func (p Period) Bounded() bool { return !p.To.IsZero() }

// ParsePeriod interprets the period arguments of list and calculate:
//
//	today            the current day
//	week             the current ISO week
//	FROM             everything since FROM
//	FROM TO          everything within [FROM, TO]
func ParsePeriod(args []string, now time.Time) (Period, error) {
	switch {
	case len(args) == 1 && args[0] == "today":
		return Period{From: StartOfDay(now), To: EndOfDay(now), Label: now.Format("2006-01-02")}, nil
	case len(args) == 1 && args[0] == "week":
		from, to := WeekRange(now)
		return Period{From: from, To: to, Label: "week " + ISOWeekLabel(now)}, nil
	case len(args) == 1:
		from, err := ParseDateTime(args[0])
		if err != nil {
			return Period{}, err
		}
		return Period{From: from, Label: "since " + args[0]}, nil
	case len(args) == 2:
		from, err := ParseDateTime(args[0])
		if err != nil {
			return Period{}, err
		}
		to, err := ParseDateTime(args[1])
		if err != nil {
			return Period{}, err
		}
		if !from.Before(to) {
			return Period{}, apperror.InvalidRange(fmt.Sprintf("start %s must be before end %s", args[0], args[1]))
		}
		return Period{From: from, To: to, Label: args[0] + " to " + args[1]}, nil
	default:
		return Period{}, apperror.InvalidInput("expected today, week, FROM or FROM TO")
	}
}
