// Package urgency classifies due dates relative to the current time.
package urgency

import (
	"time"

	"github.com/twiced-technology-gmbh/todowatch/internal/date"
)

// eveningHour is the local hour (24h clock) from which a due-tomorrow item
// already counts as due soon.
const eveningHour = 18

// Category is the urgency bucket derived from a due date and a clock reading.
type Category int

const (
	// NotYet means the due date is comfortably in the future.
	NotYet Category = iota
	// DueSoon means due today, or due tomorrow once it is evening.
	DueSoon
	// Overdue means the due date has passed.
	Overdue
)

// MarshalJSON renders the category as its name.
func (c Category) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// String returns the category name for logs and output.
func (c Category) String() string {
	switch c {
	case Overdue:
		return "overdue"
	case DueSoon:
		return "due-soon"
	default:
		return "not-yet"
	}
}

// Classify buckets a due date against now. The day difference is computed
// between midnight-aligned dates; the time of day of now only feeds the
// evening rule. Pure function, no side effects.
func Classify(due date.Date, now time.Time) Category {
	diff := due.DaysUntil(date.Today(now))

	switch {
	case diff < 0:
		return Overdue
	case diff == 0:
		return DueSoon
	case diff == 1 && now.Hour() >= eveningHour:
		return DueSoon
	default:
		return NotYet
	}
}
