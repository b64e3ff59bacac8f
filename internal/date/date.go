// Package date provides a Date type that marshals as YYYY-MM-DD.
package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"go.yaml.in/yaml/v3"
)

const format = "2006-01-02"

// shape enforces the strict 4-2-2 digit form before calendar parsing, so
// inputs like "2024-1-3" are rejected even though time.Parse accepts them.
var shape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Date represents a calendar date without time or timezone.
type Date struct {
	time.Time
}

// New creates a Date from year, month, day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the calendar date of the given instant in its own location.
func Today(now time.Time) Date {
	return New(now.Year(), now.Month(), now.Day())
}

// Parse parses a strict YYYY-MM-DD string into a Date. Both the textual
// shape and the calendar are validated ("2024-02-30" is an error).
func Parse(s string) (Date, error) {
	if !shape.MatchString(s) {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	t, err := time.Parse(format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(format)
}

// DaysUntil returns the whole-day difference from other to d. Both dates
// are midnight-aligned, so the result is an exact integer day count.
func (d Date) DaysUntil(other Date) int {
	return int(d.Sub(other.Time).Hours() / 24)
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
