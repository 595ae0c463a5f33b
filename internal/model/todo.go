package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateFormat is the calendar-date wire format for todo dates.
const DateFormat = "2006-01-02"

// Date is a day-granularity calendar date. It marshals as YYYY-MM-DD and
// unmarshals both YYYY-MM-DD and full RFC3339 timestamps so lists written by
// older builds rehydrate cleanly.
type Date time.Time

// NewDate truncates t to its calendar day in UTC.
func NewDate(t time.Time) Date {
	return Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t), nil
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	return time.Time(d).Format(DateFormat)
}

// Equal reports calendar-day equality, ignoring time-of-day and zone offsets.
func (d Date) Equal(other Date) bool {
	a, b := time.Time(d), time.Time(other)
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
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

	if t, err := time.Parse(DateFormat, s); err == nil {
		*d = Date(t)
		return nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = NewDate(t)
	return nil
}

// TodoItem is a single to-do entry. The ID is generated server-side at
// creation and is the only key actions may use to reference the item.
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Emoji     string `json:"emoji,omitempty"`
	Date      Date   `json:"date"`
	Time      string `json:"time,omitempty"` // optional 24-hour HH:mm
}

// SortOption is a display ordering for the day's list. It is presentation
// state, not a property of the items themselves.
type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortOldest       SortOption = "oldest"
	SortAlphabetical SortOption = "alphabetical"
	SortCompleted    SortOption = "completed"
)

// Valid reports whether s is a known sort option.
func (s SortOption) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortAlphabetical, SortCompleted:
		return true
	}
	return false
}
