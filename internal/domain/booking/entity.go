package booking

import (
	"errors"
	"time"
)

// ErrFieldsUnavailable is returned when a record lacks the timing fields date arithmetic needs.
var ErrFieldsUnavailable = errors.New("required timing fields unavailable")

// Placeholder is rendered in place of optional fields the backend left empty.
const Placeholder = "—"

type Studio struct {
	ID      string
	Name    string
	Address string
}

func (s Studio) IsZero() bool {
	return s.ID == ""
}

// ClassSlot is a read-only snapshot of a scheduled class occurrence.
// Filled may exceed Capacity when the backend lets students into the waitlist.
type ClassSlot struct {
	ID              string
	Modality        string
	Studio          Studio
	Instructor      string
	Start           time.Time
	DurationMinutes int
	Capacity        int
	Filled          int
}

func (c ClassSlot) HasStart() bool {
	return !c.Start.IsZero()
}

func (c ClassSlot) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

func (c ClassSlot) End() (time.Time, error) {
	if !c.HasStart() || c.DurationMinutes <= 0 {
		return time.Time{}, ErrFieldsUnavailable
	}
	return c.Start.Add(c.Duration()), nil
}

func (c ClassSlot) IsFuture(now time.Time) bool {
	return c.Start.After(now)
}

// Booking is a student's relationship to one class slot, with the slot embedded as fetched.
type Booking struct {
	ID         string
	ClassSlot  ClassSlot
	Attendance Attendance
}

func (b Booking) StudioID() string {
	return b.ClassSlot.Studio.ID
}

// DisplayOr returns value, or the placeholder when value is blank.
func DisplayOr(value string) string {
	if value == "" {
		return Placeholder
	}
	return value
}
