package schedule

import (
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/pkg/clock"
)

const (
	DaysInWeek   = 7
	DayKeyLayout = "2006-01-02"
)

// Direction moves the window one week back or forward.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// Navigator holds the selected date of the visible 7-day window.
// It never caches the week: every call recomputes from the selected date.
type Navigator struct {
	selected  time.Time
	weekStart time.Weekday
	loc       *time.Location
}

// NewNavigator anchors the window at initial, or at today when initial is zero.
func NewNavigator(c clock.Clock, initial time.Time, loc *time.Location, weekStart time.Weekday) *Navigator {
	if loc == nil {
		loc = time.Local
	}
	if initial.IsZero() {
		initial = c.Now()
	}
	return &Navigator{
		selected:  StartOfDay(initial, loc),
		weekStart: weekStart,
		loc:       loc,
	}
}

func (n *Navigator) Selected() time.Time {
	return n.selected
}

func (n *Navigator) Location() *time.Location {
	return n.loc
}

func (n *Navigator) Select(date time.Time) {
	n.selected = StartOfDay(date, n.loc)
}

// ShiftWeek has no bounds; the backend simply returns nothing outside its data.
func (n *Navigator) ShiftWeek(direction Direction) {
	n.selected = n.selected.AddDate(0, 0, int(direction)*DaysInWeek)
}

// ShiftWeeks applies ShiftWeek |weeks| times in the sign's direction.
func (n *Navigator) ShiftWeeks(weeks int) {
	n.selected = n.selected.AddDate(0, 0, weeks*DaysInWeek)
}

func (n *Navigator) WeekDays() []time.Time {
	return WeekDays(n.selected, n.loc, n.weekStart)
}

// WeekDays returns the 7 local midnights of the calendar week containing date.
func WeekDays(date time.Time, loc *time.Location, weekStart time.Weekday) []time.Time {
	day := StartOfDay(date, loc)
	offset := (int(day.Weekday()) - int(weekStart) + DaysInWeek) % DaysInWeek
	first := day.AddDate(0, 0, -offset)

	days := make([]time.Time, DaysInWeek)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayKeyLayout)
}

// SameDay compares local calendar days, not 24h windows.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a, loc) == DayKey(b, loc)
}

func ParseDay(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, s, loc)
}

// MarkDaysWithBookings returns the day keys holding at least one booking that passes filter.
func MarkDaysWithBookings(bookings []booking.Booking, filter StudioFilter, loc *time.Location) map[string]bool {
	marked := make(map[string]bool)
	for _, b := range bookings {
		if !b.ClassSlot.HasStart() || !filter.Matches(b) {
			continue
		}
		marked[DayKey(b.ClassSlot.Start, loc)] = true
	}
	return marked
}
