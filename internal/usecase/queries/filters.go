package queries

import (
	"slices"
	"strings"
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/domain/schedule"
)

// FilteredBookings keeps bookings on the selected local calendar day that pass the studio filter.
func FilteredBookings(all []booking.Booking, selectedDate time.Time, filter schedule.StudioFilter, loc *time.Location) []booking.Booking {
	filtered := make([]booking.Booking, 0, len(all))
	for _, b := range all {
		if !b.ClassSlot.HasStart() || !filter.Matches(b) {
			continue
		}
		if schedule.SameDay(b.ClassSlot.Start, selectedDate, loc) {
			filtered = append(filtered, b)
		}
	}
	sortByStart(filtered)
	return filtered
}

// NextUpcomingBooking returns the next class the student is still expected to attend.
func NextUpcomingBooking(all []booking.Booking, now time.Time) (booking.Booking, bool) {
	candidates := make([]booking.Booking, 0, len(all))
	for _, b := range all {
		status, err := booking.DeriveDisplayStatus(b, now)
		if err != nil || status == booking.StatusCancelled || b.Attendance.IsRecorded() {
			continue
		}
		if b.ClassSlot.IsFuture(now) {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return booking.Booking{}, false
	}
	sortByStart(candidates)
	return candidates[0], true
}

func sortByStart(bookings []booking.Booking) {
	slices.SortStableFunc(bookings, func(a, b booking.Booking) int {
		if c := a.ClassSlot.Start.Compare(b.ClassSlot.Start); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
}
