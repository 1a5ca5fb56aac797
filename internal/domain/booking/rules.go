package booking

import "time"

// CancellationWindow is how long before the class start cancellation closes.
const CancellationWindow = 3 * time.Hour

// DeriveDisplayStatus maps the raw attendance and the class start to what the student sees.
//
// A past booking carrying CANCELADO falls through to concluido; the backend never reports that
// combination for classes the student cancelled in time, and the mapping is kept as observed.
func DeriveDisplayStatus(b Booking, now time.Time) (DisplayStatus, error) {
	if !b.ClassSlot.HasStart() {
		return StatusUnknown, ErrFieldsUnavailable
	}

	if b.ClassSlot.IsFuture(now) {
		if b.Attendance == AttendanceCancelled {
			return StatusCancelled, nil
		}
		return StatusConfirmed, nil
	}

	switch b.Attendance {
	case AttendancePresent:
		return StatusCompleted, nil
	case AttendanceAbsent:
		return StatusMissed, nil
	default:
		return StatusCompleted, nil
	}
}

func CancellationDeadline(slot ClassSlot) (time.Time, error) {
	if !slot.HasStart() {
		return time.Time{}, ErrFieldsUnavailable
	}
	return slot.Start.Add(-CancellationWindow), nil
}

// CanCancel is false for missing timing fields, and stays false once now reaches the deadline.
func CanCancel(b Booking, now time.Time) bool {
	status, err := DeriveDisplayStatus(b, now)
	if err != nil || status != StatusConfirmed {
		return false
	}
	deadline, err := CancellationDeadline(b.ClassSlot)
	if err != nil {
		return false
	}
	return b.ClassSlot.IsFuture(now) && now.Before(deadline)
}

// Availability keeps the raw seat count; AvailableSeats goes negative once the waitlist is in use.
type Availability struct {
	AvailableSeats int
	IsFull         bool
}

func SeatAvailability(slot ClassSlot) Availability {
	available := slot.Capacity - slot.Filled
	return Availability{
		AvailableSeats: available,
		IsFull:         available <= 0,
	}
}

// DisplaySeats returns the seat count shown on a card; full slots show no count.
func (a Availability) DisplaySeats() int {
	if a.IsFull {
		return 0
	}
	return a.AvailableSeats
}

func ClassifyBookingAction(slot ClassSlot) Action {
	if SeatAvailability(slot).IsFull {
		return ActionJoinWaitlist
	}
	return ActionBook
}
