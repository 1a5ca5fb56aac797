package booking

import "strings"

// Attendance is the outcome recorded by the studio for a booking.
// The empty value means the student is booked and nothing was recorded yet.
type Attendance string

const (
	AttendanceUnset     Attendance = ""
	AttendancePresent   Attendance = "PRESENTE"
	AttendanceAbsent    Attendance = "FALTOU"
	AttendanceCancelled Attendance = "CANCELADO"
)

func NewAttendance(s string) Attendance {
	return Attendance(strings.ToUpper(strings.TrimSpace(s)))
}

func (a Attendance) String() string {
	return string(a)
}

func (a Attendance) IsUnset() bool {
	return a == AttendanceUnset
}

// IsRecorded reports whether the class outcome is already known.
func (a Attendance) IsRecorded() bool {
	return a == AttendancePresent || a == AttendanceAbsent
}

type DisplayStatus string

const (
	StatusConfirmed DisplayStatus = "confirmado"
	StatusCancelled DisplayStatus = "cancelado"
	StatusCompleted DisplayStatus = "concluido"
	StatusMissed    DisplayStatus = "faltou"
	StatusUnknown   DisplayStatus = "desconhecido"
)

func (s DisplayStatus) String() string {
	return string(s)
}

func (s DisplayStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted, StatusMissed, StatusUnknown:
		return true
	default:
		return false
	}
}

// Action is the kind of booking request a class slot accepts right now.
type Action string

const (
	ActionBook         Action = "book"
	ActionJoinWaitlist Action = "joinWaitlist"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) JoinsWaitlist() bool {
	return a == ActionJoinWaitlist
}
