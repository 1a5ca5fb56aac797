package schedule

import (
	"strings"

	"studio-agenda/internal/domain/booking"
)

// StudioFilter selects bookings by studio; AllStudios disables the filter.
type StudioFilter string

const AllStudios StudioFilter = "all"

func NewStudioFilter(s string) StudioFilter {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(AllStudios)) {
		return AllStudios
	}
	return StudioFilter(s)
}

func (f StudioFilter) IsAll() bool {
	return f == AllStudios || f == ""
}

func (f StudioFilter) Matches(b booking.Booking) bool {
	return f.IsAll() || b.StudioID() == string(f)
}

func (f StudioFilter) String() string {
	if f == "" {
		return string(AllStudios)
	}
	return string(f)
}
