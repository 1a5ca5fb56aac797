package queries

import (
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/domain/schedule"
)

const timeLabelLayout = "15:04"

// Read models for the agenda screen
type AgendaDay struct {
	Date        time.Time `json:"date"`
	Key         string    `json:"key"`
	HasBookings bool      `json:"has_bookings"`
	IsSelected  bool      `json:"is_selected"`
	IsToday     bool      `json:"is_today"`
}

type BookingItem struct {
	ID                   string     `json:"id"`
	ClassSlotID          string     `json:"class_slot_id"`
	Modality             string     `json:"modality"`
	StudioID             string     `json:"studio_id"`
	StudioName           string     `json:"studio_name"`
	StudioAddress        string     `json:"studio_address"`
	Instructor           string     `json:"instructor"`
	Start                *time.Time `json:"start,omitempty"`
	End                  *time.Time `json:"end,omitempty"`
	TimeLabel            string     `json:"time_label"`
	Status               string     `json:"status"`
	CanCancel            bool       `json:"can_cancel"`
	CancellationDeadline *time.Time `json:"cancellation_deadline,omitempty"`
	FieldsUnavailable    bool       `json:"fields_unavailable"`
}

type AgendaView struct {
	SelectedDate time.Time        `json:"selected_date"`
	StudioFilter string           `json:"studio_filter"`
	Days         []AgendaDay      `json:"days"`
	Bookings     []BookingItem    `json:"bookings"`
	NextClass    *BookingItem     `json:"next_class,omitempty"`
	Studios      []booking.Studio `json:"studios"`
	Status       FetchStatus      `json:"status"`
	Message      string           `json:"message,omitempty"`
}

// BuildAgenda derives the render-ready agenda from a snapshot; it never mutates the snapshot.
func BuildAgenda(snap BookingsSnapshot, nav *schedule.Navigator, filter schedule.StudioFilter, now time.Time) AgendaView {
	loc := nav.Location()
	marked := schedule.MarkDaysWithBookings(snap.Bookings, filter, loc)
	todayKey := schedule.DayKey(now, loc)
	selectedKey := schedule.DayKey(nav.Selected(), loc)

	weekDays := nav.WeekDays()
	days := make([]AgendaDay, 0, len(weekDays))
	for _, d := range weekDays {
		key := schedule.DayKey(d, loc)
		days = append(days, AgendaDay{
			Date:        d,
			Key:         key,
			HasBookings: marked[key],
			IsSelected:  key == selectedKey,
			IsToday:     key == todayKey,
		})
	}

	filtered := FilteredBookings(snap.Bookings, nav.Selected(), filter, loc)
	items := make([]BookingItem, 0, len(filtered))
	for _, b := range filtered {
		items = append(items, NewBookingItem(b, now, loc))
	}

	view := AgendaView{
		SelectedDate: nav.Selected(),
		StudioFilter: filter.String(),
		Days:         days,
		Bookings:     items,
		Studios:      snap.Studios,
		Status:       snap.Status,
		Message:      snap.Message,
	}
	if next, ok := NextUpcomingBooking(snap.Bookings, now); ok {
		item := NewBookingItem(next, now, loc)
		view.NextClass = &item
	}
	return view
}

// NewBookingItem applies the booking rules to one booking, substituting placeholders for missing fields.
func NewBookingItem(b booking.Booking, now time.Time, loc *time.Location) BookingItem {
	slot := b.ClassSlot
	item := BookingItem{
		ID:            b.ID,
		ClassSlotID:   slot.ID,
		Modality:      booking.DisplayOr(slot.Modality),
		StudioID:      slot.Studio.ID,
		StudioName:    booking.DisplayOr(slot.Studio.Name),
		StudioAddress: booking.DisplayOr(slot.Studio.Address),
		Instructor:    booking.DisplayOr(slot.Instructor),
		TimeLabel:     booking.Placeholder,
		CanCancel:     booking.CanCancel(b, now),
	}

	status, err := booking.DeriveDisplayStatus(b, now)
	item.Status = status.String()
	if err != nil {
		item.FieldsUnavailable = true
		return item
	}

	start := slot.Start.In(loc)
	item.Start = &start
	item.TimeLabel = start.Format(timeLabelLayout)
	if end, endErr := slot.End(); endErr == nil {
		end = end.In(loc)
		item.End = &end
		item.TimeLabel += " - " + end.Format(timeLabelLayout)
	} else {
		item.FieldsUnavailable = true
	}
	if deadline, deadlineErr := booking.CancellationDeadline(slot); deadlineErr == nil {
		deadline = deadline.In(loc)
		item.CancellationDeadline = &deadline
	}
	return item
}
