package queries

import (
	"context"
	"log/slog"
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/domain/schedule"
	"studio-agenda/internal/pkg/clock"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/shared"
)

type ClassSlotView struct {
	ID             string     `json:"id"`
	Modality       string     `json:"modality"`
	StudioID       string     `json:"studio_id"`
	StudioName     string     `json:"studio_name"`
	Instructor     string     `json:"instructor"`
	Start          *time.Time `json:"start,omitempty"`
	TimeLabel      string     `json:"time_label"`
	Capacity       int        `json:"capacity"`
	Filled         int        `json:"filled"`
	AvailableSeats int        `json:"available_seats"`
	IsFull         bool       `json:"is_full"`
	Action         string     `json:"action"`
	AlreadyBooked  bool       `json:"already_booked"`
}

//go:generate mockgen -source=agenda_queries.go -destination=../../../tests/mock/queries/mock_agenda_queries.go -package=queriesmock

type AgendaQueries interface {
	GetAgenda(ctx context.Context, studentID string, change WindowChange) (*AgendaView, error)
	ListStudios(ctx context.Context) ([]booking.Studio, error)
	ListAvailableClasses(ctx context.Context, studentID string, date time.Time, filter schedule.StudioFilter) ([]ClassSlotView, error)
}

type agendaQueriesImpl struct {
	store   *SessionStore
	gateway shared.BookingGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewAgendaQueries(store *SessionStore, gateway shared.BookingGateway, c clock.Clock, logger *slog.Logger) AgendaQueries {
	return &agendaQueriesImpl{
		store:   store,
		gateway: gateway,
		clock:   c,
		logger:  logger,
	}
}

// GetAgenda refreshes the student's bookings and builds the agenda for the requested window.
// Fetch failures are reported inside the view; only an expired session is returned as an error.
func (q *agendaQueriesImpl) GetAgenda(ctx context.Context, studentID string, change WindowChange) (*AgendaView, error) {
	session := q.store.Get(studentID)
	nav, filter := session.ApplyWindow(change)

	snap := session.Model.Refresh(ctx)
	if snap.Status == FetchError && errs.Is(snap.Err, errs.ErrAuth) {
		return nil, snap.Err
	}

	view := BuildAgenda(snap, nav, filter, q.clock.Now())
	return &view, nil
}

func (q *agendaQueriesImpl) ListStudios(ctx context.Context) ([]booking.Studio, error) {
	return q.gateway.ListStudios(ctx)
}

// ListAvailableClasses lists a day's class slots with their seat availability and booking action.
func (q *agendaQueriesImpl) ListAvailableClasses(ctx context.Context, studentID string, date time.Time, filter schedule.StudioFilter) ([]ClassSlotView, error) {
	loc := q.store.Location()
	if date.IsZero() {
		date = q.clock.Now()
	}
	slotFilter := shared.ClassSlotFilter{Date: schedule.StartOfDay(date, loc)}
	if !filter.IsAll() {
		slotFilter.StudioID = filter.String()
	}

	slots, err := q.gateway.ListClassSlots(ctx, slotFilter)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	booked := activeClassSlotIDs(q.store.Get(studentID).Model.Snapshot(), now)

	views := make([]ClassSlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, newClassSlotView(slot, loc, booked[slot.ID]))
	}
	return views, nil
}

func newClassSlotView(slot booking.ClassSlot, loc *time.Location, alreadyBooked bool) ClassSlotView {
	availability := booking.SeatAvailability(slot)
	view := ClassSlotView{
		ID:             slot.ID,
		Modality:       booking.DisplayOr(slot.Modality),
		StudioID:       slot.Studio.ID,
		StudioName:     booking.DisplayOr(slot.Studio.Name),
		Instructor:     booking.DisplayOr(slot.Instructor),
		TimeLabel:      booking.Placeholder,
		Capacity:       slot.Capacity,
		Filled:         slot.Filled,
		AvailableSeats: availability.DisplaySeats(),
		IsFull:         availability.IsFull,
		Action:         booking.ClassifyBookingAction(slot).String(),
		AlreadyBooked:  alreadyBooked,
	}
	if slot.HasStart() {
		start := slot.Start.In(loc)
		view.Start = &start
		view.TimeLabel = start.Format(timeLabelLayout)
	}
	return view
}

func activeClassSlotIDs(snap BookingsSnapshot, now time.Time) map[string]bool {
	ids := make(map[string]bool, len(snap.Bookings))
	for _, b := range snap.Bookings {
		if status, err := booking.DeriveDisplayStatus(b, now); err == nil && status == booking.StatusConfirmed {
			ids[b.ClassSlot.ID] = true
		}
	}
	return ids
}
