package commands

import (
	"context"
	"log/slog"
	"strings"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/pkg/clock"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/queries"
	"studio-agenda/internal/usecase/shared"
)

type BookResult struct {
	Booking queries.BookingItem
	Action  booking.Action
}

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commandsmock

type BookingCommands interface {
	Book(ctx context.Context, studentID, classSlotID string) (*BookResult, error)
	Cancel(ctx context.Context, studentID, bookingID string) error
}

type bookingUseCaseImpl struct {
	gateway shared.BookingGateway
	store   *queries.SessionStore
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingCommands(gateway shared.BookingGateway, store *queries.SessionStore, c clock.Clock, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{
		gateway: gateway,
		store:   store,
		clock:   c,
		logger:  logger,
	}
}

// Book joins the waitlist instead of booking when the slot is full.
// The session is re-fetched afterwards; nothing is patched locally.
func (uc *bookingUseCaseImpl) Book(ctx context.Context, studentID, classSlotID string) (*BookResult, error) {
	classSlotID = strings.TrimSpace(classSlotID)
	if classSlotID == "" {
		return nil, errs.ErrInvalidClassSlot
	}

	slot, err := uc.gateway.GetClassSlot(ctx, classSlotID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.ErrInvalidClassSlot
		}
		return nil, err
	}

	action := booking.ClassifyBookingAction(slot)
	created, err := uc.gateway.CreateBooking(ctx, shared.CreateBookingInput{
		ClassSlotID:  slot.ID,
		JoinWaitlist: action.JoinsWaitlist(),
	})
	if err != nil {
		return nil, err
	}
	// The create response may echo the class as a bare id.
	if !created.ClassSlot.HasStart() {
		created.ClassSlot = slot
	}

	uc.logger.Info("Booking created", "booking_id", created.ID, "class_slot_id", slot.ID, "action", action.String())
	uc.store.Get(studentID).Model.Refresh(ctx)

	return &BookResult{
		Booking: queries.NewBookingItem(created, uc.clock.Now(), uc.store.Location()),
		Action:  action,
	}, nil
}

// Cancel re-fetches the session before checking the deadline, so a booking cancelled from
// another device is refused here instead of reaching the backend. A failed request leaves the session untouched.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, studentID, bookingID string) error {
	session := uc.store.Get(studentID)

	snap := session.Model.Refresh(ctx)
	if snap.Status == queries.FetchError {
		return snap.Err
	}
	target, ok := snap.FindBooking(bookingID)
	if !ok || target.Attendance == booking.AttendanceCancelled {
		return errs.ErrNotFound
	}

	if !booking.CanCancel(target, uc.clock.Now()) {
		return errs.ErrCancellationClosed
	}

	if err := uc.gateway.CancelBooking(ctx, bookingID); err != nil {
		return err
	}

	uc.logger.Info("Booking cancelled", "booking_id", bookingID)
	session.Model.Refresh(ctx)
	return nil
}
