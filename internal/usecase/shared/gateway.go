package shared

import (
	"context"
	"time"

	"studio-agenda/internal/domain/booking"
)

//go:generate mockgen -source=gateway.go -destination=../../../tests/mock/shared/mock_gateway.go -package=sharedmock

// BookingGateway is the platform backend as seen by the booking usecases.
// Implementations do not retry; every failure is reported once.
type BookingGateway interface {
	ListMyBookings(ctx context.Context) ([]booking.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
	CreateBooking(ctx context.Context, in CreateBookingInput) (booking.Booking, error)
	ListStudios(ctx context.Context) ([]booking.Studio, error)
	ListClassSlots(ctx context.Context, filter ClassSlotFilter) ([]booking.ClassSlot, error)
	GetClassSlot(ctx context.Context, classSlotID string) (booking.ClassSlot, error)
}

type CreateBookingInput struct {
	ClassSlotID  string
	JoinWaitlist bool
}

// ClassSlotFilter narrows the class listing; an empty StudioID lists every studio.
type ClassSlotFilter struct {
	Date     time.Time
	StudioID string
}
