package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/usecase/shared"
)

const bookingsPath = "/agendamentos/aulas-alunos/"

const (
	opListMyBookings = "list_my_bookings"
	opCancelBooking  = "cancel_booking"
	opCreateBooking  = "create_booking"
)

// ListMyBookings returns the caller's bookings; the backend scopes them by the forwarded token.
func (c *Client) ListMyBookings(ctx context.Context) ([]booking.Booking, error) {
	data, err := c.get(ctx, opListMyBookings, bookingsPath)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[bookingWire](data)
	if err != nil {
		return nil, c.decodeErr(opListMyBookings, err)
	}
	bookings := make([]booking.Booking, 0, len(items))
	for _, item := range items {
		bookings = append(bookings, item.toDomain())
	}
	return bookings, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	return c.delete(ctx, opCancelBooking, bookingsPath+url.PathEscape(bookingID)+"/")
}

func (c *Client) CreateBooking(ctx context.Context, in shared.CreateBookingInput) (booking.Booking, error) {
	body := createBookingWire{Aula: classSlotIDValue(in.ClassSlotID)}
	if in.JoinWaitlist {
		joinWaitlist := true
		body.EntrarListaEspera = &joinWaitlist
	}

	data, err := c.post(ctx, opCreateBooking, bookingsPath, body)
	if err != nil {
		return booking.Booking{}, err
	}
	var created bookingWire
	if err := json.Unmarshal(data, &created); err != nil {
		return booking.Booking{}, c.decodeErr(opCreateBooking, err)
	}
	return created.toDomain(), nil
}
