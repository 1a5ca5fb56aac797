package queries

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/pkg/clock"
	"studio-agenda/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
)

type FetchStatus string

const (
	FetchIdle    FetchStatus = "idle"
	FetchLoading FetchStatus = "loading"
	FetchSuccess FetchStatus = "success"
	FetchError   FetchStatus = "error"
)

// BookingsSnapshot is a read-only copy of the query model state.
type BookingsSnapshot struct {
	Status   FetchStatus
	Bookings []booking.Booking
	Studios  []booking.Studio
	Err      error
	Message  string
	LoadedAt time.Time
}

func (s BookingsSnapshot) HasData() bool {
	return !s.LoadedAt.IsZero()
}

func (s BookingsSnapshot) FindBooking(id string) (booking.Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return booking.Booking{}, false
}

// BookingsQueryModel owns the fetch lifecycle of one student's bookings and the studio list.
//
// Every Refresh takes a sequence number; a response is applied only when no newer one
// has been applied already, so a slow superseded fetch cannot overwrite fresher data.
type BookingsQueryModel struct {
	gateway shared.BookingGateway
	clock   clock.Clock
	logger  *slog.Logger

	mu      sync.Mutex
	issued  uint64
	applied uint64
	state   BookingsSnapshot
}

func NewBookingsQueryModel(gateway shared.BookingGateway, c clock.Clock, logger *slog.Logger) *BookingsQueryModel {
	return &BookingsQueryModel{
		gateway: gateway,
		clock:   c,
		logger:  logger,
		state:   BookingsSnapshot{Status: FetchIdle},
	}
}

// Refresh fetches bookings and studios in parallel and joins on both.
// Whatever succeeded is applied; a failure of either leaves the previous data of that
// collection in place and moves the state to error. There is no retry.
func (m *BookingsQueryModel) Refresh(ctx context.Context) BookingsSnapshot {
	m.mu.Lock()
	m.issued++
	seq := m.issued
	m.state.Status = FetchLoading
	m.mu.Unlock()

	var (
		bookings            []booking.Booking
		studios             []booking.Studio
		bookingsErr, stdErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		bookings, bookingsErr = m.gateway.ListMyBookings(ctx)
		return nil
	})
	g.Go(func() error {
		studios, stdErr = m.gateway.ListStudios(ctx)
		return nil
	})
	_ = g.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq < m.applied {
		m.logger.Debug("Discarding superseded bookings response", "seq", seq, "applied", m.applied)
		return m.snapshotLocked()
	}
	m.applied = seq

	if bookingsErr == nil {
		m.state.Bookings = bookings
		m.state.LoadedAt = m.clock.Now()
	}
	if stdErr == nil {
		m.state.Studios = studios
	}

	err := bookingsErr
	if err == nil {
		err = stdErr
	}
	if err != nil {
		m.logger.Warn("Failed to refresh bookings", "seq", seq, "error", err.Error())
		m.state.Status = FetchError
		m.state.Err = err
		m.state.Message = shared.UserMessage(err)
		return m.snapshotLocked()
	}

	m.state.Status = FetchSuccess
	m.state.Err = nil
	m.state.Message = ""
	return m.snapshotLocked()
}

func (m *BookingsQueryModel) Snapshot() BookingsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *BookingsQueryModel) snapshotLocked() BookingsSnapshot {
	s := m.state
	s.Bookings = slices.Clone(m.state.Bookings)
	s.Studios = slices.Clone(m.state.Studios)
	return s
}
