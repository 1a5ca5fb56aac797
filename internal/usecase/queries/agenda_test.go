//go:build unit

package queries_test

import (
	"testing"
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/domain/schedule"
	"studio-agenda/internal/pkg/clock"
	"studio-agenda/internal/usecase/queries"
	"studio-agenda/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAgenda(t *testing.T) {
	// 2024-06-10 is a Monday; the sunday-first week runs 06-09..06-15.
	today := now
	tonight := builder.NewBookingBuilder(time.Date(2024, 6, 10, 18, 0, 0, 0, brt)).BuildDomain()
	thursday := builder.NewBookingBuilder(time.Date(2024, 6, 13, 7, 0, 0, 0, brt)).With(func(b *builder.BookingBuilder) {
		b.ID = "102"
		b.StudioID = "2"
		b.StudioName = "Studio Praia"
	}).BuildDomain()
	morningDone := builder.NewBookingBuilder(time.Date(2024, 6, 10, 7, 0, 0, 0, brt)).With(func(b *builder.BookingBuilder) {
		b.ID = "103"
		b.Attendance = booking.AttendancePresent
	}).BuildDomain()

	snap := queries.BookingsSnapshot{
		Status:   queries.FetchSuccess,
		Bookings: []booking.Booking{thursday, tonight, morningDone},
		Studios:  studios,
		LoadedAt: today,
	}
	nav := schedule.NewNavigator(clock.NewMockClock(today), time.Time{}, brt, time.Sunday)

	t.Run("week strip marks days and flags today", func(t *testing.T) {
		view := queries.BuildAgenda(snap, nav, schedule.AllStudios, today)

		require.Len(t, view.Days, schedule.DaysInWeek)
		assert.Equal(t, "2024-06-09", view.Days[0].Key)
		assert.Equal(t, "2024-06-15", view.Days[6].Key)

		marked := map[string]bool{}
		for _, d := range view.Days {
			if d.HasBookings {
				marked[d.Key] = true
			}
		}
		assert.Equal(t, map[string]bool{"2024-06-10": true, "2024-06-13": true}, marked)
		assert.True(t, view.Days[1].IsToday)
		assert.True(t, view.Days[1].IsSelected)
		assert.False(t, view.Days[4].IsSelected)
	})

	t.Run("selected day lists bookings in start order", func(t *testing.T) {
		view := queries.BuildAgenda(snap, nav, schedule.AllStudios, today)

		require.Len(t, view.Bookings, 2)
		assert.Equal(t, "103", view.Bookings[0].ID)
		assert.Equal(t, booking.StatusCompleted.String(), view.Bookings[0].Status)
		assert.False(t, view.Bookings[0].CanCancel)

		item := view.Bookings[1]
		assert.Equal(t, "101", item.ID)
		assert.Equal(t, "18:00 - 19:00", item.TimeLabel)
		assert.Equal(t, booking.StatusConfirmed.String(), item.Status)
		assert.True(t, item.CanCancel)
		require.NotNil(t, item.CancellationDeadline)
		assert.True(t, item.CancellationDeadline.Equal(time.Date(2024, 6, 10, 15, 0, 0, 0, brt)))
		assert.Equal(t, "all", view.StudioFilter)
		assert.Equal(t, queries.FetchSuccess, view.Status)
		assert.Equal(t, studios, view.Studios)
	})

	t.Run("next class ignores the filter and the selected day", func(t *testing.T) {
		other := schedule.NewNavigator(clock.NewMockClock(today), time.Date(2024, 6, 13, 0, 0, 0, 0, brt), brt, time.Sunday)
		view := queries.BuildAgenda(snap, other, schedule.NewStudioFilter("2"), today)

		require.NotNil(t, view.NextClass)
		assert.Equal(t, "101", view.NextClass.ID)
		require.Len(t, view.Bookings, 1)
		assert.Equal(t, "102", view.Bookings[0].ID)
	})

	t.Run("filter hides marks of other studios", func(t *testing.T) {
		view := queries.BuildAgenda(snap, nav, schedule.NewStudioFilter("2"), today)
		assert.False(t, view.Days[1].HasBookings)
		assert.True(t, view.Days[4].HasBookings)
		assert.Empty(t, view.Bookings)
	})

	t.Run("error snapshot keeps data and carries the message", func(t *testing.T) {
		failed := snap
		failed.Status = queries.FetchError
		failed.Message = "Não foi possível conectar ao servidor."

		view := queries.BuildAgenda(failed, nav, schedule.AllStudios, today)
		assert.Equal(t, queries.FetchError, view.Status)
		assert.Equal(t, failed.Message, view.Message)
		assert.Len(t, view.Bookings, 2)
	})
}

func TestNewBookingItem(t *testing.T) {
	t.Run("missing start uses placeholders", func(t *testing.T) {
		b := builder.NewBookingBuilder(time.Time{}).With(func(b *builder.BookingBuilder) {
			b.Modality = ""
			b.StudioName = ""
		}).BuildDomain()

		item := queries.NewBookingItem(b, now, brt)

		assert.True(t, item.FieldsUnavailable)
		assert.Equal(t, booking.StatusUnknown.String(), item.Status)
		assert.Equal(t, booking.Placeholder, item.TimeLabel)
		assert.Equal(t, booking.Placeholder, item.Modality)
		assert.Equal(t, booking.Placeholder, item.StudioName)
		assert.Nil(t, item.Start)
		assert.Nil(t, item.CancellationDeadline)
		assert.False(t, item.CanCancel)
	})

	t.Run("missing duration keeps the start only", func(t *testing.T) {
		b := builder.NewBookingBuilder(now.Add(5 * time.Hour)).With(func(b *builder.BookingBuilder) {
			b.DurationMinutes = 0
		}).BuildDomain()

		item := queries.NewBookingItem(b, now, brt)

		assert.True(t, item.FieldsUnavailable)
		assert.Equal(t, "17:00", item.TimeLabel)
		assert.Nil(t, item.End)
		assert.True(t, item.CanCancel)
	})

	t.Run("times are rendered in the studio zone", func(t *testing.T) {
		b := builder.NewBookingBuilder(time.Date(2024, 6, 10, 21, 0, 0, 0, time.UTC)).BuildDomain()

		item := queries.NewBookingItem(b, now, brt)

		assert.Equal(t, "18:00 - 19:00", item.TimeLabel)
	})
}
