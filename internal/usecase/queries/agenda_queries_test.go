//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/domain/schedule"
	"studio-agenda/internal/pkg/clock"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/queries"
	"studio-agenda/internal/usecase/shared"
	"studio-agenda/tests/common/builder"
	sharedmock "studio-agenda/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgendaQueriesTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockGateway *sharedmock.MockBookingGateway
	clock       *clock.MockClock
	store       *queries.SessionStore
	queries     queries.AgendaQueries
	ctx         context.Context
}

func (s *AgendaQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = sharedmock.NewMockBookingGateway(s.mockCtrl)
	s.clock = clock.NewMockClock(now)

	cfg := config.NewTestConfig()
	s.store = queries.NewSessionStore(s.mockGateway, s.clock, disc, cfg)
	s.queries = queries.NewAgendaQueries(s.store, s.mockGateway, s.clock, disc)
	s.ctx = context.Background()
}

func (s *AgendaQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgendaQueriesSuite(t *testing.T) {
	suite.Run(t, new(AgendaQueriesTestSuite))
}

func (s *AgendaQueriesTestSuite) expectRefresh(bookings []booking.Booking, err error) {
	s.mockGateway.EXPECT().ListMyBookings(gomock.Any()).Return(bookings, err).Times(1)
	s.mockGateway.EXPECT().ListStudios(gomock.Any()).Return(studios, nil).Times(1)
}

func (s *AgendaQueriesTestSuite) TestGetAgenda() {
	tonight := builder.NewBookingBuilder(time.Date(2024, 6, 10, 18, 0, 0, 0, brt)).BuildDomain()

	s.Run("defaults to today with every studio", func() {
		s.expectRefresh([]booking.Booking{tonight}, nil)

		view, err := s.queries.GetAgenda(s.ctx, "student-1", queries.WindowChange{})
		s.Require().NoError(err)

		s.Equal("2024-06-10", schedule.DayKey(view.SelectedDate, s.store.Location()))
		s.Equal("all", view.StudioFilter)
		s.Require().Len(view.Bookings, 1)
		s.Equal(queries.FetchSuccess, view.Status)
	})

	s.Run("window changes persist in the session", func() {
		praia := schedule.NewStudioFilter("2")
		s.expectRefresh([]booking.Booking{tonight}, nil)

		view, err := s.queries.GetAgenda(s.ctx, "student-1", queries.WindowChange{WeekShift: 1, Filter: &praia})
		s.Require().NoError(err)
		s.Equal("2024-06-17", schedule.DayKey(view.SelectedDate, s.store.Location()))
		s.Equal("2", view.StudioFilter)
		s.Empty(view.Bookings)

		s.expectRefresh([]booking.Booking{tonight}, nil)
		view, err = s.queries.GetAgenda(s.ctx, "student-1", queries.WindowChange{})
		s.Require().NoError(err)
		s.Equal("2024-06-17", schedule.DayKey(view.SelectedDate, s.store.Location()))
		s.Equal("2", view.StudioFilter)
	})

	s.Run("network failure is reported inside the view", func() {
		s.expectRefresh(nil, errs.Mark(errors.New("dial tcp"), errs.ErrNetwork))

		view, err := s.queries.GetAgenda(s.ctx, "student-2", queries.WindowChange{})
		s.Require().NoError(err)
		s.Equal(queries.FetchError, view.Status)
		s.Equal(shared.MsgNetwork, view.Message)
	})

	s.Run("expired session is returned as an error", func() {
		s.expectRefresh(nil, errs.Mark(errors.New("401"), errs.ErrAuth))

		view, err := s.queries.GetAgenda(s.ctx, "student-3", queries.WindowChange{})
		s.Nil(view)
		s.True(errs.Is(err, errs.ErrAuth))
	})
}

func (s *AgendaQueriesTestSuite) TestListAvailableClasses() {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, brt)

	s.Run("marks booked and full slots", func() {
		booked := builder.NewBookingBuilder(day.Add(18 * time.Hour)).BuildDomain()
		s.expectRefresh([]booking.Booking{booked}, nil)
		s.store.Get("student-1").Model.Refresh(s.ctx)

		full := builder.NewBookingBuilder(day.Add(19 * time.Hour)).With(func(b *builder.BookingBuilder) {
			b.ClassSlotID = "56"
			b.Filled = 12
		}).BuildClassSlot()

		s.mockGateway.EXPECT().
			ListClassSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f shared.ClassSlotFilter) ([]booking.ClassSlot, error) {
				s.Equal("1", f.StudioID)
				s.Equal("2024-06-10", schedule.DayKey(f.Date, s.store.Location()))
				return []booking.ClassSlot{booked.ClassSlot, full}, nil
			}).Times(1)

		views, err := s.queries.ListAvailableClasses(s.ctx, "student-1", day.Add(15*time.Hour), schedule.NewStudioFilter("1"))
		s.Require().NoError(err)
		s.Require().Len(views, 2)

		s.True(views[0].AlreadyBooked)
		s.Equal(booking.ActionBook.String(), views[0].Action)
		s.Equal(6, views[0].AvailableSeats)
		s.Equal("18:00", views[0].TimeLabel)

		s.False(views[1].AlreadyBooked)
		s.True(views[1].IsFull)
		s.Equal(0, views[1].AvailableSeats)
		s.Equal(booking.ActionJoinWaitlist.String(), views[1].Action)
	})

	s.Run("all studios sends no studio", func() {
		s.mockGateway.EXPECT().
			ListClassSlots(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f shared.ClassSlotFilter) ([]booking.ClassSlot, error) {
				s.Empty(f.StudioID)
				return nil, nil
			}).Times(1)

		views, err := s.queries.ListAvailableClasses(s.ctx, "student-9", time.Time{}, schedule.AllStudios)
		s.Require().NoError(err)
		s.Empty(views)
	})

	s.Run("gateway errors are returned", func() {
		s.mockGateway.EXPECT().ListClassSlots(gomock.Any(), gomock.Any()).Return(nil, errs.ErrNetwork).Times(1)

		_, err := s.queries.ListAvailableClasses(s.ctx, "student-1", day, schedule.AllStudios)
		s.True(errs.Is(err, errs.ErrNetwork))
	})
}

func (s *AgendaQueriesTestSuite) TestListStudios() {
	s.mockGateway.EXPECT().ListStudios(gomock.Any()).Return(studios, nil).Times(1)

	got, err := s.queries.ListStudios(s.ctx)
	s.Require().NoError(err)
	s.Equal(studios, got)
}

func TestSessionStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := sharedmock.NewMockBookingGateway(ctrl)
	c := clock.NewMockClock(now)
	store := queries.NewSessionStore(gw, c, disc, config.NewTestConfig())

	t.Run("sessions are per student", func(t *testing.T) {
		a := store.Get("a")
		assert.Same(t, a, store.Get("a"))
		assert.NotSame(t, a, store.Get("b"))
		assert.Equal(t, 2, store.Len())
	})

	t.Run("idle sessions are evicted", func(t *testing.T) {
		c.Advance(20 * time.Minute)
		store.Get("a")
		c.Advance(20 * time.Minute)
		store.Get("a")

		assert.Equal(t, 1, store.Len())
	})

	t.Run("window copy is detached from the session", func(t *testing.T) {
		s := store.Get("c")
		nav, filter := s.ApplyWindow(queries.WindowChange{Date: time.Date(2024, 7, 1, 9, 0, 0, 0, brt)})
		nav.ShiftWeek(schedule.Forward)

		again, _ := s.ApplyWindow(queries.WindowChange{})
		assert.Equal(t, "2024-07-01", schedule.DayKey(again.Selected(), again.Location()))
		assert.Equal(t, schedule.AllStudios, filter)
	})

	t.Run("unknown week start falls back to sunday", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Schedule.WeekStart = "friday"
		st := queries.NewSessionStore(gw, c, disc, cfg)

		nav, _ := st.Get("x").ApplyWindow(queries.WindowChange{})
		assert.Equal(t, time.Sunday, nav.WeekDays()[0].Weekday())
	})
}
