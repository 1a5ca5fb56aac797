package queries

import (
	"log/slog"
	"sync"
	"time"

	"studio-agenda/internal/domain/schedule"
	"studio-agenda/internal/pkg/clock"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/usecase/shared"
)

// Session is one student's in-memory view state: the bookings query model and the visible window.
type Session struct {
	Model *BookingsQueryModel

	mu       sync.Mutex
	nav      *schedule.Navigator
	filter   schedule.StudioFilter
	lastSeen time.Time
}

// WindowChange describes how a request moves the session's window; zero values keep the current one.
type WindowChange struct {
	Date      time.Time
	WeekShift int
	Filter    *schedule.StudioFilter
}

// ApplyWindow updates the window and returns a copy safe to read without the session lock.
func (s *Session) ApplyWindow(change WindowChange) (*schedule.Navigator, schedule.StudioFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !change.Date.IsZero() {
		s.nav.Select(change.Date)
	}
	if change.WeekShift != 0 {
		s.nav.ShiftWeeks(change.WeekShift)
	}
	if change.Filter != nil {
		s.filter = *change.Filter
	}
	nav := *s.nav
	return &nav, s.filter
}

// SessionStore keeps sessions in memory only; idle sessions are dropped after the configured TTL.
type SessionStore struct {
	gateway   shared.BookingGateway
	clock     clock.Clock
	logger    *slog.Logger
	loc       *time.Location
	weekStart time.Weekday
	idleTTL   time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore(gateway shared.BookingGateway, c clock.Clock, logger *slog.Logger, cfg config.Config) *SessionStore {
	weekStart, err := cfg.Schedule.FirstWeekday()
	if err != nil {
		logger.Warn("Falling back to sunday week start", "error", err.Error())
	}
	return &SessionStore{
		gateway:   gateway,
		clock:     c,
		logger:    logger,
		loc:       cfg.Schedule.Location(),
		weekStart: weekStart,
		idleTTL:   cfg.Session.IdleTTL,
		sessions:  make(map[string]*Session),
	}
}

func (st *SessionStore) Location() *time.Location {
	return st.loc
}

// Get returns the student's session, creating it anchored at today.
func (st *SessionStore) Get(studentID string) *Session {
	now := st.clock.Now()

	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictIdleLocked(now)

	s, ok := st.sessions[studentID]
	if !ok {
		s = &Session{
			Model:  NewBookingsQueryModel(st.gateway, st.clock, st.logger.With("student_id", studentID)),
			nav:    schedule.NewNavigator(st.clock, time.Time{}, st.loc, st.weekStart),
			filter: schedule.AllStudios,
		}
		st.sessions[studentID] = s
	}
	s.lastSeen = now
	return s
}

func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) evictIdleLocked(now time.Time) {
	if st.idleTTL <= 0 {
		return
	}
	for id, s := range st.sessions {
		if now.Sub(s.lastSeen) > st.idleTTL {
			delete(st.sessions, id)
		}
	}
}
