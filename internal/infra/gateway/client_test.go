//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/infra"
	"studio-agenda/internal/infra/gateway"
	"studio-agenda/internal/pkg/config"
	"studio-agenda/internal/pkg/errs"
	"studio-agenda/internal/usecase/shared"
	"studio-agenda/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var classStart = time.Date(2024, 6, 10, 18, 0, 0, 0, time.FixedZone("BRT", -3*60*60))

type recordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	RequestID     string
	Body          map[string]any
}

type GatewayTestSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	requests []recordedRequest
	client   *gateway.Client
	registry *prometheus.Registry
	ctx      context.Context
}

func (s *GatewayTestSuite) SetupTest() {
	s.requests = nil
	s.handler = func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			RawQuery:      r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		}
		if body, _ := io.ReadAll(r.Body); len(body) > 0 {
			_ = json.Unmarshal(body, &rec.Body)
		}
		s.requests = append(s.requests, rec)
		s.handler(w, r)
	}))

	s.registry = prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.BackendConfig{BaseURL: s.server.URL + "/", Timeout: 2 * time.Second}
	s.client = gateway.NewClient(cfg, logger, gateway.NewMetrics(s.registry))

	s.ctx = shared.WithRequestID(shared.WithAccessToken(context.Background(), "student-token"), "req-1")
}

func (s *GatewayTestSuite) TearDownTest() {
	s.server.Close()
}

func TestGatewaySuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) respondJSON(status int, body any) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (s *GatewayTestSuite) TestListMyBookings() {
	s.Run("decodes bookings and forwards credentials", func() {
		s.requests = nil
		present := builder.NewBookingBuilder(classStart).With(func(b *builder.BookingBuilder) {
			b.ID = "102"
			b.Attendance = booking.AttendancePresent
		})
		s.respondJSON(http.StatusOK, []any{builder.NewBookingBuilder(classStart).BuildWire(), present.BuildWire()})

		got, err := s.client.ListMyBookings(s.ctx)
		s.Require().NoError(err)

		want := []booking.Booking{builder.NewBookingBuilder(classStart).BuildDomain(), present.BuildDomain()}
		if diff := cmp.Diff(want, got); diff != "" {
			s.T().Errorf("bookings mismatch (-want +got):\n%s", diff)
		}
		s.Require().Len(s.requests, 1)
		s.Equal(http.MethodGet, s.requests[0].Method)
		s.Equal("/agendamentos/aulas-alunos/", s.requests[0].Path)
		s.Equal("Bearer student-token", s.requests[0].Authorization)
		s.Equal("req-1", s.requests[0].RequestID)
	})

	s.Run("accepts a paginated envelope", func() {
		s.respondJSON(http.StatusOK, map[string]any{
			"count":   1,
			"results": []any{builder.NewBookingBuilder(classStart).BuildWire()},
		})

		got, err := s.client.ListMyBookings(s.ctx)
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("normalizes studio given as a bare id", func() {
		s.respondJSON(http.StatusOK, []any{map[string]any{
			"id": 7,
			"aula": map[string]any{
				"id":               55,
				"modalidade":       "Yoga",
				"studio":           3,
				"data_hora_inicio": "2024-06-10T18:00:00-03:00",
				"duracao_minutos":  50,
			},
			"status_presenca": nil,
		}})

		got, err := s.client.ListMyBookings(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.Equal("7", got[0].ID)
		s.Equal(booking.Studio{ID: "3"}, got[0].ClassSlot.Studio)
		s.Equal("Yoga", got[0].ClassSlot.Modality)
		s.Equal(booking.AttendanceUnset, got[0].Attendance)
		s.True(got[0].ClassSlot.Start.Equal(classStart))
	})

	s.Run("missing start is left zero", func() {
		s.respondJSON(http.StatusOK, []any{builder.NewBookingBuilder(time.Time{}).BuildWire()})

		got, err := s.client.ListMyBookings(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(got, 1)
		s.False(got[0].ClassSlot.HasStart())
	})

	s.Run("401 maps to auth error", func() {
		s.respondJSON(http.StatusUnauthorized, map[string]any{"detail": "Token inválido"})

		_, err := s.client.ListMyBookings(s.ctx)
		s.Require().Error(err)
		s.True(errs.Is(err, errs.ErrAuth))
		s.True(infra.IsKind(err, infra.KindAuth))
	})

	s.Run("500 maps to network error", func() {
		s.respondJSON(http.StatusInternalServerError, map[string]any{})

		_, err := s.client.ListMyBookings(s.ctx)
		s.True(errs.Is(err, errs.ErrNetwork))
	})

	s.Run("malformed body maps to decode error", func() {
		s.handler = func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"id": {}}]`))
		}

		_, err := s.client.ListMyBookings(s.ctx)
		s.True(infra.IsKind(err, infra.KindDecode))
		s.True(errs.Is(err, errs.ErrNetwork))
		s.True(strings.HasPrefix(err.Error(), "DECODE: list_my_bookings: decode response: "), err.Error())
		s.Equal(1, strings.Count(err.Error(), "decode response"))
	})
}

func (s *GatewayTestSuite) TestCreateBooking() {
	s.Run("book sends only the class id", func() {
		s.requests = nil
		s.respondJSON(http.StatusCreated, builder.NewBookingBuilder(classStart).BuildWire())

		got, err := s.client.CreateBooking(s.ctx, shared.CreateBookingInput{ClassSlotID: "55"})
		s.Require().NoError(err)
		s.Equal("101", got.ID)

		s.Require().Len(s.requests, 1)
		s.Equal(http.MethodPost, s.requests[0].Method)
		s.Equal(map[string]any{"aula": float64(55)}, s.requests[0].Body)
	})

	s.Run("waitlist sets the flag", func() {
		s.requests = nil
		s.respondJSON(http.StatusCreated, builder.NewBookingBuilder(classStart).BuildWire())

		_, err := s.client.CreateBooking(s.ctx, shared.CreateBookingInput{ClassSlotID: "55", JoinWaitlist: true})
		s.Require().NoError(err)
		s.Equal(map[string]any{"aula": float64(55), "entrar_lista_espera": true}, s.requests[0].Body)
	})

	s.Run("class echoed as a bare id decodes", func() {
		for _, aula := range []any{55, "55"} {
			s.respondJSON(http.StatusCreated, map[string]any{"id": 101, "aula": aula, "status_presenca": nil})

			got, err := s.client.CreateBooking(s.ctx, shared.CreateBookingInput{ClassSlotID: "55"})
			s.Require().NoError(err)
			s.Equal("101", got.ID)
			s.Equal("55", got.ClassSlot.ID)
			s.False(got.ClassSlot.HasStart())
		}
	})

	s.Run("duplicate booking maps to conflict", func() {
		s.respondJSON(http.StatusBadRequest, map[string]any{"non_field_errors": []string{"Aluno já agendado nesta aula."}})

		_, err := s.client.CreateBooking(s.ctx, shared.CreateBookingInput{ClassSlotID: "55"})
		s.True(errs.Is(err, errs.ErrConflict))
		s.Contains(err.Error(), "Aluno já agendado")
	})
}

func (s *GatewayTestSuite) TestCancelBooking() {
	s.Run("deletes by id", func() {
		s.requests = nil
		s.handler = func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

		err := s.client.CancelBooking(s.ctx, "101")
		s.Require().NoError(err)
		s.Equal(http.MethodDelete, s.requests[0].Method)
		s.Equal("/agendamentos/aulas-alunos/101/", s.requests[0].Path)
	})

	s.Run("missing booking maps to not found", func() {
		s.respondJSON(http.StatusNotFound, map[string]any{"detail": "Não encontrado."})

		err := s.client.CancelBooking(s.ctx, "999")
		s.True(errs.Is(err, errs.ErrNotFound))
	})
}

func (s *GatewayTestSuite) TestClassSlots() {
	s.Run("list passes date and studio", func() {
		s.requests = nil
		s.respondJSON(http.StatusOK, []any{builder.NewBookingBuilder(classStart).BuildWire()["aula"]})

		slots, err := s.client.ListClassSlots(s.ctx, shared.ClassSlotFilter{Date: classStart, StudioID: "1"})
		s.Require().NoError(err)
		s.Require().Len(slots, 1)
		s.Equal(builder.NewBookingBuilder(classStart).BuildClassSlot().Capacity, slots[0].Capacity)
		s.Equal("data=2024-06-10&studio=1", s.requests[0].RawQuery)
	})

	s.Run("get by id", func() {
		s.requests = nil
		s.respondJSON(http.StatusOK, builder.NewBookingBuilder(classStart).BuildWire()["aula"])

		slot, err := s.client.GetClassSlot(s.ctx, "55")
		s.Require().NoError(err)
		s.Equal("55", slot.ID)
		s.Equal("/agendamentos/aulas/55/", s.requests[0].Path)
	})
}

func (s *GatewayTestSuite) TestListStudios() {
	s.respondJSON(http.StatusOK, []any{
		map[string]any{"id": 1, "nome": "Studio Centro", "endereco": "Rua das Flores, 100"},
		map[string]any{"id": "2", "nome": "Studio Praia"},
	})

	got, err := s.client.ListStudios(s.ctx)
	s.Require().NoError(err)
	s.Equal([]booking.Studio{
		{ID: "1", Name: "Studio Centro", Address: "Rua das Flores, 100"},
		{ID: "2", Name: "Studio Praia"},
	}, got)
}

func (s *GatewayTestSuite) TestMetrics() {
	s.respondJSON(http.StatusOK, []any{})
	_, err := s.client.ListStudios(s.ctx)
	s.Require().NoError(err)

	s.respondJSON(http.StatusBadGateway, map[string]any{})
	_, err = s.client.ListStudios(s.ctx)
	s.Require().Error(err)

	count, err := promtest.GatherAndCount(s.registry, "studio_agenda_backend_requests_total")
	s.Require().NoError(err)
	s.Equal(2, count)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := gateway.NewClient(config.BackendConfig{BaseURL: server.URL, Timeout: time.Second}, logger, nil)

	_, err := client.ListStudios(context.Background())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrNetwork))
	assert.True(t, infra.IsKind(err, infra.KindNetwork))
}
