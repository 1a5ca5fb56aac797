//go:build unit || e2e

package builder

import (
	"time"

	"studio-agenda/internal/domain/booking"
)

type BookingBuilder struct {
	ID              string
	ClassSlotID     string
	Modality        string
	StudioID        string
	StudioName      string
	StudioAddress   string
	Instructor      string
	Start           time.Time
	DurationMinutes int
	Capacity        int
	Filled          int
	Attendance      booking.Attendance
}

// NewBookingBuilder returns a confirmed booking for a class starting start.
func NewBookingBuilder(start time.Time) *BookingBuilder {
	return &BookingBuilder{
		ID:              "101",
		ClassSlotID:     "55",
		Modality:        "Pilates Solo",
		StudioID:        "1",
		StudioName:      "Studio Centro",
		StudioAddress:   "Rua das Flores, 100",
		Instructor:      "Ana Souza",
		Start:           start,
		DurationMinutes: 60,
		Capacity:        10,
		Filled:          4,
		Attendance:      booking.AttendanceUnset,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildClassSlot() booking.ClassSlot {
	return booking.ClassSlot{
		ID:       b.ClassSlotID,
		Modality: b.Modality,
		Studio: booking.Studio{
			ID:      b.StudioID,
			Name:    b.StudioName,
			Address: b.StudioAddress,
		},
		Instructor:      b.Instructor,
		Start:           b.Start,
		DurationMinutes: b.DurationMinutes,
		Capacity:        b.Capacity,
		Filled:          b.Filled,
	}
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:         b.ID,
		ClassSlot:  b.BuildClassSlot(),
		Attendance: b.Attendance,
	}
}

// BuildWire returns the backend JSON shape of the booking.
func (b *BookingBuilder) BuildWire() map[string]any {
	aula := map[string]any{
		"id":                  b.ClassSlotID,
		"modalidade":          map[string]any{"id": 3, "nome": b.Modality},
		"studio":              map[string]any{"id": b.StudioID, "nome": b.StudioName, "endereco": b.StudioAddress},
		"instrutor_principal": map[string]any{"nome": b.Instructor},
		"duracao_minutos":     b.DurationMinutes,
		"capacidade_maxima":   b.Capacity,
		"total_inscritos":     b.Filled,
	}
	if !b.Start.IsZero() {
		aula["data_hora_inicio"] = b.Start.Format(time.RFC3339)
	}
	wire := map[string]any{
		"id":   b.ID,
		"aula": aula,
	}
	if b.Attendance != booking.AttendanceUnset {
		wire["status_presenca"] = b.Attendance.String()
	}
	return wire
}
