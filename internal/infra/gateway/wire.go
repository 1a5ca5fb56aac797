package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"studio-agenda/internal/domain/booking"
)

// flexID accepts the backend's numeric or string primary keys.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a number or string: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

var naiveTimeLayouts = []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// flexTime accepts RFC 3339 timestamps and offset-less ones, which are read as UTC.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	for _, layout := range naiveTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

type studioWire struct {
	ID       flexID `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
}

func (s studioWire) toDomain() booking.Studio {
	return booking.Studio{ID: string(s.ID), Name: s.Nome, Address: s.Endereco}
}

// studioRef is a studio given as a bare id (number or string) or as an embedded object.
type studioRef struct {
	studioWire
}

func (r *studioRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		return json.Unmarshal(data, &r.studioWire)
	}
	return r.ID.UnmarshalJSON(data)
}

// nameRef is a related record given as a plain name or as an object with "nome".
type nameRef string

func (n *nameRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*n = ""
	case data[0] == '{':
		var obj struct {
			Nome string `json:"nome"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*n = nameRef(obj.Nome)
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = nameRef(s)
	default:
		*n = nameRef(string(data))
	}
	return nil
}

type classSlotWire struct {
	ID             flexID    `json:"id"`
	Modalidade     nameRef   `json:"modalidade"`
	Studio         studioRef `json:"studio"`
	Instrutor      nameRef   `json:"instrutor_principal"`
	DataHoraInicio flexTime  `json:"data_hora_inicio"`
	DuracaoMinutos *int      `json:"duracao_minutos"`
	Capacidade     int       `json:"capacidade_maxima"`
	TotalInscritos int       `json:"total_inscritos"`
}

func (w classSlotWire) toDomain() booking.ClassSlot {
	slot := booking.ClassSlot{
		ID:         string(w.ID),
		Modality:   string(w.Modalidade),
		Studio:     w.Studio.toDomain(),
		Instructor: string(w.Instrutor),
		Capacity:   w.Capacidade,
		Filled:     w.TotalInscritos,
		Start:      w.DataHoraInicio.Time,
	}
	if w.DuracaoMinutos != nil {
		slot.DurationMinutes = *w.DuracaoMinutos
	}
	return slot
}

// classSlotRef is a class slot given as a bare id (number or string) or as an embedded object.
type classSlotRef struct {
	classSlotWire
}

func (r *classSlotRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		return json.Unmarshal(data, &r.classSlotWire)
	}
	return r.ID.UnmarshalJSON(data)
}

type bookingWire struct {
	ID             flexID       `json:"id"`
	Aula           classSlotRef `json:"aula"`
	StatusPresenca *string      `json:"status_presenca"`
}

func (w bookingWire) toDomain() booking.Booking {
	b := booking.Booking{
		ID:        string(w.ID),
		ClassSlot: w.Aula.toDomain(),
	}
	if w.StatusPresenca != nil {
		b.Attendance = booking.NewAttendance(*w.StatusPresenca)
	}
	return b
}

type createBookingWire struct {
	Aula              any   `json:"aula"`
	EntrarListaEspera *bool `json:"entrar_lista_espera,omitempty"`
}

// classSlotIDValue sends numeric ids as numbers, which the backend serializer expects.
func classSlotIDValue(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

type errorWire struct {
	Detail         string   `json:"detail"`
	NonFieldErrors []string `json:"non_field_errors"`
}

func (e errorWire) message() string {
	if e.Detail != "" {
		return e.Detail
	}
	if len(e.NonFieldErrors) > 0 {
		return e.NonFieldErrors[0]
	}
	return ""
}

// decodeList accepts a bare JSON array or a paginated {"results": [...]} envelope.
func decodeList[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	}
	var page struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
