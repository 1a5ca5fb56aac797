package response

import (
	"time"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/usecase/commands"
	"studio-agenda/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type DayResponse struct {
	Date        time.Time `json:"date"`
	Key         string    `json:"key"`
	HasBookings bool      `json:"hasBookings"`
	IsSelected  bool      `json:"isSelected"`
	IsToday     bool      `json:"isToday"`
}

type BookingResponse struct {
	ID                   string     `json:"id"`
	ClassSlotID          string     `json:"classSlotId"`
	Modality             string     `json:"modality"`
	StudioID             string     `json:"studioId"`
	StudioName           string     `json:"studioName"`
	StudioAddress        string     `json:"studioAddress"`
	Instructor           string     `json:"instructor"`
	Start                *time.Time `json:"start,omitempty"`
	End                  *time.Time `json:"end,omitempty"`
	TimeLabel            string     `json:"timeLabel"`
	Status               string     `json:"status"`
	CanCancel            bool       `json:"canCancel"`
	CancellationDeadline *time.Time `json:"cancellationDeadline,omitempty"`
	FieldsUnavailable    bool       `json:"fieldsUnavailable"`
}

type StudioResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type AgendaResponse struct {
	SelectedDate time.Time         `json:"selectedDate"`
	StudioFilter string            `json:"studioFilter"`
	Days         []DayResponse     `json:"days"`
	Bookings     []BookingResponse `json:"bookings"`
	NextClass    *BookingResponse  `json:"nextClass,omitempty"`
	Studios      []StudioResponse  `json:"studios"`
	Status       string            `json:"status"`
	Message      string            `json:"message,omitempty"`
}

type ClassSlotResponse struct {
	ID             string     `json:"id"`
	Modality       string     `json:"modality"`
	StudioID       string     `json:"studioId"`
	StudioName     string     `json:"studioName"`
	Instructor     string     `json:"instructor"`
	Start          *time.Time `json:"start,omitempty"`
	TimeLabel      string     `json:"timeLabel"`
	Capacity       int        `json:"capacity"`
	Filled         int        `json:"filled"`
	AvailableSeats int        `json:"availableSeats"`
	IsFull         bool       `json:"isFull"`
	Action         string     `json:"action"`
	AlreadyBooked  bool       `json:"alreadyBooked"`
}

type BookResponse struct {
	Action  string          `json:"action"`
	Booking BookingResponse `json:"booking"`
}

var deepCopy = copier.Option{DeepCopy: true}

func FromAgendaView(v *queries.AgendaView) (*AgendaResponse, error) {
	resp := &AgendaResponse{
		Days:     []DayResponse{},
		Bookings: []BookingResponse{},
		Studios:  []StudioResponse{},
	}
	if err := copier.CopyWithOption(resp, v, deepCopy); err != nil {
		return nil, err
	}
	resp.Status = string(v.Status)
	return resp, nil
}

func FromClassSlotViews(views []queries.ClassSlotView) ([]ClassSlotResponse, error) {
	resp := make([]ClassSlotResponse, 0, len(views))
	if err := copier.CopyWithOption(&resp, views, deepCopy); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromStudios(studios []booking.Studio) ([]StudioResponse, error) {
	resp := make([]StudioResponse, 0, len(studios))
	if err := copier.Copy(&resp, studios); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBookResult(r *commands.BookResult) (*BookResponse, error) {
	resp := &BookResponse{Action: r.Action.String()}
	if err := copier.CopyWithOption(&resp.Booking, &r.Booking, deepCopy); err != nil {
		return nil, err
	}
	return resp, nil
}
