package request

import "strings"

type CreateBookingRequest struct {
	ClassSlotID string `json:"classSlotId" binding:"required,max=64"`
}

func (r CreateBookingRequest) GetClassSlotID() string {
	return strings.TrimSpace(r.ClassSlotID)
}
