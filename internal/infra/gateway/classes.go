package gateway

import (
	"context"
	"encoding/json"
	"net/url"

	"studio-agenda/internal/domain/booking"
	"studio-agenda/internal/usecase/shared"
)

const classSlotsPath = "/agendamentos/aulas/"

const (
	opListClassSlots = "list_class_slots"
	opGetClassSlot   = "get_class_slot"
)

func (c *Client) ListClassSlots(ctx context.Context, filter shared.ClassSlotFilter) ([]booking.ClassSlot, error) {
	query := url.Values{}
	if !filter.Date.IsZero() {
		query.Set("data", filter.Date.Format("2006-01-02"))
	}
	if filter.StudioID != "" {
		query.Set("studio", filter.StudioID)
	}
	path := classSlotsPath
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	data, err := c.get(ctx, opListClassSlots, path)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[classSlotWire](data)
	if err != nil {
		return nil, c.decodeErr(opListClassSlots, err)
	}
	slots := make([]booking.ClassSlot, 0, len(items))
	for _, item := range items {
		slots = append(slots, item.toDomain())
	}
	return slots, nil
}

func (c *Client) GetClassSlot(ctx context.Context, classSlotID string) (booking.ClassSlot, error) {
	data, err := c.get(ctx, opGetClassSlot, classSlotsPath+url.PathEscape(classSlotID)+"/")
	if err != nil {
		return booking.ClassSlot{}, err
	}
	var slot classSlotWire
	if err := json.Unmarshal(data, &slot); err != nil {
		return booking.ClassSlot{}, c.decodeErr(opGetClassSlot, err)
	}
	return slot.toDomain(), nil
}
