package gateway

import (
	"context"

	"studio-agenda/internal/domain/booking"
)

const (
	studiosPath   = "/studios/"
	opListStudios = "list_studios"
)

func (c *Client) ListStudios(ctx context.Context) ([]booking.Studio, error) {
	data, err := c.get(ctx, opListStudios, studiosPath)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[studioWire](data)
	if err != nil {
		return nil, c.decodeErr(opListStudios, err)
	}
	studios := make([]booking.Studio, 0, len(items))
	for _, item := range items {
		studios = append(studios, item.toDomain())
	}
	return studios, nil
}
