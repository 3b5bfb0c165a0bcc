package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kogoapp/kogo-server/internal/geo"
	"github.com/kogoapp/kogo-server/internal/guide"
	"github.com/kogoapp/kogo-server/internal/models"
)

// Directions fetches the driving route between two points and normalizes it.
// The upstream takes coordinates as "lng,lat" pairs.
func (c *Client) Directions(ctx context.Context, start, end geo.Coord) (models.DirectionsResult, error) {
	if err := c.checkCredentials(); err != nil {
		return models.DirectionsResult{}, err
	}
	if err := c.wait(ctx, "directions"); err != nil {
		return models.DirectionsResult{}, err
	}

	params := url.Values{}
	params.Set("start", fmt.Sprintf("%v,%v", start.Lng, start.Lat))
	params.Set("goal", fmt.Sprintf("%v,%v", end.Lng, end.Lat))

	body, err := c.get(ctx, "directions", c.directionsURL+"?"+params.Encode())
	if err != nil {
		return models.DirectionsResult{}, err
	}

	var raw guide.DirectionsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.DirectionsResult{}, fmt.Errorf("decode directions response: %w", err)
	}

	return guide.Normalize(&raw), nil
}
