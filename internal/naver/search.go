package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/kogoapp/kogo-server/internal/geo"
	"github.com/kogoapp/kogo-server/internal/models"
)

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

type localSearchResponse struct {
	Items []localSearchItem `json:"items"`
}

// The upstream sends planar coordinates as strings and decorates titles with
// <b> markup around the matched query.
type localSearchItem struct {
	Title       string `json:"title"`
	MapX        string `json:"mapx"`
	MapY        string `json:"mapy"`
	Address     string `json:"address"`
	RoadAddress string `json:"roadAddress"`
}

// SearchLocal queries the local-search API and converts each result's TM128
// coordinates to WGS84. A blank query returns an empty result without hitting
// the upstream. Items without usable coordinates are skipped.
func (c *Client) SearchLocal(ctx context.Context, query string) ([]models.LocalSearchItem, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return []models.LocalSearchItem{}, nil
	}

	if err := c.wait(ctx, "local"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("query", q)
	params.Set("display", "5")
	params.Set("start", "1")
	params.Set("sort", "random")

	body, err := c.get(ctx, "local search", c.searchURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var raw localSearchResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode local search response: %w", err)
	}

	items := make([]models.LocalSearchItem, 0, len(raw.Items))
	for _, i := range raw.Items {
		mapx, errX := strconv.ParseFloat(i.MapX, 64)
		mapy, errY := strconv.ParseFloat(i.MapY, 64)
		if errX != nil || errY != nil {
			continue
		}
		coord := geo.ToWgs84(mapx, mapy)
		items = append(items, models.LocalSearchItem{
			Title:       stripTags(i.Title),
			MapX:        mapx,
			MapY:        mapy,
			Lat:         coord.Lat,
			Lng:         coord.Lng,
			Address:     stripTags(i.Address),
			RoadAddress: stripTags(i.RoadAddress),
		})
	}
	return items, nil
}

func stripTags(s string) string {
	return strings.TrimSpace(htmlTagRe.ReplaceAllString(s, ""))
}
