package models

// LocalSearchItem is one local-search hit with its original TM128 planar
// coordinates and the converted WGS84 pair.
type LocalSearchItem struct {
	Title       string  `json:"title"`
	MapX        float64 `json:"mapx"`
	MapY        float64 `json:"mapy"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Address     string  `json:"address,omitempty"`
	RoadAddress string  `json:"roadAddress,omitempty"`
}

type SearchResponse struct {
	Items []LocalSearchItem `json:"items"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
