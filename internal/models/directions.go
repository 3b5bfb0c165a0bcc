package models

type MoveType string

const (
	MoveDriving MoveType = "driving"
	MoveWalking MoveType = "walking"
)

// GuideSegment is a slice of an instruction string. Highlighted segments are
// the landmark tokens (Exit 8, Bus Stop #02123) the UI renders emphasized.
type GuideSegment struct {
	Text      string `json:"text"`
	Highlight bool   `json:"highlight"`
}

// GuideStep is one translated instruction of a vehicle route.
type GuideStep struct {
	InstructionEn string         `json:"instructionEn"`
	Segments      []GuideSegment `json:"segments"`
	MoveType      MoveType       `json:"moveType"`
}

// DirectionsResult is the normalized route between two points.
type DirectionsResult struct {
	Duration     int         `json:"duration"` // seconds
	Distance     int         `json:"distance"` // meters
	DurationText string      `json:"durationText"`
	DistanceText string      `json:"distanceText"`
	WalkTimeText string      `json:"walkTimeText,omitempty"`
	Guide        []GuideStep `json:"guide,omitempty"`
}
