package guide

// DirectionsResponse mirrors the driving-directions upstream payload. The
// provider has shipped the summary and guide under several different nestings
// over time, so every path is optional and Normalize probes them in order.
type DirectionsResponse struct {
	Route    *Route       `json:"route,omitempty"`
	Duration *float64     `json:"duration,omitempty"`
	Distance *float64     `json:"distance,omitempty"`
	Result   *innerResult `json:"result,omitempty"`
}

type innerResult struct {
	Route *Route `json:"route,omitempty"`
}

type Route struct {
	Traoptimal []Path `json:"traoptimal,omitempty"`
	Optimal    []Path `json:"optimal,omitempty"`
}

type Path struct {
	Summary *Summary   `json:"summary,omitempty"`
	Guide   []RawGuide `json:"guide,omitempty"`
	Section []Section  `json:"section,omitempty"`
}

type Summary struct {
	Duration float64 `json:"duration"` // milliseconds
	Distance float64 `json:"distance"` // meters
}

type Section struct {
	Guide []RawGuide `json:"guide,omitempty"`
}

// RawGuide is one untranslated instruction. Older payloads use "instruction"
// and "type", newer ones "instructions" and "pathType".
type RawGuide struct {
	Instructions string  `json:"instructions,omitempty"`
	Instruction  string  `json:"instruction,omitempty"`
	Type         *int    `json:"type,omitempty"`
	PathType     *int    `json:"pathType,omitempty"`
	Distance     float64 `json:"distance,omitempty"`
	Duration     float64 `json:"duration,omitempty"`
}

func (g RawGuide) text() string {
	if g.Instructions != "" {
		return g.Instructions
	}
	return g.Instruction
}
