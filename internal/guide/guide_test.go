package guide_test

import (
	"encoding/json"
	"testing"

	"github.com/kogoapp/kogo-server/internal/guide"
	"github.com/kogoapp/kogo-server/internal/models"
)

func intPtr(n int) *int { return &n }

func f64Ptr(f float64) *float64 { return &f }

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "Under 1 min"},
		{59, "Under 1 min"},
		{60, "About 1 min"},
		{930, "About 16 min"},
		{3540, "About 59 min"},
		{3600, "About 1h"},
		{3660, "About 1h 1min"},
		{7200, "About 2h"},
		{9000, "About 2h 30min"},
	}
	for _, tt := range tests {
		if got := guide.FormatDuration(tt.seconds); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{0, "0 m"},
		{850, "850 m"},
		{999, "999 m"},
		{1000, "1.0 km"},
		{3200, "3.2 km"},
		{15500, "15.5 km"},
	}
	for _, tt := range tests {
		if got := guide.FormatDistance(tt.meters); got != tt.want {
			t.Errorf("FormatDistance(%d) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestWalkTimeText(t *testing.T) {
	tests := []struct {
		meters int
		want   string
	}{
		{0, ""},
		{-10, ""},
		{40, "~1 min walk"},  // rounds to 0, floored to 1
		{1200, "~14 min walk"},
		{3200, "~38 min walk"},
		{5000, "~60 min walk"},
		{5001, ""}, // above the 5 km walking cutoff
	}
	for _, tt := range tests {
		if got := guide.WalkTimeText(tt.meters); got != tt.want {
			t.Errorf("WalkTimeText(%d) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"출구 8", "Exit 8"},
		{"정류장 02123", "Bus Stop #02123"},
		{"버스 472", "Bus #472"},
		{"직진", "Go straight"},
		{"우회전", "Turn right"},
		{"좌회전", "Turn left"},
		{"Turn left at the plaza", "Turn left at the plaza"}, // no Korean: untouched
		{"", "Continue."},
	}
	for _, tt := range tests {
		if got := guide.Translate(tt.in); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHighlight(t *testing.T) {
	segs := guide.Highlight("Take Exit 8 to Bus Stop #02123")
	want := []models.GuideSegment{
		{Text: "Take ", Highlight: false},
		{Text: "Exit 8", Highlight: true},
		{Text: " to ", Highlight: false},
		{Text: "Bus Stop #02123", Highlight: true},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d: %+v", len(segs), len(want), segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestHighlightNoMatch(t *testing.T) {
	segs := guide.Highlight("Turn right")
	if len(segs) != 1 || segs[0].Highlight || segs[0].Text != "Turn right" {
		t.Errorf("expected single non-highlighted segment, got %+v", segs)
	}
}

func TestNormalize(t *testing.T) {
	resp := &guide.DirectionsResponse{
		Route: &guide.Route{
			Traoptimal: []guide.Path{{
				Summary: &guide.Summary{Duration: 930000, Distance: 3200},
				Guide: []guide.RawGuide{
					{Instructions: "출구 8", PathType: intPtr(1)},
					{Instruction: "직진", Type: intPtr(0)},
					{Instructions: "   "},
				},
			}},
		},
	}

	result := guide.Normalize(resp)

	if result.Duration != 930 {
		t.Errorf("Duration = %d, want 930", result.Duration)
	}
	if result.Distance != 3200 {
		t.Errorf("Distance = %d, want 3200", result.Distance)
	}
	if result.DurationText != "About 16 min" {
		t.Errorf("DurationText = %q, want %q", result.DurationText, "About 16 min")
	}
	if result.DistanceText != "3.2 km" {
		t.Errorf("DistanceText = %q, want %q", result.DistanceText, "3.2 km")
	}
	if result.WalkTimeText != "~38 min walk" {
		t.Errorf("WalkTimeText = %q, want %q", result.WalkTimeText, "~38 min walk")
	}

	if len(result.Guide) != 3 {
		t.Fatalf("got %d guide steps, want 3", len(result.Guide))
	}
	if result.Guide[0].InstructionEn != "Exit 8" {
		t.Errorf("step 0 = %q, want %q", result.Guide[0].InstructionEn, "Exit 8")
	}
	if result.Guide[0].MoveType != models.MoveWalking {
		t.Errorf("step 0 moveType = %q, want walking", result.Guide[0].MoveType)
	}
	if len(result.Guide[0].Segments) != 1 || !result.Guide[0].Segments[0].Highlight {
		t.Errorf("step 0 should be a single highlighted segment, got %+v", result.Guide[0].Segments)
	}
	if result.Guide[1].MoveType != models.MoveDriving {
		t.Errorf("step 1 moveType = %q, want driving", result.Guide[1].MoveType)
	}
	if result.Guide[2].InstructionEn != "Continue." {
		t.Errorf("blank step = %q, want %q", result.Guide[2].InstructionEn, "Continue.")
	}
}

func TestNormalizeTopLevelFallback(t *testing.T) {
	resp := &guide.DirectionsResponse{
		Duration: f64Ptr(60000),
		Distance: f64Ptr(500),
	}

	result := guide.Normalize(resp)

	if result.Duration != 60 {
		t.Errorf("Duration = %d, want 60", result.Duration)
	}
	if result.Distance != 500 {
		t.Errorf("Distance = %d, want 500", result.Distance)
	}
	if result.WalkTimeText != "~6 min walk" {
		t.Errorf("WalkTimeText = %q, want %q", result.WalkTimeText, "~6 min walk")
	}
	if len(result.Guide) != 0 {
		t.Errorf("expected no guide steps, got %d", len(result.Guide))
	}
}

func TestNormalizeAlternateShapes(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		wantDuration int
		wantDistance int
	}{
		{
			"optimal instead of traoptimal",
			`{"route":{"optimal":[{"summary":{"duration":120000,"distance":1500}}]}}`,
			120, 1500,
		},
		{
			"summary nested under result",
			`{"result":{"route":{"traoptimal":[{"summary":{"duration":90000,"distance":800}}]}}}`,
			90, 800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp guide.DirectionsResponse
			if err := json.Unmarshal([]byte(tt.payload), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			result := guide.Normalize(&resp)
			if result.Duration != tt.wantDuration {
				t.Errorf("Duration = %d, want %d", result.Duration, tt.wantDuration)
			}
			if result.Distance != tt.wantDistance {
				t.Errorf("Distance = %d, want %d", result.Distance, tt.wantDistance)
			}
		})
	}
}

func TestNormalizeSectionGuideFallback(t *testing.T) {
	payload := `{"route":{"traoptimal":[{
		"summary":{"duration":60000,"distance":400},
		"section":[{"guide":[{"instructions":"직진","type":0}]},{"guide":[{"instructions":"좌회전"}]}]
	}]}}`

	var resp guide.DirectionsResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	result := guide.Normalize(&resp)
	if len(result.Guide) != 2 {
		t.Fatalf("got %d guide steps, want 2", len(result.Guide))
	}
	if result.Guide[0].InstructionEn != "Go straight" {
		t.Errorf("step 0 = %q, want %q", result.Guide[0].InstructionEn, "Go straight")
	}
	if result.Guide[1].InstructionEn != "Turn left" {
		t.Errorf("step 1 = %q, want %q", result.Guide[1].InstructionEn, "Turn left")
	}
}
