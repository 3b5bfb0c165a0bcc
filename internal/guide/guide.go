package guide

import (
	"fmt"
	"math"
	"strings"

	"github.com/kogoapp/kogo-server/internal/models"
)

// Walking speed used to convert driving distance into a walk-time estimate.
const walkSpeedKmh = 5.0

// Normalize flattens a raw directions payload into the normalized result:
// duration in seconds, distance in meters, display strings, and translated,
// keyword-highlighted guide steps.
func Normalize(resp *DirectionsResponse) models.DirectionsResult {
	var durationMs, distanceM float64
	var rawGuide []RawGuide

	path := pickPath(resp)
	if path != nil && path.Summary != nil {
		durationMs = path.Summary.Duration
		distanceM = path.Summary.Distance
	}
	if (durationMs == 0 || distanceM == 0) && resp.Duration != nil && resp.Distance != nil {
		durationMs = *resp.Duration
		distanceM = *resp.Distance
	}

	if path != nil {
		rawGuide = path.Guide
		if len(rawGuide) == 0 {
			for _, s := range path.Section {
				rawGuide = append(rawGuide, s.Guide...)
			}
		}
	}

	durationSec := int(math.Round(durationMs / 1000))
	distanceMeters := int(math.Round(distanceM))

	var steps []models.GuideStep
	for _, g := range rawGuide {
		steps = append(steps, buildStep(g))
	}

	return models.DirectionsResult{
		Duration:     durationSec,
		Distance:     distanceMeters,
		DurationText: FormatDuration(durationSec),
		DistanceText: FormatDistance(distanceMeters),
		WalkTimeText: WalkTimeText(distanceMeters),
		Guide:        steps,
	}
}

func pickPath(resp *DirectionsResponse) *Path {
	if resp.Route != nil {
		if len(resp.Route.Traoptimal) > 0 {
			return &resp.Route.Traoptimal[0]
		}
		if len(resp.Route.Optimal) > 0 {
			return &resp.Route.Optimal[0]
		}
	}
	if resp.Result != nil && resp.Result.Route != nil && len(resp.Result.Route.Traoptimal) > 0 {
		return &resp.Result.Route.Traoptimal[0]
	}
	return nil
}

func buildStep(g RawGuide) models.GuideStep {
	raw := strings.TrimSpace(g.text())
	if raw == "" {
		raw = "Continue."
	}
	en := Translate(raw)
	return models.GuideStep{
		InstructionEn: en,
		Segments:      Highlight(en),
		MoveType:      moveType(g),
	}
}

// moveType classifies a step from the type/pathType discriminator:
// 1 = walking, anything else (or absent) = driving.
func moveType(g RawGuide) models.MoveType {
	t := g.Type
	if t == nil {
		t = g.PathType
	}
	if t != nil && *t == 1 {
		return models.MoveWalking
	}
	return models.MoveDriving
}

// FormatDuration renders seconds for display: "Under 1 min", "About 16 min",
// "About 2h 5min" ("About 2h" when the minute part is zero).
func FormatDuration(seconds int) string {
	if seconds < 60 {
		return "Under 1 min"
	}
	min := int(math.Round(float64(seconds) / 60))
	if min < 60 {
		return fmt.Sprintf("About %d min", min)
	}
	h := min / 60
	m := min % 60
	if m != 0 {
		return fmt.Sprintf("About %dh %dmin", h, m)
	}
	return fmt.Sprintf("About %dh", h)
}

// FormatDistance renders meters for display: "850 m" below 1 km, "3.2 km" above.
func FormatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%d m", meters)
	}
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// WalkTimeText converts a distance into a walking estimate at 5 km/h, e.g.
// "~38 min walk". Empty above 5 km or for non-positive distance.
func WalkTimeText(meters int) string {
	if meters <= 0 {
		return ""
	}
	km := float64(meters) / 1000
	if km > 5 {
		return ""
	}
	walkMin := int(math.Round(km / walkSpeedKmh * 60))
	if walkMin < 1 {
		return "~1 min walk"
	}
	return fmt.Sprintf("~%d min walk", walkMin)
}
