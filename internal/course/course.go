package course

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/kogoapp/kogo-server/internal/geo"
	"github.com/kogoapp/kogo-server/internal/models"
)

// Seoul city-hall area, the default start position and the anchor for the
// synthetic offset given to destinations without coordinates.
const (
	seoulCenterLat = 37.5665
	seoulCenterLng = 126.978
)

// PlacesPerDay maps the travel pace to the per-day place cap.
var PlacesPerDay = map[string]int{
	"slow":   2,
	"normal": 3,
	"busy":   4,
}

const defaultPerDay = 3

// DayDate is one calendar day of the travel period.
type DayDate struct {
	DayLabel  string `json:"dayLabel"`
	Date      string `json:"date"`
	DateLabel string `json:"dateLabel"`
}

// DayDates expands the inclusive [travelStart, travelEnd] range into labeled
// days. Empty when either date is missing, unparsable, or end before start.
func DayDates(travelStart, travelEnd string) []DayDate {
	if travelStart == "" || travelEnd == "" {
		return nil
	}
	start, err := time.Parse("2006-01-02", travelStart)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", travelEnd)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return nil
	}

	var out []DayDate
	dayNum := 1
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, DayDate{
			DayLabel:  "Day " + strconv.Itoa(dayNum),
			Date:      d.Format("2006-01-02"),
			DateLabel: d.Format("Jan 2, 2006"),
		})
		dayNum++
	}
	return out
}

type positioned struct {
	name string
	lat  float64
	lng  float64
}

// Generate buckets destinations into day courses: Day 1 takes the leading
// destinations in input order (capped at 2 when an arrival time is known,
// since arrival day is evening-only), the remainder is ordered by repeated
// nearest-neighbor selection and chunked per-pace across the following days.
// Destinations beyond the calendar range are dropped. Transit placeholders
// are interleaved between consecutive places within a day.
//
// Output is deterministic for fixed input: no randomness, no I/O.
func Generate(destinations []models.Destination, travelStart, travelEnd, pace, arrivalTime string) []models.DayCourse {
	dayDates := DayDates(travelStart, travelEnd)
	if len(dayDates) == 0 || len(destinations) == 0 {
		return nil
	}

	places := make([]positioned, len(destinations))
	for i, d := range destinations {
		places[i] = position(d)
	}

	perDay, ok := PlacesPerDay[pace]
	if !ok {
		perDay = defaultPerDay
	}

	day1Max := perDay
	if arrivalTime != "" {
		day1Max = 2
	}
	if day1Max > len(places) {
		day1Max = len(places)
	}
	day1Places := places[:day1Max]
	rest := places[day1Max:]

	ordered := nearestNeighborOrder(day1Places, rest)

	days := []models.DayCourse{buildDay(dayDates[0], day1Places)}
	for chunk := 0; chunk < len(ordered); chunk += perDay {
		dayIndex := 1 + chunk/perDay
		if dayIndex >= len(dayDates) {
			break
		}
		end := chunk + perDay
		if end > len(ordered) {
			end = len(ordered)
		}
		days = append(days, buildDay(dayDates[dayIndex], ordered[chunk:end]))
	}

	return days
}

// position fills missing coordinates with a deterministic offset from the
// name length. Informational only: it gives every destination a position for
// distance ordering, it is not geocoding.
func position(d models.Destination) positioned {
	p := positioned{name: d.Name}
	offset := float64(utf8.RuneCountInString(d.Name)%10) * 0.01
	if d.Lat != nil {
		p.lat = *d.Lat
	} else {
		p.lat = seoulCenterLat + offset
	}
	if d.Lng != nil {
		p.lng = *d.Lng
	} else {
		p.lng = seoulCenterLng + offset
	}
	return p
}

// nearestNeighborOrder greedily orders rest by haversine proximity, starting
// from the last Day-1 place (or the Seoul center when Day 1 is empty).
func nearestNeighborOrder(day1 []positioned, rest []positioned) []positioned {
	lastLat, lastLng := seoulCenterLat, seoulCenterLng
	if len(day1) > 0 {
		lastLat = day1[len(day1)-1].lat
		lastLng = day1[len(day1)-1].lng
	}

	remaining := make([]positioned, len(rest))
	copy(remaining, rest)

	ordered := make([]positioned, 0, len(remaining))
	for len(remaining) > 0 {
		best := 0
		bestDist := geo.DistanceKm(lastLat, lastLng, remaining[0].lat, remaining[0].lng)
		for i := 1; i < len(remaining); i++ {
			d := geo.DistanceKm(lastLat, lastLng, remaining[i].lat, remaining[i].lng)
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
		next := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)
		ordered = append(ordered, next)
		lastLat, lastLng = next.lat, next.lng
	}
	return ordered
}

func buildDay(day DayDate, places []positioned) models.DayCourse {
	items := make([]models.CourseItem, 0, 2*len(places))
	for i, p := range places {
		lat, lng := p.lat, p.lng
		items = append(items, models.PlaceItem(p.name, &lat, &lng))
		if i < len(places)-1 {
			items = append(items, models.TransitItem(p.name, places[i+1].name))
		}
	}
	return models.DayCourse{
		DayLabel:  day.DayLabel,
		Date:      day.Date,
		DateLabel: day.DateLabel,
		Items:     items,
	}
}
