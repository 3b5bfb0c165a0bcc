package models

// Destination is a single place picked for a plan, either from a manual
// search selection or an accepted AI suggestion. Coordinates are absent when
// the name was typed free-form with no search result behind it.
type Destination struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
	Source string   `json:"source"` // "manual" | "ai"
}

type CourseItemType string

const (
	ItemPlace   CourseItemType = "place"
	ItemTransit CourseItemType = "transit"
)

// CourseItem is one entry in a day's course: a place to visit, or a transit
// placeholder between the two adjacent places. Exactly one of the field
// groups is populated depending on Type.
type CourseItem struct {
	Type CourseItemType `json:"type"`

	// place
	Name string   `json:"name,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`

	// transit
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func PlaceItem(name string, lat, lng *float64) CourseItem {
	return CourseItem{Type: ItemPlace, Name: name, Lat: lat, Lng: lng}
}

func TransitItem(from, to string) CourseItem {
	return CourseItem{Type: ItemTransit, From: from, To: to}
}

// DayCourse is one calendar day of the generated itinerary. Items alternate
// place, (transit, place)* in travel order.
type DayCourse struct {
	DayLabel  string       `json:"dayLabel"`
	Date      string       `json:"date"`
	DateLabel string       `json:"dateLabel"`
	Items     []CourseItem `json:"items"`
}

// TravelPlan is the persisted aggregate. The plan collection is stored
// newest-first as a single JSON array.
type TravelPlan struct {
	ID            string `json:"id"`
	FlightNumber  string `json:"flightNumber"`
	TravelStart   string `json:"travelStart"` // ISO date
	TravelEnd     string `json:"travelEnd"`   // ISO date
	TravelPace    string `json:"travelPace"`  // slow | normal | busy
	MustGo        string `json:"mustGo"`
	MustEat       string `json:"mustEat"`
	Accommodation string `json:"accommodation"` // booked | need
	CreatedAt     string `json:"createdAt"`

	// ArrivalTime is the mocked "14:30" style lookup from the flight number.
	ArrivalTime string `json:"arrivalTime,omitempty"`
	// FinalDestinations is the user-curated place list that seeds generation.
	FinalDestinations []Destination `json:"finalDestinations,omitempty"`
	// GeneratedCourse caches the last sequencing result.
	GeneratedCourse []DayCourse `json:"generatedCourse,omitempty"`
	// PlaceOrder is the drag-reorder override. When set it supersedes the
	// order implied by GeneratedCourse.
	PlaceOrder []string `json:"placeOrder,omitempty"`
}

// PlanFormData is the input shape for building or updating a plan.
type PlanFormData struct {
	FlightNumber      string        `json:"flightNumber"`
	TravelStart       string        `json:"travelStart"`
	TravelEnd         string        `json:"travelEnd"`
	TravelPace        string        `json:"travelPace"`
	MustGo            string        `json:"mustGo"`
	MustEat           string        `json:"mustEat"`
	Accommodation     string        `json:"accommodation"`
	ArrivalTime       string        `json:"arrivalTime,omitempty"`
	FinalDestinations []Destination `json:"finalDestinations,omitempty"`
	GeneratedCourse   []DayCourse   `json:"generatedCourse,omitempty"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingFlightNumber ValidationError = "Please fill in the details (Flight Number)."
	ErrMissingTravelStart  ValidationError = "Please fill in the details (Travel start date)."
	ErrMissingTravelEnd    ValidationError = "Please fill in the details (Travel end date)."
)
