package plan

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kogoapp/kogo-server/internal/course"
	"github.com/kogoapp/kogo-server/internal/models"
	"github.com/kogoapp/kogo-server/internal/storage"
)

// The whole plan collection lives under one key, newest first, mirroring the
// single-record layout the web client used.
const plansKey = "kogo:plans"

var ErrPlanNotFound = errors.New("plan not found")

// Store owns the persisted plan collection. Every mutation is a full
// read-modify-write of the collection blob; the backend is a single-document
// key-value store, so there is no finer-grained update to do.
type Store struct {
	blobs storage.BlobStore
}

func NewStore(blobs storage.BlobStore) *Store {
	return &Store{blobs: blobs}
}

// List returns all plans, newest first. A missing, corrupt, or non-array
// record reads as an empty collection, never an error.
func (s *Store) List(ctx context.Context) []models.TravelPlan {
	data, ok, err := s.blobs.Get(ctx, plansKey)
	if err != nil || !ok {
		return []models.TravelPlan{}
	}

	var plans []models.TravelPlan
	if err := json.Unmarshal(data, &plans); err != nil {
		return []models.TravelPlan{}
	}
	if plans == nil {
		return []models.TravelPlan{}
	}
	return plans
}

func (s *Store) write(ctx context.Context, plans []models.TravelPlan) error {
	data, err := json.Marshal(plans)
	if err != nil {
		return err
	}
	return s.blobs.Set(ctx, plansKey, data)
}

// Save prepends a new plan to the collection.
func (s *Store) Save(ctx context.Context, p models.TravelPlan) error {
	plans := append([]models.TravelPlan{p}, s.List(ctx)...)
	return s.write(ctx, plans)
}

// Update replaces the plan with a matching id in place. An unknown id is
// prepended instead: a defensive upsert, the caller meant to keep the data.
func (s *Store) Update(ctx context.Context, p models.TravelPlan) error {
	plans := s.List(ctx)
	found := false
	for i := range plans {
		if plans[i].ID == p.ID {
			plans[i] = p
			found = true
			break
		}
	}
	if !found {
		plans = append([]models.TravelPlan{p}, plans...)
	}
	return s.write(ctx, plans)
}

// Delete removes the plan with the given id. Deleting an unknown id is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	plans := s.List(ctx)
	kept := plans[:0]
	for _, p := range plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.write(ctx, kept)
}

func (s *Store) GetByID(ctx context.Context, id string) (models.TravelPlan, error) {
	for _, p := range s.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return models.TravelPlan{}, ErrPlanNotFound
}

// SetPlaceOrder overwrites the drag-reorder override for a plan and persists
// it. Only PlaceOrder changes; the generated course stays cached.
func (s *Store) SetPlaceOrder(ctx context.Context, id string, order []string) (models.TravelPlan, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return models.TravelPlan{}, err
	}
	p.PlaceOrder = order
	if err := s.Update(ctx, p); err != nil {
		return models.TravelPlan{}, err
	}
	return p, nil
}

// BuildOptions carry identity overrides for edits: a plan keeps its id and
// createdAt across updates.
type BuildOptions struct {
	PlanID    string
	CreatedAt string
}

// Build assembles a TravelPlan from form data: assigns identity, derives the
// arrival time from the flight number, derives mustGo from the destination
// names when the free-text field is blank, and generates the course when
// destinations and dates are present and no precomputed course was supplied.
// Empty optional collections are omitted, not stored as empty arrays.
func Build(form models.PlanFormData, opts BuildOptions) models.TravelPlan {
	id := opts.PlanID
	if id == "" {
		id = "plan_" + uuid.NewString()
	}
	createdAt := opts.CreatedAt
	if createdAt == "" {
		createdAt = time.Now().UTC().Format(time.RFC3339)
	}

	arrivalTime := form.ArrivalTime
	if arrivalTime == "" {
		arrivalTime = ArrivalTime(form.FlightNumber)
	}

	destinations := form.FinalDestinations
	generated := form.GeneratedCourse
	if len(generated) == 0 && len(destinations) > 0 && form.TravelStart != "" && form.TravelEnd != "" {
		generated = course.Generate(destinations, form.TravelStart, form.TravelEnd, form.TravelPace, arrivalTime)
	}

	mustGo := strings.TrimSpace(form.MustGo)
	if mustGo == "" {
		names := make([]string, len(destinations))
		for i, d := range destinations {
			names[i] = d.Name
		}
		mustGo = strings.Join(names, ", ")
	}

	p := models.TravelPlan{
		ID:            id,
		FlightNumber:  strings.TrimSpace(form.FlightNumber),
		TravelStart:   form.TravelStart,
		TravelEnd:     form.TravelEnd,
		TravelPace:    form.TravelPace,
		MustGo:        mustGo,
		MustEat:       strings.TrimSpace(form.MustEat),
		Accommodation: form.Accommodation,
		CreatedAt:     createdAt,
		ArrivalTime:   arrivalTime,
	}
	if len(destinations) > 0 {
		p.FinalDestinations = destinations
	}
	if len(generated) > 0 {
		p.GeneratedCourse = generated
	}
	return p
}

// ValidateForm checks the required fields; the first failure wins.
func ValidateForm(form models.PlanFormData) error {
	if strings.TrimSpace(form.FlightNumber) == "" {
		return models.ErrMissingFlightNumber
	}
	if strings.TrimSpace(form.TravelStart) == "" {
		return models.ErrMissingTravelStart
	}
	if strings.TrimSpace(form.TravelEnd) == "" {
		return models.ErrMissingTravelEnd
	}
	return nil
}

var mustGoSeps = func(r rune) bool {
	return r == ',' || r == ';' || r == '\n'
}

// GetOrderedPlaces resolves the display order of a plan's places:
// the explicit placeOrder override first, then the flattened generated
// course, then the mustGo free text split on comma/semicolon/newline,
// and finally the single-element "Seoul" fallback.
func GetOrderedPlaces(p models.TravelPlan) []string {
	if len(p.PlaceOrder) > 0 {
		return p.PlaceOrder
	}

	if len(p.GeneratedCourse) > 0 {
		var names []string
		for _, day := range p.GeneratedCourse {
			for _, item := range day.Items {
				switch item.Type {
				case models.ItemPlace:
					names = append(names, item.Name)
				case models.ItemTransit:
					// transit placeholders carry no place of their own
				}
			}
		}
		return names
	}

	if strings.TrimSpace(p.MustGo) == "" {
		return []string{"Seoul"}
	}
	var names []string
	for _, part := range strings.FieldsFunc(p.MustGo, mustGoSeps) {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return []string{"Seoul"}
	}
	return names
}
