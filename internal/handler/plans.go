package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kogoapp/kogo-server/internal/course"
	"github.com/kogoapp/kogo-server/internal/models"
	"github.com/kogoapp/kogo-server/internal/plan"
)

type PlanHandler struct {
	store *plan.Store
}

func NewPlanHandler(store *plan.Store) *PlanHandler {
	return &PlanHandler{store: store}
}

// List handles GET /api/plans, newest first.
func (h *PlanHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.List(c.Request().Context()))
}

// Create handles POST /api/plans: validate, build (deriving arrival time,
// mustGo, and the generated course), and prepend to the collection.
func (h *PlanHandler) Create(c echo.Context) error {
	var form models.PlanFormData
	if err := c.Bind(&form); err != nil {
		return bindError(c, err)
	}
	if err := plan.ValidateForm(form); err != nil {
		return validationError(c, err)
	}

	built := plan.Build(form, plan.BuildOptions{})
	if err := h.store.Save(c.Request().Context(), built); err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusCreated, built)
}

// Get handles GET /api/plans/:id.
func (h *PlanHandler) Get(c echo.Context) error {
	p, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// Update handles PUT /api/plans/:id: rebuild from the form, keeping the
// original id and createdAt.
func (h *PlanHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	existing, err := h.store.GetByID(ctx, id)
	if err != nil {
		return notFound(c, err)
	}

	var form models.PlanFormData
	if err := c.Bind(&form); err != nil {
		return bindError(c, err)
	}
	if err := plan.ValidateForm(form); err != nil {
		return validationError(c, err)
	}

	built := plan.Build(form, plan.BuildOptions{
		PlanID:    existing.ID,
		CreatedAt: existing.CreatedAt,
	})
	if err := h.store.Update(ctx, built); err != nil {
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, built)
}

// Delete handles DELETE /api/plans/:id.
func (h *PlanHandler) Delete(c echo.Context) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return storageError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type placeOrderRequest struct {
	PlaceOrder []string `json:"placeOrder"`
}

// SetOrder handles PUT /api/plans/:id/order, persisting the drag-reorder
// override.
func (h *PlanHandler) SetOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	updated, err := h.store.SetPlaceOrder(c.Request().Context(), c.Param("id"), req.PlaceOrder)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return notFound(c, err)
		}
		return storageError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Places handles GET /api/plans/:id/places, resolving the display order:
// placeOrder override, then generated course, then mustGo, then "Seoul".
func (h *PlanHandler) Places(c echo.Context) error {
	p, err := h.store.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return notFound(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"places": plan.GetOrderedPlaces(p)})
}

// Preview handles POST /api/plans/preview: run the sequencer on the form
// without persisting anything.
func (h *PlanHandler) Preview(c echo.Context) error {
	var form models.PlanFormData
	if err := c.Bind(&form); err != nil {
		return bindError(c, err)
	}

	arrivalTime := form.ArrivalTime
	if arrivalTime == "" {
		arrivalTime = plan.ArrivalTime(form.FlightNumber)
	}
	generated := course.Generate(form.FinalDestinations, form.TravelStart, form.TravelEnd, form.TravelPace, arrivalTime)
	if generated == nil {
		generated = []models.DayCourse{}
	}
	return c.JSON(http.StatusOK, echo.Map{"course": generated})
}

func bindError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Failed to parse request body: " + err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func validationError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Code:    http.StatusBadRequest,
	})
}

func notFound(c echo.Context, err error) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: err.Error(),
		Code:    http.StatusNotFound,
	})
}

func storageError(c echo.Context, err error) error {
	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "storage_error",
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
