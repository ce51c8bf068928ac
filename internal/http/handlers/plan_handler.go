// README: Plan handlers: one endpoint per trip-planning capability.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"yatra/internal/history"
	"yatra/internal/trip"
)

// TripPlanner is the pipeline contract the handlers depend on.
type TripPlanner interface {
	Plan(ctx context.Context, cap trip.Capability, req trip.Request) (*trip.Result, error)
}

const defaultPlanTimeout = 60 * time.Second

type PlanHandler struct {
	planner TripPlanner
	history *history.Service
	timeout time.Duration
}

// NewPlanHandler wires the pipeline and the audit service. history may be
// nil; timeout <= 0 falls back to the default.
func NewPlanHandler(p TripPlanner, h *history.Service, timeout time.Duration) *PlanHandler {
	if timeout <= 0 {
		timeout = defaultPlanTimeout
	}
	return &PlanHandler{planner: p, history: h, timeout: timeout}
}

// Request bodies mirror the original REST API DTOs: category budget ranges
// arrive as [min, max] pairs.

type budgetRangeBody struct {
	Transport     *[2]int `json:"transport"`
	Accommodation *[2]int `json:"accommodation"`
	Food          *[2]int `json:"food"`
	Entertainment *[2]int `json:"entertainment"`
}

type preferencesBody struct {
	TravelType    string           `json:"travel_type"`
	TotalBudget   int              `json:"total_budget"`
	Currency      string           `json:"currency"`
	BudgetRange   *budgetRangeBody `json:"budget_range"`
	NoOfPeople    int              `json:"no_of_people"`
	GroupType     string           `json:"group_type"`
	Duration      int              `json:"duration"`
	Interests     string           `json:"interests"`
	StartDate     string           `json:"start_date"`
	PlanningStyle string           `json:"planning_style"`
	Origin        string           `json:"origin"`
}

type preferencesOnlyBody struct {
	Preferences preferencesBody `json:"preferences"`
}

type localRequestBody struct {
	Preferences   preferencesBody `json:"preferences"`
	SelectedPlace string          `json:"selected_place"`
}

type scheduleRequestBody struct {
	Preferences         preferencesBody `json:"preferences"`
	SelectedPlace       string          `json:"selected_place"`
	SelectedAttractions []string        `json:"selected_attractions"`
	SelectedCuisines    []string        `json:"selected_cuisines"`
}

func toMinMax(p *[2]int) trip.MinMax {
	if p == nil {
		return trip.MinMax{}
	}
	return trip.MinMax{Min: p[0], Max: p[1]}
}

func (b preferencesBody) toRequest() trip.Request {
	req := trip.Request{
		TravelType:    strings.TrimSpace(b.TravelType),
		TotalBudget:   b.TotalBudget,
		Currency:      strings.TrimSpace(b.Currency),
		People:        b.NoOfPeople,
		GroupType:     strings.TrimSpace(b.GroupType),
		DurationDays:  b.Duration,
		Interests:     strings.TrimSpace(b.Interests),
		StartDate:     strings.TrimSpace(b.StartDate),
		PlanningStyle: strings.TrimSpace(b.PlanningStyle),
		Origin:        strings.TrimSpace(b.Origin),
	}
	if b.BudgetRange != nil {
		req.BudgetRange = &trip.BudgetRange{
			Transport:     toMinMax(b.BudgetRange.Transport),
			Accommodation: toMinMax(b.BudgetRange.Accommodation),
			Food:          toMinMax(b.BudgetRange.Food),
			Entertainment: toMinMax(b.BudgetRange.Entertainment),
		}
	}
	return req
}

// run executes the pipeline for one capability with a request-scoped
// timeout and records the outcome.
func (h *PlanHandler) run(c *gin.Context, cap trip.Capability, req trip.Request) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	res, err := h.planner.Plan(ctx, cap, req)
	h.history.Record(cap, req, outcomeFor(err))
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res.Payload())
}

// bindLocal decodes a preferences+selected_place body into a trip request.
func (h *PlanHandler) bindLocal(c *gin.Context) (trip.Request, bool) {
	var body localRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, history.OutcomeInvalidRequest, "invalid json")
		return trip.Request{}, false
	}
	req := body.Preferences.toRequest()
	req.Destination = strings.TrimSpace(body.SelectedPlace)
	return req, true
}

// Generate handles POST /generate (destination suggestions).
func (h *PlanHandler) Generate(c *gin.Context) {
	var body preferencesOnlyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, history.OutcomeInvalidRequest, "invalid json")
		return
	}
	h.run(c, trip.CapDestinations, body.Preferences.toRequest())
}

// LocalInfo handles POST /local-info.
func (h *PlanHandler) LocalInfo(c *gin.Context) {
	if req, ok := h.bindLocal(c); ok {
		h.run(c, trip.CapLocalInsights, req)
	}
}

// ScheduleTrip handles POST /schedule-trip (itinerary).
func (h *PlanHandler) ScheduleTrip(c *gin.Context) {
	var body scheduleRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, history.OutcomeInvalidRequest, "invalid json")
		return
	}
	req := body.Preferences.toRequest()
	req.Destination = strings.TrimSpace(body.SelectedPlace)
	req.Attractions = body.SelectedAttractions
	req.Cuisines = body.SelectedCuisines
	h.run(c, trip.CapItinerary, req)
}

// SafetyInfo handles POST /safety-info.
func (h *PlanHandler) SafetyInfo(c *gin.Context) {
	if req, ok := h.bindLocal(c); ok {
		h.run(c, trip.CapSafety, req)
	}
}

// PackingList handles POST /packing-list.
func (h *PlanHandler) PackingList(c *gin.Context) {
	if req, ok := h.bindLocal(c); ok {
		h.run(c, trip.CapPacking, req)
	}
}

// BudgetBreakdown handles POST /budget-breakdown.
func (h *PlanHandler) BudgetBreakdown(c *gin.Context) {
	var body preferencesOnlyBody
	if err := c.ShouldBindJSON(&body); err != nil {
		writeError(c, http.StatusBadRequest, history.OutcomeInvalidRequest, "invalid json")
		return
	}
	h.run(c, trip.CapBudget, body.Preferences.toRequest())
}

// TransportOptions handles POST /transport-options.
func (h *PlanHandler) TransportOptions(c *gin.Context) {
	if req, ok := h.bindLocal(c); ok {
		h.run(c, trip.CapTransport, req)
	}
}

// AccommodationSuggestions handles POST /accommodation-suggestions.
func (h *PlanHandler) AccommodationSuggestions(c *gin.Context) {
	if req, ok := h.bindLocal(c); ok {
		h.run(c, trip.CapAccommodation, req)
	}
}

// Reviews handles POST /reviews.
func (h *PlanHandler) Reviews(c *gin.Context) {
	if req, ok := h.bindLocal(c); ok {
		h.run(c, trip.CapReviews, req)
	}
}
