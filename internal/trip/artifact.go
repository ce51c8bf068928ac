// README: Capability result variants and fail-closed validation.
package trip

import (
	"errors"
	"fmt"
)

// ErrIncomplete is wrapped by every artifact validation failure. A result
// that fails validation is discarded; partial artifacts are never returned.
var ErrIncomplete = errors.New("incomplete artifact")

// WeatherSnapshot is live current-conditions data attached to a suggestion.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// TravelCostEstimate holds round-trip cost bands per mode.
type TravelCostEstimate struct {
	Flight string `json:"flight"`
	Train  string `json:"train"`
	Bus    string `json:"bus"`
}

// DestinationSuggestion is one candidate destination with evaluation info.
type DestinationSuggestion struct {
	Place              string             `json:"place"`
	Reason             string             `json:"reason"`
	WeatherSuitability string             `json:"weather_suitability"`
	TravelCostEstimate TravelCostEstimate `json:"travel_cost_estimate"`
	AccommodationRange string             `json:"accommodation_range"`
	SafetyRating       string             `json:"safety_rating"`
	Accessibility      string             `json:"accessibility"`
	PermitRequired     string             `json:"permit_required"`
	Photos             []string           `json:"photos"`
	Weather            *WeatherSnapshot   `json:"weather,omitempty"`
}

// Attraction is a sight recommended by the local-insights capability.
type Attraction struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	WhyVisit      string `json:"why_visit"`
	BestTimeOfDay string `json:"best_time_of_day"`
}

// Dish is a local-cuisine recommendation.
type Dish struct {
	Dish              string   `json:"dish"`
	Description       string   `json:"description"`
	RecommendedPlaces []string `json:"recommended_places"`
}

type LocalInsights struct {
	TopAttractions []Attraction `json:"top_attractions"`
	LocalCuisine   []Dish       `json:"local_cuisine"`
}

// StepOption is a choice inside an itinerary step (a stay, a restaurant,
// or a travel mode).
type StepOption struct {
	Name           string   `json:"name,omitempty"`
	Mode           string   `json:"mode,omitempty"`
	Location       string   `json:"location,omitempty"`
	PriceRange     string   `json:"price_range,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	CuisinesServed []string `json:"cuisines_served,omitempty"`
	Time           string   `json:"time,omitempty"`
	Cost           string   `json:"cost,omitempty"`
	ArrivalTime    string   `json:"arrival_time,omitempty"`
	DepartTime     string   `json:"depart_time,omitempty"`
}

// ItineraryStep is one entry in a day plan. Type is one of
// "spot", "accommodation", "restaurant", "cuisine", "break", "travel";
// the other fields are populated per type.
type ItineraryStep struct {
	Type          string       `json:"type"`
	Name          string       `json:"name,omitempty"`
	Category      string       `json:"category,omitempty"`
	VisitTime     string       `json:"visit_time,omitempty"`
	MustVisitTime string       `json:"must_visit_time,omitempty"`
	Reason        string       `json:"reason,omitempty"`
	ArrivalTime   string       `json:"arrival_time,omitempty"`
	DepartTime    string       `json:"depart_time,omitempty"`
	Dish          string       `json:"dish,omitempty"`
	Origin        string       `json:"origin,omitempty"`
	TimeToConsume string       `json:"time_to_consume,omitempty"`
	Duration      string       `json:"duration,omitempty"`
	Activity      string       `json:"activity,omitempty"`
	From          string       `json:"from,omitempty"`
	To            string       `json:"to,omitempty"`
	Options       []StepOption `json:"options,omitempty"`
}

type ItineraryDay struct {
	Day   int             `json:"day"`
	Steps []ItineraryStep `json:"steps"`
}

type Itinerary struct {
	Days []ItineraryDay `json:"itinerary"`
}

type NeighborhoodNote struct {
	Area            string `json:"area"`
	Note            string `json:"note"`
	BestTimeToVisit string `json:"best_time_to_visit"`
}

type HealthNotes struct {
	FoodWaterSafety string `json:"food_water_safety"`
	MosquitoAdvice  string `json:"mosquito_advice"`
	AltitudeNote    string `json:"altitude_note"`
}

type SafetyInfo struct {
	OverallRiskLevel   string             `json:"overall_risk_level"`
	CommonScams        []string           `json:"common_scams"`
	NeighborhoodSafety []NeighborhoodNote `json:"neighborhood_safety"`
	LocalLawsAndNorms  []string           `json:"local_laws_and_norms"`
	Health             HealthNotes        `json:"health"`
	EmergencyContacts  map[string]string  `json:"emergency_contacts"`
	SoloTravelTips     []string           `json:"solo_travel_tips"`
}

type PackingItem struct {
	Item string `json:"item"`
	Why  string `json:"why"`
	Qty  string `json:"qty"`
}

type PackingList struct {
	Season                   string        `json:"season"`
	Essentials               []PackingItem `json:"essentials"`
	Clothing                 []PackingItem `json:"clothing"`
	Footwear                 []PackingItem `json:"footwear"`
	ToiletriesHealth         []PackingItem `json:"toiletries_health"`
	Gadgets                  []PackingItem `json:"gadgets"`
	DocumentsMoney           []PackingItem `json:"documents_money"`
	OptionalActivitySpecific []PackingItem `json:"optional_activity_specific"`
}

type CategoryRange struct {
	Transport     []string `json:"transport"`
	Accommodation []string `json:"accommodation"`
	Food          []string `json:"food"`
	Entertainment []string `json:"entertainment"`
}

type PerDayEstimate struct {
	Transport     string `json:"transport"`
	Accommodation string `json:"accommodation"`
	Food          string `json:"food"`
	Entertainment string `json:"entertainment"`
	Total         string `json:"total"`
}

type BudgetBreakdown struct {
	BudgetRange             CategoryRange  `json:"budget_range"`
	PerDayEstimatePerPerson PerDayEstimate `json:"per_day_estimate_per_person"`
	Notes                   []string       `json:"notes"`
}

type IntercityOption struct {
	Mode       string `json:"mode"`
	From       string `json:"from"`
	To         string `json:"to"`
	Time       string `json:"time"`
	ApproxCost string `json:"approx_cost"`
	ProTip     string `json:"pro_tip"`
}

type InCityOption struct {
	Mode       string `json:"mode"`
	WhenToUse  string `json:"when_to_use"`
	ApproxCost string `json:"approx_cost"`
	Coverage   string `json:"coverage"`
	ProTip     string `json:"pro_tip"`
}

// RouteEstimate is live driving data from the routes provider, attached
// when the request carries an origin.
type RouteEstimate struct {
	DurationMinutes int    `json:"duration_minutes"`
	Distance        string `json:"distance"`
}

type TransportOptions struct {
	Intercity     []IntercityOption `json:"intercity"`
	InCity        []InCityOption    `json:"in_city"`
	RouteEstimate *RouteEstimate    `json:"route_estimate,omitempty"`
}

type Stay struct {
	Name                string `json:"name"`
	Type                string `json:"type"`
	Area                string `json:"area"`
	ApproxPricePerNight string `json:"approx_price_per_night"`
	Suits               string `json:"suits"`
	Vibe                string `json:"vibe"`
	Why                 string `json:"why"`
}

type Neighborhood struct {
	Name    string   `json:"name"`
	GoodFor []string `json:"good_for"`
	AvoidIf []string `json:"avoid_if"`
}

type AccommodationOptions struct {
	Stays         []Stay         `json:"stays"`
	Neighborhoods []Neighborhood `json:"neighborhoods"`
	Photos        []string       `json:"photos,omitempty"`
}

type ReviewedPlace struct {
	Name          string   `json:"name"`
	AverageRating float64  `json:"average_rating"`
	Pros          []string `json:"pros"`
	Cons          []string `json:"cons"`
	Tip           string   `json:"tip"`
}

type ReviewSummary struct {
	Attractions []ReviewedPlace `json:"attractions"`
	Restaurants []ReviewedPlace `json:"restaurants"`
}

// Result is the tagged union over the nine capability outputs. Exactly one
// variant field is set, matching Capability.
type Result struct {
	Capability    Capability
	Destinations  []DestinationSuggestion
	LocalInsights *LocalInsights
	Itinerary     *Itinerary
	Safety        *SafetyInfo
	Packing       *PackingList
	Budget        *BudgetBreakdown
	Transport     *TransportOptions
	Accommodation *AccommodationOptions
	Reviews       *ReviewSummary
}

// Payload returns the variant value for JSON rendering.
func (r *Result) Payload() any {
	switch r.Capability {
	case CapDestinations:
		return map[string]any{"places": r.Destinations}
	case CapLocalInsights:
		return r.LocalInsights
	case CapItinerary:
		return r.Itinerary
	case CapSafety:
		return r.Safety
	case CapPacking:
		return r.Packing
	case CapBudget:
		return r.Budget
	case CapTransport:
		return r.Transport
	case CapAccommodation:
		return r.Accommodation
	case CapReviews:
		return r.Reviews
	}
	return nil
}

func incomplete(field string) error {
	return fmt.Errorf("%w: %s", ErrIncomplete, field)
}

// ValidateDestinations checks the required fields of each suggestion.
func ValidateDestinations(ds []DestinationSuggestion) error {
	if len(ds) == 0 {
		return incomplete("places")
	}
	for i, d := range ds {
		switch {
		case d.Place == "":
			return incomplete(fmt.Sprintf("places[%d].place", i))
		case d.Reason == "":
			return incomplete(fmt.Sprintf("places[%d].reason", i))
		case d.WeatherSuitability == "":
			return incomplete(fmt.Sprintf("places[%d].weather_suitability", i))
		case d.SafetyRating == "":
			return incomplete(fmt.Sprintf("places[%d].safety_rating", i))
		case d.Accessibility == "":
			return incomplete(fmt.Sprintf("places[%d].accessibility", i))
		}
	}
	return nil
}

func (v *LocalInsights) Validate() error {
	if len(v.TopAttractions) == 0 {
		return incomplete("top_attractions")
	}
	if len(v.LocalCuisine) == 0 {
		return incomplete("local_cuisine")
	}
	for i, a := range v.TopAttractions {
		if a.Name == "" || a.Description == "" {
			return incomplete(fmt.Sprintf("top_attractions[%d]", i))
		}
	}
	return nil
}

// Validate enforces one day entry per trip day, each with at least one step.
func (v *Itinerary) Validate(durationDays int) error {
	if len(v.Days) != durationDays {
		return fmt.Errorf("%w: expected %d day entries, got %d", ErrIncomplete, durationDays, len(v.Days))
	}
	for i, d := range v.Days {
		if len(d.Steps) == 0 {
			return incomplete(fmt.Sprintf("itinerary[%d].steps", i))
		}
		if d.Day < 1 {
			return incomplete(fmt.Sprintf("itinerary[%d].day", i))
		}
	}
	return nil
}

func (v *SafetyInfo) Validate() error {
	switch {
	case v.OverallRiskLevel == "":
		return incomplete("overall_risk_level")
	case len(v.CommonScams) == 0:
		return incomplete("common_scams")
	case len(v.EmergencyContacts) == 0:
		return incomplete("emergency_contacts")
	}
	return nil
}

func (v *PackingList) Validate() error {
	switch {
	case v.Season == "":
		return incomplete("season")
	case len(v.Essentials) == 0:
		return incomplete("essentials")
	case len(v.Clothing) == 0:
		return incomplete("clothing")
	}
	return nil
}

func (v *BudgetBreakdown) Validate() error {
	r := v.BudgetRange
	if len(r.Transport) != 2 || len(r.Accommodation) != 2 || len(r.Food) != 2 || len(r.Entertainment) != 2 {
		return incomplete("budget_range")
	}
	if v.PerDayEstimatePerPerson.Total == "" {
		return incomplete("per_day_estimate_per_person.total")
	}
	return nil
}

func (v *TransportOptions) Validate() error {
	if len(v.Intercity) == 0 {
		return incomplete("intercity")
	}
	if len(v.InCity) == 0 {
		return incomplete("in_city")
	}
	for i, o := range v.Intercity {
		if o.Mode == "" {
			return incomplete(fmt.Sprintf("intercity[%d].mode", i))
		}
	}
	return nil
}

func (v *AccommodationOptions) Validate() error {
	if len(v.Stays) == 0 {
		return incomplete("stays")
	}
	for i, s := range v.Stays {
		if s.Name == "" || s.Type == "" {
			return incomplete(fmt.Sprintf("stays[%d]", i))
		}
	}
	return nil
}

func (v *ReviewSummary) Validate() error {
	if len(v.Attractions) == 0 && len(v.Restaurants) == 0 {
		return incomplete("attractions")
	}
	return nil
}
