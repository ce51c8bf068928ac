// README: Trip request model, capability set, and per-capability validation.
package trip

import (
	"errors"
	"fmt"
	"time"
)

// Capability identifies one of the trip-planning output kinds.
type Capability string

const (
	CapDestinations  Capability = "destination_suggestions"
	CapLocalInsights Capability = "local_insights"
	CapItinerary     Capability = "itinerary"
	CapSafety        Capability = "safety_info"
	CapPacking       Capability = "packing_list"
	CapBudget        Capability = "budget_breakdown"
	CapTransport     Capability = "transport_options"
	CapAccommodation Capability = "accommodation_options"
	CapReviews       Capability = "review_summary"
)

// ErrMissingField is wrapped by every validation failure so callers can
// classify without string matching.
var ErrMissingField = errors.New("missing required field")

// MinMax is an inclusive budget range in the request currency.
type MinMax struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BudgetRange splits the trip budget across the four spend categories.
type BudgetRange struct {
	Transport     MinMax `json:"transport"`
	Accommodation MinMax `json:"accommodation"`
	Food          MinMax `json:"food"`
	Entertainment MinMax `json:"entertainment"`
}

func (b BudgetRange) empty() bool {
	return b == BudgetRange{}
}

// Request carries the user-supplied trip facts. It is built once at the
// HTTP boundary and never mutated after Normalize.
type Request struct {
	TravelType    string
	TotalBudget   int
	Currency      string
	BudgetRange   *BudgetRange
	People        int
	GroupType     string
	DurationDays  int
	Interests     string
	StartDate     string // YYYY-MM-DD, optional
	PlanningStyle string // "holiday_based" | "season_based", optional
	Origin        string // optional, used for transport route estimates
	Destination   string
	Attractions   []string
	Cuisines      []string
}

// Normalize fills derived fields: the default currency and, when only a
// total budget was given, the category split used by the original planner
// (25-35% transport, 35-45% accommodation, 15-25% food, 5-15% entertainment).
func (r Request) Normalize() Request {
	if r.Currency == "" {
		r.Currency = "INR"
	}
	if (r.BudgetRange == nil || r.BudgetRange.empty()) && r.TotalBudget > 0 {
		total := r.TotalBudget
		r.BudgetRange = &BudgetRange{
			Transport:     MinMax{Min: total * 25 / 100, Max: total * 35 / 100},
			Accommodation: MinMax{Min: total * 35 / 100, Max: total * 45 / 100},
			Food:          MinMax{Min: total * 15 / 100, Max: total * 25 / 100},
			Entertainment: MinMax{Min: total * 5 / 100, Max: total * 15 / 100},
		}
	}
	return r
}

// Validate checks the capability's required-field set. It must be called
// before any provider is invoked.
func (r Request) Validate(cap Capability) error {
	if r.TravelType == "" {
		return fmt.Errorf("%w: travel_type", ErrMissingField)
	}
	if r.GroupType == "" {
		return fmt.Errorf("%w: group_type", ErrMissingField)
	}
	if r.People < 1 {
		return fmt.Errorf("%w: no_of_people", ErrMissingField)
	}
	if r.DurationDays < 1 {
		return fmt.Errorf("%w: duration", ErrMissingField)
	}
	if r.Interests == "" {
		return fmt.Errorf("%w: interests", ErrMissingField)
	}

	switch cap {
	case CapDestinations:
		// Destination is what this capability produces.
	case CapBudget:
		if r.TotalBudget <= 0 && (r.BudgetRange == nil || r.BudgetRange.empty()) {
			return fmt.Errorf("%w: total_budget or budget_range", ErrMissingField)
		}
	case CapItinerary:
		if r.Destination == "" {
			return fmt.Errorf("%w: selected_place", ErrMissingField)
		}
		if len(r.Attractions) == 0 {
			return fmt.Errorf("%w: selected_attractions", ErrMissingField)
		}
	case CapLocalInsights, CapSafety, CapPacking, CapTransport, CapAccommodation, CapReviews:
		if r.Destination == "" {
			return fmt.Errorf("%w: selected_place", ErrMissingField)
		}
	default:
		return fmt.Errorf("unknown capability %q", cap)
	}
	return nil
}

// WantsLiveWeather reports whether destination suggestions should be
// enriched with current conditions: only for holiday-based planning with
// the trip starting within the next three days.
func (r Request) WantsLiveWeather(now time.Time) bool {
	if r.PlanningStyle != "holiday_based" || r.StartDate == "" {
		return false
	}
	start, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return false
	}
	days := int(start.Sub(now.Truncate(24 * time.Hour)).Hours() / 24)
	return days >= 0 && days <= 3
}
