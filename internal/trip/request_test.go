package trip

import (
	"errors"
	"testing"
	"time"
)

func validRequest() Request {
	return Request{
		TravelType:   "leisure",
		TotalBudget:  60000,
		People:       2,
		GroupType:    "couple",
		DurationDays: 7,
		Interests:    "mountains, trekking, culture",
		Destination:  "Manali",
		Attractions:  []string{"Solang Valley"},
	}
}

func TestNormalize_BudgetAutoSplit(t *testing.T) {
	req := validRequest()
	req.BudgetRange = nil
	req.TotalBudget = 100000

	got := req.Normalize()

	if got.Currency != "INR" {
		t.Errorf("Currency = %q, want INR", got.Currency)
	}
	if got.BudgetRange == nil {
		t.Fatal("BudgetRange not derived from total budget")
	}
	b := got.BudgetRange
	checks := []struct {
		name     string
		got      MinMax
		min, max int
	}{
		{"transport", b.Transport, 25000, 35000},
		{"accommodation", b.Accommodation, 35000, 45000},
		{"food", b.Food, 15000, 25000},
		{"entertainment", b.Entertainment, 5000, 15000},
	}
	for _, c := range checks {
		if c.got.Min != c.min || c.got.Max != c.max {
			t.Errorf("%s = %+v, want [%d, %d]", c.name, c.got, c.min, c.max)
		}
	}
}

func TestNormalize_KeepsExplicitRange(t *testing.T) {
	req := validRequest()
	req.BudgetRange = &BudgetRange{Transport: MinMax{Min: 1, Max: 2}}

	got := req.Normalize()
	if got.BudgetRange.Transport != (MinMax{Min: 1, Max: 2}) {
		t.Errorf("explicit budget range was overwritten: %+v", got.BudgetRange.Transport)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		cap     Capability
		mutate  func(*Request)
		wantErr bool
	}{
		{"valid itinerary", CapItinerary, func(r *Request) {}, false},
		{"missing travel type", CapItinerary, func(r *Request) { r.TravelType = "" }, true},
		{"missing group type", CapReviews, func(r *Request) { r.GroupType = "" }, true},
		{"zero people", CapSafety, func(r *Request) { r.People = 0 }, true},
		{"zero duration", CapPacking, func(r *Request) { r.DurationDays = 0 }, true},
		{"missing interests", CapLocalInsights, func(r *Request) { r.Interests = "" }, true},
		{"destinations without destination", CapDestinations, func(r *Request) { r.Destination = "" }, false},
		{"itinerary without destination", CapItinerary, func(r *Request) { r.Destination = "" }, true},
		{"itinerary without attractions", CapItinerary, func(r *Request) { r.Attractions = nil }, true},
		{"safety without destination", CapSafety, func(r *Request) { r.Destination = "" }, true},
		{"budget without any budget", CapBudget, func(r *Request) { r.TotalBudget = 0; r.BudgetRange = nil }, true},
		{"budget with range only", CapBudget, func(r *Request) {
			r.TotalBudget = 0
			r.BudgetRange = &BudgetRange{Food: MinMax{Min: 100, Max: 200}}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate(tt.cap)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMissingField) {
				t.Errorf("Validate() error %v does not wrap ErrMissingField", err)
			}
		})
	}
}

func TestWantsLiveWeather(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		style string
		start string
		want  bool
	}{
		{"holiday based, trip tomorrow", "holiday_based", "2026-03-02", true},
		{"holiday based, trip today", "holiday_based", "2026-03-01", true},
		{"holiday based, three days out", "holiday_based", "2026-03-04", true},
		{"holiday based, too far out", "holiday_based", "2026-03-10", false},
		{"holiday based, already started", "holiday_based", "2026-02-20", false},
		{"season based", "season_based", "2026-03-02", false},
		{"no start date", "holiday_based", "", false},
		{"unparseable start date", "holiday_based", "soon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.PlanningStyle = tt.style
			req.StartDate = tt.start
			if got := req.WantsLiveWeather(now); got != tt.want {
				t.Errorf("WantsLiveWeather() = %v, want %v", got, tt.want)
			}
		})
	}
}
