package prompt

import (
	"strings"
	"testing"

	"yatra/internal/trip"
)

func sampleRequest() trip.Request {
	return trip.Request{
		TravelType:   "adventure",
		TotalBudget:  500,
		Currency:     "USD",
		People:       2,
		GroupType:    "friends",
		DurationDays: 5,
		Interests:    "beach, budget",
		StartDate:    "2026-11-10",
		Destination:  "Goa",
		Attractions:  []string{"Baga Beach", "Fort Aguada"},
		Cuisines:     []string{"Goan fish curry"},
	}.Normalize()
}

var allCapabilities = []trip.Capability{
	trip.CapDestinations, trip.CapLocalInsights, trip.CapItinerary,
	trip.CapSafety, trip.CapPacking, trip.CapBudget,
	trip.CapTransport, trip.CapAccommodation, trip.CapReviews,
}

func TestRender_Deterministic(t *testing.T) {
	req := sampleRequest()
	for _, cap := range allCapabilities {
		first := Render(cap, req)
		if first == "" {
			t.Errorf("%s: empty prompt", cap)
			continue
		}
		for i := 0; i < 3; i++ {
			if got := Render(cap, req); got != first {
				t.Errorf("%s: render is not deterministic", cap)
				break
			}
		}
	}
}

func TestRender_EmbedsRequiredFacts(t *testing.T) {
	req := sampleRequest()

	tests := []struct {
		cap   trip.Capability
		wants []string
	}{
		{trip.CapDestinations, []string{"adventure", "beach, budget", "5 days", "USD"}},
		{trip.CapLocalInsights, []string{"Goa", "friends"}},
		{trip.CapItinerary, []string{"Goa", "5 days", "Baga Beach, Fort Aguada", "Goan fish curry", "exactly 5 days"}},
		{trip.CapSafety, []string{"Goa", "2026-11-10"}},
		{trip.CapPacking, []string{"Goa", "2026-11-10"}},
		{trip.CapBudget, []string{"500 USD", "2 people"}},
		{trip.CapTransport, []string{"Goa", "USD"}},
		{trip.CapAccommodation, []string{"Goa", "friends"}},
		{trip.CapReviews, []string{"Goa", "beach, budget"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.cap), func(t *testing.T) {
			got := Render(tt.cap, req)
			for _, want := range tt.wants {
				if !strings.Contains(got, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
		})
	}
}

func TestRender_OptionalFieldsGetDefaultPhrase(t *testing.T) {
	req := sampleRequest()
	req.StartDate = ""
	req.PlanningStyle = ""
	req.Origin = ""

	for _, cap := range []trip.Capability{trip.CapDestinations, trip.CapTransport} {
		got := Render(cap, req)
		if strings.Contains(got, "%!") || strings.Contains(got, "%s") {
			t.Errorf("%s: unfilled placeholder in prompt", cap)
		}
		if !strings.Contains(got, "not specified") {
			t.Errorf("%s: missing default phrase for empty optional field", cap)
		}
	}
}

func TestRender_DemandsBareJSON(t *testing.T) {
	req := sampleRequest()
	for _, cap := range allCapabilities {
		if !strings.Contains(Render(cap, req), "ONLY") {
			t.Errorf("%s: prompt does not demand JSON-only output", cap)
		}
	}
}
