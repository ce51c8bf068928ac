package trip

import (
	"errors"
	"testing"
)

func suggestion() DestinationSuggestion {
	return DestinationSuggestion{
		Place:              "Rishikesh",
		Reason:             "river rafting and yoga retreats",
		WeatherSuitability: "Oct-Mar, 15-25C",
		SafetyRating:       "High",
		Accessibility:      "Dehradun airport, good roads",
	}
}

func TestValidateDestinations(t *testing.T) {
	if err := ValidateDestinations([]DestinationSuggestion{suggestion()}); err != nil {
		t.Errorf("valid suggestion rejected: %v", err)
	}

	if err := ValidateDestinations(nil); err == nil {
		t.Error("empty suggestion list accepted")
	}

	broken := suggestion()
	broken.SafetyRating = ""
	err := ValidateDestinations([]DestinationSuggestion{suggestion(), broken})
	if err == nil {
		t.Error("suggestion with empty safety_rating accepted")
	}
	if !errors.Is(err, ErrIncomplete) {
		t.Errorf("error %v does not wrap ErrIncomplete", err)
	}
}

func TestItineraryValidate_DayCount(t *testing.T) {
	day := func(n int) ItineraryDay {
		return ItineraryDay{Day: n, Steps: []ItineraryStep{{Type: "spot", Name: "Beach"}}}
	}

	it := &Itinerary{Days: []ItineraryDay{day(1), day(2), day(3)}}
	if err := it.Validate(3); err != nil {
		t.Errorf("3-day itinerary for 3-day trip rejected: %v", err)
	}
	if err := it.Validate(5); err == nil {
		t.Error("3-day itinerary for 5-day trip accepted")
	}

	empty := &Itinerary{Days: []ItineraryDay{day(1), {Day: 2}}}
	if err := empty.Validate(2); err == nil {
		t.Error("day with no steps accepted")
	}
}

func TestVariantValidate_FailClosed(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"safety missing risk level", (&SafetyInfo{
			CommonScams:       []string{"overpriced taxis"},
			EmergencyContacts: map[string]string{"police": "100"},
		}).Validate()},
		{"packing missing clothing", (&PackingList{
			Season:     "Winter",
			Essentials: []PackingItem{{Item: "sunscreen", Why: "strong sun", Qty: "1"}},
		}).Validate()},
		{"budget range not pairs", (&BudgetBreakdown{
			BudgetRange:             CategoryRange{Transport: []string{"1000"}},
			PerDayEstimatePerPerson: PerDayEstimate{Total: "3000"},
		}).Validate()},
		{"transport missing in_city", (&TransportOptions{
			Intercity: []IntercityOption{{Mode: "Train"}},
		}).Validate()},
		{"accommodation stay missing type", (&AccommodationOptions{
			Stays: []Stay{{Name: "Zostel"}},
		}).Validate()},
		{"reviews empty", (&ReviewSummary{}).Validate()},
		{"insights missing cuisine", (&LocalInsights{
			TopAttractions: []Attraction{{Name: "Fort", Description: "old fort"}},
		}).Validate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("incomplete artifact accepted")
			}
			if !errors.Is(tt.err, ErrIncomplete) {
				t.Errorf("error %v does not wrap ErrIncomplete", tt.err)
			}
		})
	}
}

func TestResultPayload(t *testing.T) {
	r := &Result{Capability: CapSafety, Safety: &SafetyInfo{OverallRiskLevel: "Low"}}
	if r.Payload() != r.Safety {
		t.Error("Payload() did not return the safety variant")
	}

	d := &Result{Capability: CapDestinations, Destinations: []DestinationSuggestion{suggestion()}}
	m, ok := d.Payload().(map[string]any)
	if !ok {
		t.Fatalf("destinations payload is %T, want map", d.Payload())
	}
	if _, ok := m["places"]; !ok {
		t.Error("destinations payload missing places key")
	}
}
