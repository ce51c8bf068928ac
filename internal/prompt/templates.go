// README: Pure prompt renderers, one per capability. No I/O; identical
// input always yields identical prompt text.
package prompt

import (
	"fmt"
	"strings"

	"yatra/internal/trip"
)

// notSpecified is the rendered value for any optional field the request
// leaves empty. Placeholders never survive into a prompt.
const notSpecified = "not specified"

func orDefault(v string) string {
	if v == "" {
		return notSpecified
	}
	return v
}

func budgetLine(req trip.Request) string {
	if req.BudgetRange == nil {
		return notSpecified
	}
	b := req.BudgetRange
	return fmt.Sprintf("transport %d-%d, accommodation %d-%d, food %d-%d, entertainment %d-%d (in %s)",
		b.Transport.Min, b.Transport.Max,
		b.Accommodation.Min, b.Accommodation.Max,
		b.Food.Min, b.Food.Max,
		b.Entertainment.Min, b.Entertainment.Max,
		req.Currency)
}

// preferencesBlock renders the shared trip-facts section embedded in every
// capability prompt.
func preferencesBlock(req trip.Request) string {
	return fmt.Sprintf(`Travel type: %s
Group: %s (%d people)
Duration: %d days
Interests: %s
Start date: %s
Planning style: %s
Budget breakdown: %s`,
		req.TravelType,
		req.GroupType, req.People,
		req.DurationDays,
		req.Interests,
		orDefault(req.StartDate),
		orDefault(req.PlanningStyle),
		budgetLine(req))
}

// jsonOnly is appended to every prompt so the model emits a bare JSON
// document without commentary or markdown fences.
const jsonOnly = "Your final response MUST be ONLY the raw JSON. Do NOT include any introductory text, commentary, or markdown formatting."

// Render produces the prompt text for the given capability. It assumes the
// request already passed Validate for that capability.
func Render(cap trip.Capability, req trip.Request) string {
	switch cap {
	case trip.CapDestinations:
		return renderDestinations(req)
	case trip.CapLocalInsights:
		return renderLocalInsights(req)
	case trip.CapItinerary:
		return renderItinerary(req)
	case trip.CapSafety:
		return renderSafety(req)
	case trip.CapPacking:
		return renderPacking(req)
	case trip.CapBudget:
		return renderBudget(req)
	case trip.CapTransport:
		return renderTransport(req)
	case trip.CapAccommodation:
		return renderAccommodation(req)
	case trip.CapReviews:
		return renderReviews(req)
	}
	return ""
}

func renderDestinations(req trip.Request) string {
	return fmt.Sprintf(`You are an Indian travel destination expert. Based on the user preferences:
%s

Suggest 4 travel destinations in India that best match the preferences.
For each destination include:
- place: name of the destination
- reason: why it matches the preferences
- weather_suitability: best season/months and average temperature during that period
- travel_cost_estimate: object with "flight", "train" and "bus" round-trip cost bands in %s
- accommodation_range: average per-night stay cost (budget to premium)
- safety_rating: "Low", "Moderate" or "High"
- accessibility: nearest airport/railway and road quality
- permit_required: "Yes" or "No", with details if yes
- photos: an empty array (photo URLs are attached separately, never invent them)

Return ONLY a JSON array of these objects. %s`,
		preferencesBlock(req), req.Currency, jsonOnly)
}

func renderLocalInsights(req trip.Request) string {
	return fmt.Sprintf(`You are a seasoned local guide. Provide detailed insights about %s customized to the user.

User preferences:
%s

Return ONLY JSON of the shape:
{"top_attractions":[{"name":"string","description":"string","category":"Historical|Natural|Cultural|Spiritual|Adventure|Other","why_visit":"string","best_time_of_day":"string"}],"local_cuisine":[{"dish":"string","description":"string","recommended_places":["string"]}]}
%s`, req.Destination, preferencesBlock(req), jsonOnly)
}

func renderItinerary(req trip.Request) string {
	cuisines := strings.Join(req.Cuisines, ", ")
	if cuisines == "" {
		cuisines = notSpecified
	}
	return fmt.Sprintf(`You are an experienced trip coordinator. Create a detailed travel itinerary for a trip to %s.

User preferences:
%s
Selected attractions: %s
Selected cuisines: %s

Your job:
- Distribute the attractions and cuisines across exactly %d days.
- Consider budget, group type, and transit time between spots.
- Include variety across days and insert breaks.
- Add travel steps (mode/time/approx cost) between locations.

Return ONLY valid JSON of the shape:
{"itinerary":[{"day":1,"steps":[{"type":"spot|accommodation|restaurant|cuisine|break|travel", ...}]}]}
Step fields by type:
- spot: name, category, visit_time, must_visit_time, reason, arrival_time, depart_time
- accommodation: options[{name, location, price_range, rating, arrival_time, depart_time}]
- restaurant: options[{name, location, rating, cuisines_served, arrival_time, depart_time}]
- cuisine: dish, origin, time_to_consume
- break: duration, activity, arrival_time, depart_time
- travel: from, to, options[{mode, time, cost, arrival_time, depart_time}]
The array MUST contain exactly %d day entries, one per trip day, each with at least one step.
%s`,
		req.Destination, preferencesBlock(req),
		strings.Join(req.Attractions, ", "), cuisines,
		req.DurationDays, req.DurationDays, jsonOnly)
}

func renderSafety(req trip.Request) string {
	return fmt.Sprintf(`You are a travel safety analyst. Provide concise safety guidance for %s tailored to this traveler.

Context:
%s

Return ONLY JSON of the shape:
{"overall_risk_level":"Low|Moderate|High","common_scams":["string"],"neighborhood_safety":[{"area":"string","note":"string","best_time_to_visit":"string"}],"local_laws_and_norms":["string"],"health":{"food_water_safety":"string","mosquito_advice":"string","altitude_note":"string"},"emergency_contacts":{"all_emergencies":"112","police":"100","ambulance":"108","fire":"101"},"solo_travel_tips":["string"]}
%s`, req.Destination, preferencesBlock(req), jsonOnly)
}

func renderPacking(req trip.Request) string {
	return fmt.Sprintf(`You are a practical packer who hates overpacking. Generate a packing list for %s.

Inputs:
%s
Infer the likely season for %s from the start date.

Return ONLY JSON of the shape:
{"season":"Winter|Summer|Monsoon|Transitional","essentials":[{"item":"string","why":"string","qty":"string"}],"clothing":[...],"footwear":[...],"toiletries_health":[...],"gadgets":[...],"documents_money":[...],"optional_activity_specific":[...]}
%s`, req.Destination, preferencesBlock(req), req.Destination, jsonOnly)
}

func renderBudget(req trip.Request) string {
	dest := orDefault(req.Destination)
	total := notSpecified
	if req.TotalBudget > 0 {
		total = fmt.Sprintf("%d %s", req.TotalBudget, req.Currency)
	}
	return fmt.Sprintf(`You are a budget allocation advisor. If a total budget is given, allocate it into ranges for transport, accommodation, food and entertainment. If category ranges are given, validate them and add per-day estimates for %d days and %d people.

Inputs:
Total budget: %s
%s
Destination: %s

Return ONLY JSON of the shape:
{"budget_range":{"transport":["min","max"],"accommodation":["min","max"],"food":["min","max"],"entertainment":["min","max"]},"per_day_estimate_per_person":{"transport":"amount","accommodation":"amount","food":"amount","entertainment":"amount","total":"amount"},"notes":["string"]}
All amounts in %s. %s`,
		req.DurationDays, req.People, total, preferencesBlock(req), dest, req.Currency, jsonOnly)
}

func renderTransport(req trip.Request) string {
	return fmt.Sprintf(`You are a transport options expert for Indian rail, flights, buses, metros, autos and cabs. Recommend intercity and in-city transport options for %s.

User:
%s
Origin: %s

Return ONLY JSON of the shape:
{"intercity":[{"mode":"Flight|Train|Volvo Bus|Self-drive|Cab","from":"string","to":"%s","time":"e.g. 2h","approx_cost":"amount","pro_tip":"string"}],"in_city":[{"mode":"Metro|Local Bus|Auto|Cab|Rental Scooter|Walk","when_to_use":"string","approx_cost":"amount","coverage":"string","pro_tip":"string"}]}
All amounts in %s. %s`,
		req.Destination, preferencesBlock(req), orDefault(req.Origin), req.Destination, req.Currency, jsonOnly)
}

func renderAccommodation(req trip.Request) string {
	return fmt.Sprintf(`You are an accommodation curator with a strong sense of neighborhood fit. Propose stay options in %s across budget tiers.

User:
%s

Return ONLY JSON of the shape:
{"stays":[{"name":"string","type":"Hostel|Budget Hotel|Boutique|Resort|Homestay|Heritage","area":"string","approx_price_per_night":"amount","suits":"Solo|Couple|Family|Friends","vibe":"Calm|Nightlife|Scenic|Central|Heritage","why":"string"}],"neighborhoods":[{"name":"string","good_for":["string"],"avoid_if":["string"]}]}
All amounts in %s. %s`,
		req.Destination, preferencesBlock(req), req.Currency, jsonOnly)
}

func renderReviews(req trip.Request) string {
	return fmt.Sprintf(`You are a review and ratings summarizer. Summarize likely review patterns for %s (typical traveler sentiment) relevant to these interests: %s.

Return ONLY JSON of the shape:
{"attractions":[{"name":"string","average_rating":4.3,"pros":["string"],"cons":["string"],"tip":"string"}],"restaurants":[{"name":"string","average_rating":4.2,"pros":["string"],"cons":["string"],"tip":"string"}]}
%s`, req.Destination, req.Interests, jsonOnly)
}
