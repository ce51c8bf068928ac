// README: Manual smoke test for the pipeline against live Gemini.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"yatra/internal/ai"
	"yatra/internal/planner"
	"yatra/internal/trip"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	llm, err := ai.NewGeminiClient(ctx, apiKey)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer llm.Close()

	// Weather, image, and route providers are left unwired; the demo
	// exercises only the LLM leg of the pipeline.
	pipeline := planner.New(llm, nil, nil, nil)

	req := trip.Request{
		TravelType:   "leisure",
		TotalBudget:  50000,
		People:       2,
		GroupType:    "couple",
		DurationDays: 5,
		Interests:    "beaches, seafood, nightlife",
		Destination:  "Goa",
		Attractions:  []string{"Baga Beach", "Fort Aguada", "Dudhsagar Falls"},
		Cuisines:     []string{"Goan fish curry", "Bebinca"},
	}

	res, err := pipeline.Plan(ctx, trip.CapItinerary, req)
	if err != nil {
		log.Fatalf("plan failed: %v", err)
	}

	out, _ := json.MarshalIndent(res.Payload(), "", "  ")
	fmt.Println(string(out))
}
