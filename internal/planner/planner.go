// README: Trip planning pipeline: validate, render prompt, call providers,
// parse and validate the artifact.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"yatra/internal/ai"
	"yatra/internal/prompt"
	"yatra/internal/trip"
)

// Pipeline error taxonomy. Errors are classified here and returned to the
// caller; the pipeline never retries or falls back to defaults.
var (
	// ErrInvalidRequest: the request misses a capability-required field.
	// Returned before any provider is invoked.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUpstreamFailure: a provider call failed. The provider error is
	// wrapped and its kind stays reachable via errors.As.
	ErrUpstreamFailure = errors.New("upstream provider failure")
	// ErrMalformedResponse: the model output did not match the capability
	// schema. No partial artifact is ever returned.
	ErrMalformedResponse = errors.New("malformed model response")
)

// photosPerPlace matches the card layout in the original wizard UI.
const photosPerPlace = 6

type WeatherProvider interface {
	Current(ctx context.Context, city string) (*trip.WeatherSnapshot, error)
}

type ImageProvider interface {
	Search(ctx context.Context, query string, perPage int) ([]string, error)
}

type RouteProvider interface {
	TravelEstimate(ctx context.Context, origin, destination string) (time.Duration, string, error)
}

// Planner orchestrates the LLM and the supplementary data providers for a
// single plan call. It holds no mutable state; every Plan invocation is
// independent.
type Planner struct {
	llm     ai.TextGenerator
	weather WeatherProvider
	images  ImageProvider
	routes  RouteProvider // nil disables route enrichment
	now     func() time.Time
}

func New(llm ai.TextGenerator, weather WeatherProvider, images ImageProvider, routes RouteProvider) *Planner {
	return &Planner{
		llm:     llm,
		weather: weather,
		images:  images,
		routes:  routes,
		now:     time.Now,
	}
}

// Plan maps (capability, request) to a structured artifact or a typed error.
func (p *Planner) Plan(ctx context.Context, cap trip.Capability, req trip.Request) (*trip.Result, error) {
	req = req.Normalize()
	if err := req.Validate(cap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	promptText := prompt.Render(cap, req)

	switch cap {
	case trip.CapDestinations:
		return p.planDestinations(ctx, promptText, req)
	case trip.CapAccommodation:
		return p.planAccommodation(ctx, promptText, req)
	case trip.CapTransport:
		return p.planTransport(ctx, promptText, req)
	default:
		text, err := p.llm.Generate(ctx, promptText)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
		}
		return parseArtifact(cap, req, text)
	}
}

// planDestinations calls the LLM, then fans out weather and photo lookups
// per suggested place. The supplementary calls are independent of each
// other and run concurrently; all are joined before the result is built.
func (p *Planner) planDestinations(ctx context.Context, promptText string, req trip.Request) (*trip.Result, error) {
	text, err := p.llm.Generate(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	var places []trip.DestinationSuggestion
	if err := json.Unmarshal([]byte(ai.CleanJSON(text)), &places); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := trip.ValidateDestinations(places); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	wantWeather := p.weather != nil && req.WantsLiveWeather(p.now())
	wantPhotos := p.images != nil

	// Two slots per place: photos and weather. Goroutines write disjoint
	// indices, so no lock is needed.
	errs := make([]error, 2*len(places))
	var wg sync.WaitGroup
	for i := range places {
		if wantPhotos {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				urls, err := p.images.Search(ctx, places[i].Place, photosPerPlace)
				if err != nil {
					errs[2*i] = err
					return
				}
				places[i].Photos = urls
			}(i)
		}
		if wantWeather {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				snap, err := p.weather.Current(ctx, places[i].Place)
				if err != nil {
					errs[2*i+1] = err
					return
				}
				places[i].Weather = snap
			}(i)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
		}
	}

	return &trip.Result{Capability: trip.CapDestinations, Destinations: places}, nil
}

// planAccommodation runs the photo search for the destination concurrently
// with the LLM call and joins both before assembly.
func (p *Planner) planAccommodation(ctx context.Context, promptText string, req trip.Request) (*trip.Result, error) {
	type photoOut struct {
		urls []string
		err  error
	}
	photoCh := make(chan photoOut, 1)
	if p.images != nil {
		go func() {
			urls, err := p.images.Search(ctx, req.Destination+" hotel", photosPerPlace)
			photoCh <- photoOut{urls: urls, err: err}
		}()
	} else {
		photoCh <- photoOut{}
	}

	text, llmErr := p.llm.Generate(ctx, promptText)
	photos := <-photoCh

	if llmErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, llmErr)
	}
	if photos.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, photos.err)
	}

	res, err := parseArtifact(trip.CapAccommodation, req, text)
	if err != nil {
		return nil, err
	}
	res.Accommodation.Photos = photos.urls
	return res, nil
}

// planTransport runs the route estimate (when an origin is given and a
// routes provider is wired) concurrently with the LLM call.
func (p *Planner) planTransport(ctx context.Context, promptText string, req trip.Request) (*trip.Result, error) {
	type routeOut struct {
		estimate *trip.RouteEstimate
		err      error
	}
	routeCh := make(chan routeOut, 1)
	if p.routes != nil && req.Origin != "" {
		go func() {
			dur, dist, err := p.routes.TravelEstimate(ctx, req.Origin, req.Destination)
			if err != nil {
				routeCh <- routeOut{err: err}
				return
			}
			routeCh <- routeOut{estimate: &trip.RouteEstimate{
				DurationMinutes: int(dur.Minutes()),
				Distance:        dist,
			}}
		}()
	} else {
		routeCh <- routeOut{}
	}

	text, llmErr := p.llm.Generate(ctx, promptText)
	route := <-routeCh

	if llmErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, llmErr)
	}
	if route.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, route.err)
	}

	res, err := parseArtifact(trip.CapTransport, req, text)
	if err != nil {
		return nil, err
	}
	res.Transport.RouteEstimate = route.estimate
	return res, nil
}

// parseArtifact decodes the model text into the capability's variant and
// validates it, failing closed on any mismatch.
func parseArtifact(cap trip.Capability, req trip.Request, text string) (*trip.Result, error) {
	text = ai.CleanJSON(text)
	res := &trip.Result{Capability: cap}

	decode := func(v any) error {
		return json.Unmarshal([]byte(text), v)
	}

	var err error
	switch cap {
	case trip.CapLocalInsights:
		v := &trip.LocalInsights{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.LocalInsights = v
	case trip.CapItinerary:
		v := &trip.Itinerary{}
		if err = decode(v); err == nil {
			err = v.Validate(req.DurationDays)
		}
		res.Itinerary = v
	case trip.CapSafety:
		v := &trip.SafetyInfo{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.Safety = v
	case trip.CapPacking:
		v := &trip.PackingList{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.Packing = v
	case trip.CapBudget:
		v := &trip.BudgetBreakdown{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.Budget = v
	case trip.CapTransport:
		v := &trip.TransportOptions{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.Transport = v
	case trip.CapAccommodation:
		v := &trip.AccommodationOptions{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.Accommodation = v
	case trip.CapReviews:
		v := &trip.ReviewSummary{}
		if err = decode(v); err == nil {
			err = v.Validate()
		}
		res.Reviews = v
	default:
		err = fmt.Errorf("unknown capability %q", cap)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return res, nil
}
