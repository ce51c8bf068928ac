// README: OpenWeather current-conditions client with a best-effort Redis cache.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"yatra/internal/provider"
	"yatra/internal/trip"
)

const (
	defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	cacheTTL       = 10 * time.Minute
)

// Client fetches current conditions for a city. A nil redis client
// disables caching; cache failures always fall through to a live call.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	redis      *redis.Client
}

func NewClient(apiKey string, redisClient *redis.Client) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		redis:      redisClient,
	}
}

// openWeatherBody mirrors the fields we read from the provider's schema.
type openWeatherBody struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Current returns the current conditions for city in metric units.
func (c *Client) Current(ctx context.Context, city string) (*trip.WeatherSnapshot, error) {
	if snap, ok := c.cached(ctx, city); ok {
		return snap, nil
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Classify("openweather", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Classify("openweather", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, provider.FromStatus("openweather", resp.StatusCode, string(body))
	}

	var ow openWeatherBody
	if err := json.Unmarshal(body, &ow); err != nil {
		return nil, provider.Malformed("openweather", err)
	}
	if len(ow.Weather) == 0 {
		return nil, provider.Malformed("openweather", fmt.Errorf("no weather entries for %q", city))
	}

	snap := &trip.WeatherSnapshot{
		Temperature: ow.Main.Temp,
		Description: ow.Weather[0].Description,
		Humidity:    ow.Main.Humidity,
		WindSpeed:   ow.Wind.Speed,
	}
	c.store(ctx, city, snap)
	return snap, nil
}

func cacheKey(city string) string {
	return "weather:" + strings.ToLower(strings.TrimSpace(city))
}

func (c *Client) cached(ctx context.Context, city string) (*trip.WeatherSnapshot, bool) {
	if c.redis == nil {
		return nil, false
	}
	val, err := c.redis.Get(ctx, cacheKey(city)).Result()
	if err != nil {
		return nil, false
	}
	var snap trip.WeatherSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, false
	}
	return &snap, true
}

func (c *Client) store(ctx context.Context, city string, snap *trip.WeatherSnapshot) {
	if c.redis == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	// Best effort; a failed write only costs a future live call.
	c.redis.Set(ctx, cacheKey(city), raw, cacheTTL)
}
