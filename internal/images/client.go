// README: Unsplash photo search client.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"yatra/internal/provider"
)

const defaultBaseURL = "https://api.unsplash.com/search/photos"

// DefaultPerPage matches the number of photos shown per destination card.
const DefaultPerPage = 6

// Client searches Unsplash for destination photos.
type Client struct {
	httpClient *http.Client
	accessKey  string
	baseURL    string
}

func NewClient(accessKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		accessKey:  accessKey,
		baseURL:    defaultBaseURL,
	}
}

type searchBody struct {
	Results []struct {
		URLs struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// Search returns up to perPage regular-size photo URLs for the query.
func (c *Client) Search(ctx context.Context, query string, perPage int) ([]string, error) {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("client_id", c.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("images: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.Classify("unsplash", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, provider.Classify("unsplash", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, provider.FromStatus("unsplash", resp.StatusCode, string(body))
	}

	var sb searchBody
	if err := json.Unmarshal(body, &sb); err != nil {
		return nil, provider.Malformed("unsplash", err)
	}

	urls := make([]string, 0, len(sb.Results))
	for _, r := range sb.Results {
		if r.URLs.Regular != "" {
			urls = append(urls, r.URLs.Regular)
		}
	}
	return urls, nil
}
