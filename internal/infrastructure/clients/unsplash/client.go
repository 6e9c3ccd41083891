package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ankorline/yachtcharterdiscovery/backend/pkg/retry"
)

// displayParams are appended to every pool URL so images arrive presized
const displayParams = "auto=format&fit=crop&w=1600&h=900&q=80"

// Client queries the image search endpoint for fallback pool candidates
type Client struct {
	searchURL  string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewClient creates an image search client for the given search URL
func NewClient(searchURL string, timeout time.Duration) *Client {
	return &Client{
		searchURL: searchURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryCfg: retry.DefaultConfig(),
	}
}

type photoURLs struct {
	Raw     *string `json:"raw,omitempty"`
	Full    *string `json:"full,omitempty"`
	Regular *string `json:"regular,omitempty"`
	Small   *string `json:"small,omitempty"`
}

type photo struct {
	ID   string     `json:"id"`
	URLs *photoURLs `json:"urls,omitempty"`
}

type searchResponse struct {
	Results []photo `json:"results"`
}

// SearchImageURLs fetches candidate image URLs, retrying transient failures.
// Each photo contributes its first available variant (raw, full, regular,
// small, in that order) with display sizing parameters appended. An empty
// result list is a valid response; the caller decides whether to degrade.
func (c *Client) SearchImageURLs(ctx context.Context) ([]string, error) {
	var urls []string

	err := retry.DoWithLog(ctx, c.retryCfg, "unsplash", func() error {
		fetched, err := c.search(ctx)
		if err != nil {
			return err
		}
		urls = fetched
		return nil
	}, func(attempt int, err error, nextDelay time.Duration) {
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Dur("next_delay", nextDelay).
			Msg("image search attempt failed")
	})
	if err != nil {
		return nil, err
	}

	return urls, nil
}

func (c *Client) search(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("image search responded with status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode image search response: %w", err)
	}

	urls := make([]string, 0, len(payload.Results))
	for _, p := range payload.Results {
		if candidate := p.URLs.pick(); candidate != "" {
			urls = append(urls, appendDisplayParams(candidate))
		}
	}

	return urls, nil
}

// pick returns the first available resolution variant
func (u *photoURLs) pick() string {
	if u == nil {
		return ""
	}
	for _, candidate := range []*string{u.Raw, u.Full, u.Regular, u.Small} {
		if candidate != nil && *candidate != "" {
			return *candidate
		}
	}
	return ""
}

func appendDisplayParams(url string) string {
	if strings.Contains(url, "?") {
		return url + "&" + displayParams
	}
	return url + "?" + displayParams
}
