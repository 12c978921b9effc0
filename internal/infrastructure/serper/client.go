package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Serper search API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	country     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Serper API client. requestsPerSecond bounds the
// client-side call rate toward Serper; burst allows short spikes.
func NewClient(apiKey, baseURL, country string, requestsPerSecond float64, burst int) *Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2
	}
	if burst <= 0 {
		burst = 5
	}
	if country == "" {
		country = "us"
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		country:     strings.ToLower(country),
		rateLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SetTimeout overrides the default per-request HTTP timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
}

// exponentialBackoff returns the sleep duration before the next retry
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500<<(attempt-1)) * time.Millisecond
}

// searchRequest is the JSON payload both Serper endpoints accept
type searchRequest struct {
	Query    string `json:"q"`
	Country  string `json:"gl"`
	Language string `json:"hl,omitempty"`
	Num      int    `json:"num,omitempty"`
}

// doRequest executes an HTTP POST with the Serper auth header and retries
// transient failures with exponential backoff.
func (c *Client) doRequest(ctx context.Context, endpoint string, payload searchRequest) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := c.baseURL + endpoint

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("X-API-KEY", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "Veronica/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.Printf("[serper] request error (attempt %d): %v", attempt, err)
			lastErr = fmt.Errorf("%w: %v", domain.ErrSerperAPIFailure, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		respBody, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if c.debug {
			log.Printf("[serper] POST %s -> %d (%d bytes)", reqURL, resp.StatusCode, len(respBody))
		}

		if resp.StatusCode != http.StatusOK {
			log.Printf("[serper] API error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(respBody))
			lastErr = fmt.Errorf("%w: status %d", domain.ErrSerperAPIFailure, resp.StatusCode)
			// Client errors other than rate limiting won't heal on retry
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return nil, lastErr
			}
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		return respBody, nil
	}

	log.Printf("[serper] all retries failed for %s", endpoint)
	return nil, lastErr
}

// SearchShopping queries the Serper shopping endpoint for a product name.
func (c *Client) SearchShopping(ctx context.Context, query string) (*domain.SerperShoppingResponse, error) {
	log.Printf("[serper] SearchShopping called with query: %q", query)

	body, err := c.doRequest(ctx, "/shopping", searchRequest{
		Query:    query,
		Country:  c.country,
		Language: "en",
		Num:      10,
	})
	if err != nil {
		return nil, err
	}

	var searchResp domain.SerperShoppingResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[serper] JSON decode error: %v", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Shopping) == 0 {
		log.Printf("[serper] no shopping results for query: %q", query)
		return nil, domain.ErrNoResults
	}

	log.Printf("[serper] found %d shopping results for query: %q", len(searchResp.Shopping), query)
	return &searchResp, nil
}

// SearchWeb queries the Serper web search endpoint, used to resolve ASIN/EAN
// codes that the shopping index does not serve directly.
func (c *Client) SearchWeb(ctx context.Context, query string) (*domain.SerperSearchResponse, error) {
	log.Printf("[serper] SearchWeb called with query: %q", query)

	body, err := c.doRequest(ctx, "/search", searchRequest{
		Query:   query,
		Country: c.country,
		Num:     10,
	})
	if err != nil {
		return nil, err
	}

	var searchResp domain.SerperSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		log.Printf("[serper] JSON decode error: %v", err)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Organic) == 0 {
		log.Printf("[serper] no organic results for query: %q", query)
		return nil, domain.ErrNoResults
	}

	return &searchResp, nil
}

// Country returns the country code the client searches against.
func (c *Client) Country() string {
	return c.country
}
