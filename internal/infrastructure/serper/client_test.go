package serper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://google.serper.dev", "de", 2, 5)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://google.serper.dev", client.baseURL)
	assert.Equal(t, "de", client.country)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("key", "https://google.serper.dev/", "", 0, 0)

	assert.Equal(t, "us", client.country)
	assert.Equal(t, "https://google.serper.dev", client.baseURL, "trailing slash trimmed")
}

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 2000 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSearchShopping_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shopping", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-KEY"))

		var payload searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "benq monitor", payload.Query)
		assert.Equal(t, "us", payload.Country)

		response := domain.SerperShoppingResponse{
			Shopping: []domain.SerperShoppingItem{
				{Title: "BenQ PD2705Q", Source: "BestBuy", Price: "$299.00", Position: 1},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "us", 100, 10)
	resp, err := client.SearchShopping(context.Background(), "benq monitor")

	require.NoError(t, err)
	require.Len(t, resp.Shopping, 1)
	assert.Equal(t, "BenQ PD2705Q", resp.Shopping[0].Title)
}

func TestSearchShopping_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"shopping": []}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "us", 100, 10)
	_, err := client.SearchShopping(context.Background(), "no such thing")

	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestSearchShopping_ClientErrorNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL, "us", 100, 10)
	_, err := client.SearchShopping(context.Background(), "query")

	assert.ErrorIs(t, err, domain.ErrSerperAPIFailure)
	assert.Equal(t, 1, calls, "4xx responses must not be retried")
}

func TestSearchShopping_RetriesServerErrors(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"shopping": [{"title": "Widget", "position": 1}]}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "us", 100, 10)
	resp, err := client.SearchShopping(context.Background(), "widget")

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, "Widget", resp.Shopping[0].Title)
}

func TestSearchWeb_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)

		response := domain.SerperSearchResponse{
			Organic: []domain.SerperOrganicResult{
				{Title: "LEGO 42115 Technic", Link: "https://example.com/lego", Snippet: "Building kit", Position: 1},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "us", 100, 10)
	resp, err := client.SearchWeb(context.Background(), "4006381333931")

	require.NoError(t, err)
	require.Len(t, resp.Organic, 1)
	assert.Equal(t, "LEGO 42115 Technic", resp.Organic[0].Title)
}

func TestSearchWeb_EmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic": []}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "us", 100, 10)
	_, err := client.SearchWeb(context.Background(), "0000000000000")

	assert.ErrorIs(t, err, domain.ErrNoResults)
}

func TestSearchWeb_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"organic": []}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "us", 100, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SearchWeb(ctx, "query")
	assert.Error(t, err)
}
