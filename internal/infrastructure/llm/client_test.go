package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatStub serves a fixed OpenAI-compatible chat completion.
func chatStub(t *testing.T, reply string, capture *map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "llama3-70b-8192",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": reply},
				},
			},
		})
	}
}

func TestComplete_Success(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(chatStub(t, `  {"agents": ["shopping"]}  `, &captured))
	defer server.Close()

	client := NewClient("test-key", server.URL, "llama3-70b-8192")
	reply, err := client.Complete(context.Background(), "You are a classifier.", "Product query: cheap monitors", 0)

	require.NoError(t, err)
	assert.Equal(t, `{"agents": ["shopping"]}`, reply, "reply is trimmed")

	assert.Equal(t, "llama3-70b-8192", captured["model"])
	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestComplete_NoSystemPrompt(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(chatStub(t, "ok", &captured))
	defer server.Close()

	client := NewClient("test-key", server.URL, "llama3-70b-8192")
	_, err := client.Complete(context.Background(), "", "hello", 0.7)

	require.NoError(t, err)
	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
}

func TestComplete_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limit reached"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "llama3-70b-8192")
	_, err := client.Complete(context.Background(), "sys", "user", 0)

	assert.ErrorIs(t, err, domain.ErrLLMFailure)
}
