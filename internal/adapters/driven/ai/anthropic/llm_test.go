package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// TestNewLLMService_RequiresAPIKey tests the required API key check
func TestNewLLMService_RequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

// TestLLMService_Generate tests the /v1/messages request format
func TestLLMService_Generate(t *testing.T) {
	var reqBody messagesRequest
	var gotKey, gotVersion string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		resp := map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "An answer."},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-ant-test", BaseURL: server.URL})
	require.NoError(t, err)

	text, err := svc.Generate(context.Background(), "Who knows ML?", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.Equal(t, "An answer.", text)
	assert.Equal(t, "sk-ant-test", gotKey)
	assert.Equal(t, anthropicVersion, gotVersion)
	assert.Equal(t, DefaultModel, reqBody.Model)
	// The messages API requires max_tokens; the default fills it in
	assert.Equal(t, defaultMaxTokens, reqBody.MaxTokens)
	require.Len(t, reqBody.Messages, 1)
	assert.Equal(t, "user", reqBody.Messages[0].Role)
}

// TestLLMService_ChatLiftsSystemMessage tests system prompt handling
func TestLLMService_ChatLiftsSystemMessage(t *testing.T) {
	var reqBody messagesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		resp := map[string]any{
			"content": []map[string]any{{"type": "text", "text": "reply"}},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "sk-ant-test", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "You are GrantBot."},
		{Role: "user", Content: "hi"},
	}, driven.ChatOptions{})

	require.NoError(t, err)
	assert.Equal(t, "You are GrantBot.", reqBody.System)
	require.Len(t, reqBody.Messages, 1)
	assert.Equal(t, "user", reqBody.Messages[0].Role)
}

// TestLLMService_APIError tests the structured error path
func TestLLMService_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer server.Close()

	svc, err := NewLLMService(Config{APIKey: "bad", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "q", driven.GenerateOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid x-api-key")
}
