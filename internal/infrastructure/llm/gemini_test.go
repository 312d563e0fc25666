package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shofit/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	t.Run("applies defaults for zero values", func(t *testing.T) {
		client := NewClient(Config{APIKey: "test-key"})

		assert.Equal(t, "test-key", client.apiKey)
		assert.Equal(t, defaultBaseURL, client.baseURL)
		assert.Equal(t, defaultModel, client.model)
		assert.Equal(t, defaultTimeout, client.httpClient.Timeout)
		assert.NotNil(t, client.rateLimiter)
	})

	t.Run("keeps explicit configuration", func(t *testing.T) {
		client := NewClient(Config{
			APIKey:            "test-key",
			BaseURL:           "https://example.com/v1",
			Model:             "gemini-1.5-pro",
			Timeout:           10 * time.Second,
			RequestsPerMinute: 60,
		})

		assert.Equal(t, "https://example.com/v1", client.baseURL)
		assert.Equal(t, "gemini-1.5-pro", client.model)
		assert.Equal(t, 10*time.Second, client.httpClient.Timeout)
	})
}

func TestComplete_NotConfigured(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelNotConfigured)
	assert.Equal(t, 0, attempts, "an unconfigured client must not touch the network")
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req geminiRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		require.NoError(t, err)
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Equal(t, "extract the size chart", req.Contents[0].Parts[0].Text)
		assert.InDelta(t, 0.3, req.GenerationConfig.Temperature, 0.0001)
		assert.Equal(t, 4096, req.GenerationConfig.MaxOutputTokens)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "{\"headers\": [], \"rows\": []}"}]}}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	text, err := client.Complete(context.Background(), "extract the size chart")

	require.NoError(t, err)
	assert.Equal(t, `{"headers": [], "rows": []}`, text)
}

func TestComplete_APIError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte("quota exceeded"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCallFailed)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, 1, attempts, "a failed call must not be retried")
}

func TestComplete_ErrorPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"code": 400, "message": "invalid argument"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCallFailed)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestComplete_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCallFailed)
	assert.Contains(t, err.Error(), "no content")
}

func TestComplete_InvalidResponseJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCallFailed)
	assert.Contains(t, err.Error(), "unmarshal response")
}

func TestComplete_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Complete(ctx, "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCallFailed)
}

func TestComplete_InvalidBaseURL(t *testing.T) {
	client := NewClient(Config{APIKey: "test-key", BaseURL: "://invalid-url"})
	_, err := client.Complete(context.Background(), "any prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrModelCallFailed)
}
