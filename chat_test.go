package pollinations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatClientForTest(t *testing.T, handler http.HandlerFunc) (*ChatClient, *int) {
	t.Helper()
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	c := NewChatClient(0)
	c.BaseURL = server.URL
	return c, &calls
}

func TestChatSendsOrderedMessages(t *testing.T) {
	var captured chatRequest
	var method, contentType, origin string

	c, calls := newChatClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		origin = r.Header.Get("Origin")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"reply":"hello"}`))
	})
	c.Seeder = SeedFunc(func() string { return "42" })

	reply, err := c.Chat(context.Background(), ChatParams{Prompt: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, `{"reply":"hello"}`, reply)
	assert.Equal(t, 1, *calls)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "https://karma.pollinations.ai", origin)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, message{Role: "system", Content: DefaultSystemPrompt}, captured.Messages[0])
	assert.Equal(t, message{Role: "user", Content: "Hi"}, captured.Messages[1])
	assert.True(t, captured.JSONMode)
	assert.Equal(t, "42", captured.Seed)
}

func TestChatSeedIsTwoDigits(t *testing.T) {
	var captured chatRequest
	c, _ := newChatClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
	})

	_, err := c.Chat(context.Background(), ChatParams{Prompt: "Hi"})
	require.NoError(t, err)

	n, err := strconv.Atoi(captured.Seed)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 10)
	assert.LessOrEqual(t, n, 99)
}

func TestChatCustomSystemPrompt(t *testing.T) {
	var captured chatRequest
	c, _ := newChatClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
	})

	_, err := c.Chat(context.Background(), ChatParams{Prompt: "Hi", SystemPrompt: "You are a pirate."})
	require.NoError(t, err)
	assert.Equal(t, "You are a pirate.", captured.Messages[0].Content)
}

func TestChatEmptyPromptMakesNoCall(t *testing.T) {
	c, calls := newChatClientForTest(t, func(w http.ResponseWriter, r *http.Request) {})

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := c.Chat(context.Background(), ChatParams{Prompt: prompt})
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, prompt)
	}
	assert.Equal(t, 0, *calls)
}

func TestChatAPIError(t *testing.T) {
	c, _ := newChatClientForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := c.Chat(context.Background(), ChatParams{Prompt: "Hi"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestChatTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := NewChatClient(0)
	c.BaseURL = server.URL
	server.Close()

	_, err := c.Chat(context.Background(), ChatParams{Prompt: "Hi"})
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
