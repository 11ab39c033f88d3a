package pollinations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmorgan81/pollinations/internal/log"
	"github.com/samber/lo"
)

const (
	// ChatBaseURL is the text generation endpoint.
	ChatBaseURL = "https://text.pollinations.ai/"

	// DefaultSystemPrompt steers the model when ChatParams leaves
	// SystemPrompt empty.
	DefaultSystemPrompt = "You are a helpful assistant."

	// DefaultTimeout bounds every request issued by a client.
	DefaultTimeout = 10 * time.Second
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []message `json:"messages"`
	JSONMode bool      `json:"jsonMode"`
	Seed     string    `json:"seed"`
}

// ChatParams carries the inputs for a single chat completion.
type ChatParams struct {
	Prompt       string
	SystemPrompt string
}

// ChatClient talks to the text generation endpoint. Construct with
// NewChatClient; the exported fields may be overridden before first use.
type ChatClient struct {
	BaseURL   string
	Client    *http.Client
	Seeder    Seeder
	Validator Validator
}

func NewChatClient(timeout time.Duration) *ChatClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChatClient{
		BaseURL:   ChatBaseURL,
		Client:    &http.Client{Timeout: timeout},
		Seeder:    NewSeeder(),
		Validator: ChatValidator{},
	}
}

// Chat sends one completion request and returns the raw response text. The
// endpoint is asked for JSON output but the body is returned undecoded;
// parsing is the caller's concern.
func (c *ChatClient) Chat(ctx context.Context, params ChatParams) (string, error) {
	if strings.TrimSpace(params.Prompt) == "" {
		return "", &ValidationError{Reason: "prompt must be a non-empty string"}
	}
	system := lo.Ternary(params.SystemPrompt != "", params.SystemPrompt, DefaultSystemPrompt)

	logger := log.FromContextOrDiscard(ctx).WithGroup("chat")
	logger.Info("requesting chat completion")

	headers := NewHeaders("*/*")
	headers.ContentType = "application/json"
	headers.Origin = "https://karma.pollinations.ai"
	headers.Priority = "u=1, i"

	body, err := json.Marshal(chatRequest{
		Messages: []message{
			{Role: "system", Content: system},
			{Role: "user", Content: params.Prompt},
		},
		JSONMode: true,
		Seed:     c.Seeder.Seed(),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	for k, v := range headers.Render() {
		req.Header.Set(k, v)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("chat response: %w", err)
	}

	if err := c.Validator.Validate(resp.StatusCode, data); err != nil {
		return "", err
	}

	logger.Info("received chat completion", "bytes", len(data))
	return string(data), nil
}
