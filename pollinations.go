// Package pollinations is a small client for the Pollinations AI text and
// image generation endpoints. Each operation is one synchronous HTTP round
// trip; there is no retained session state, no retries and no rate limiting.
package pollinations

import (
	"context"
	"time"
)

// Client bundles a chat and an image client behind one entry point. Both
// share the timeout given at construction.
type Client struct {
	chat  *ChatClient
	image *ImageClient
}

func New(timeout time.Duration) *Client {
	return &Client{
		chat:  NewChatClient(timeout),
		image: NewImageClient(timeout),
	}
}

// ChatClient exposes the underlying chat client for customization.
func (c *Client) ChatClient() *ChatClient { return c.chat }

// ImageClient exposes the underlying image client for customization.
func (c *Client) ImageClient() *ImageClient { return c.image }

func (c *Client) Chat(ctx context.Context, params ChatParams) (string, error) {
	return c.chat.Chat(ctx, params)
}

func (c *Client) GenerateImage(ctx context.Context, params ImageParams) (string, error) {
	return c.image.GenerateImage(ctx, params)
}
