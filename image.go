package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmorgan81/pollinations/internal/log"
	"github.com/dmorgan81/pollinations/store"
	"github.com/samber/lo"
)

// ImageBaseURL is the image generation endpoint. The prompt is appended as a
// path segment.
const ImageBaseURL = "https://pollinations.ai/p/"

// ImageParams carries the inputs for a single image generation. Zero values
// fall back to the documented defaults.
type ImageParams struct {
	Prompt  string
	Model   Model  // defaults to ModelFlux3D
	Path    string // defaults to "image.png"
	Width   int    // defaults to 1024
	Height  int    // defaults to 1024
	Enhance *bool  // defaults to true
}

func (p ImageParams) withDefaults() ImageParams {
	p.Model = lo.Ternary(p.Model != "", p.Model, ModelFlux3D)
	p.Path = lo.Ternary(p.Path != "", p.Path, "image.png")
	p.Width = lo.Ternary(p.Width != 0, p.Width, 1024)
	p.Height = lo.Ternary(p.Height != 0, p.Height, 1024)
	if p.Enhance == nil {
		p.Enhance = lo.ToPtr(true)
	}
	return p
}

// ImageClient talks to the image generation endpoint. Construct with
// NewImageClient; the exported fields may be overridden before first use.
type ImageClient struct {
	BaseURL   string
	Client    *http.Client
	Seeder    Seeder
	Validator Validator
	Uploader  store.Uploader
}

func NewImageClient(timeout time.Duration) *ImageClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ImageClient{
		BaseURL:   ImageBaseURL,
		Client:    &http.Client{Timeout: timeout},
		Seeder:    NewSeeder(),
		Validator: ImageValidator{},
		Uploader:  &store.FileUploader{},
	}
}

// GenerateImage requests one image and persists the raw bytes through the
// configured uploader, replacing whatever is at params.Path. The write is
// whole-file but not atomic. Returns a confirmation naming the path.
func (c *ImageClient) GenerateImage(ctx context.Context, params ImageParams) (string, error) {
	params = params.withDefaults()
	if strings.TrimSpace(params.Prompt) == "" {
		return "", &ValidationError{Reason: "prompt must be a non-empty string"}
	}
	if !params.Model.Valid() {
		return "", &ValidationError{Reason: fmt.Sprintf("unknown model %q", params.Model)}
	}
	if params.Width <= 0 || params.Height <= 0 {
		return "", &ValidationError{Reason: "width and height must be positive"}
	}

	logger := log.FromContextOrDiscard(ctx).WithGroup("image").With("model", string(params.Model))
	logger.Info("requesting image generation")

	headers := NewHeaders("image/avif,image/webp,image/apng,image/svg+xml,image/*,*/*;q=0.8")
	headers.Priority = "i"

	seed := c.Seeder.Seed()
	query := url.Values{}
	query.Set("width", strconv.Itoa(params.Width))
	query.Set("height", strconv.Itoa(params.Height))
	query.Set("model", string(params.Model))
	query.Set("seed", seed)
	query.Set("nologo", "true")
	query.Set("enhance", strconv.FormatBool(*params.Enhance))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+url.PathEscape(params.Prompt), nil)
	if err != nil {
		return "", err
	}
	req.URL.RawQuery = query.Encode()
	for k, v := range headers.Render() {
		req.Header.Set(k, v)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("image response: %w", err)
	}

	if err := c.Validator.Validate(resp.StatusCode, data); err != nil {
		return "", err
	}

	contentType := lo.Ternary(resp.Header.Get("Content-Type") != "", resp.Header.Get("Content-Type"), "image/png")
	err = c.Uploader.Upload(ctx, store.UploadParams{
		Name:        params.Path,
		Data:        data,
		ContentType: contentType,
		Metadata: map[string]string{
			"model":  string(params.Model),
			"prompt": params.Prompt,
			"seed":   seed,
		},
	})
	if err != nil {
		return "", err
	}

	logger.Info("saved image", "path", params.Path, "bytes", len(data))
	return fmt.Sprintf("Image successfully saved to %s", params.Path), nil
}
