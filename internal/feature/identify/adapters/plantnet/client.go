package plantnet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/MiranSiddique/FLORO/internal/feature/identify/adapters/plantnet/dto"
	"github.com/MiranSiddique/FLORO/internal/feature/identify/usecase"
)

// imageFieldName is the multipart field PlantNet expects the image under.
const imageFieldName = "images"

// Client calls the PlantNet identify endpoint. It makes exactly one attempt
// per call; callers must not assume retries are safe because partial upstream
// billing state is unknown.
type Client struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that Client implements PlantIdentifier.
var _ usecase.PlantIdentifier = (*Client)(nil)

// NewClient creates a new Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// Identify submits the image as a multipart POST with the API key as a query
// parameter and returns the parsed response body. Errors are reported with the
// usecase vocabulary: ErrNotConfigured before any network I/O when the key is
// missing, ErrNetwork-wrapped transport failures, and *UpstreamError for
// non-200 statuses with the upstream message extracted from a JSON "message"
// field when the body parses, else the raw text.
func (c *Client) Identify(ctx context.Context, image io.Reader) (*dto.IdentifyResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, usecase.ErrNotConfigured
	}

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(imageFieldName, usecase.StagedImageName)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image into multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	q := url.Values{}
	q.Set("api-key", c.cfg.APIKey)
	u := fmt.Sprintf("%s/v2/identify/all?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, body)
	if err != nil {
		return nil, fmt.Errorf("build identify request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrNetwork, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(res.Body)
		msg := string(raw)
		var e struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
			msg = e.Message
		}
		return nil, &usecase.UpstreamError{StatusCode: res.StatusCode, Message: msg}
	}

	var out dto.IdentifyResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode plantnet response: %w", err)
	}
	return &out, nil
}
