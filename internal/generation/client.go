package generation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/tabiplan/backend/internal/domain"
)

// maxResponseBytes bounds how much of a generation response is read.
const maxResponseBytes = 4 << 20

// Client calls the activity-generation service over HTTP.
// It sets no timeout of its own; callers bound each call through ctx.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient returns a Client posting to url. A nil httpClient uses
// http.DefaultClient.
func NewClient(url string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{url: url, httpClient: httpClient}
}

// generateRequest is the JSON body sent to the generation service.
type generateRequest struct {
	Theme      string `json:"theme"`
	Region     string `json:"region"`
	Prefecture string `json:"prefecture,omitempty"`
	DayNumber  int    `json:"dayNumber"`
}

// Generate asks the service for a candidate activity list and returns the raw
// response body, to be passed through Adapt. Transport failures and non-2xx
// answers are wrapped in domain.ErrUpstream; a body over 4 MiB is
// domain.ErrInvalidExternalResponse.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) ([]byte, error) {
	payload, err := sonic.Marshal(generateRequest{
		Theme:      req.Theme,
		Region:     req.Region,
		Prefecture: req.Prefecture,
		DayNumber:  req.DayNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("generation.Client.Generate: encode: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("generation.Client.Generate: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation.Client.Generate: %w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("generation.Client.Generate: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	// One byte past the limit tells a full-size body from a truncated one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("generation.Client.Generate: read body: %w: %v", domain.ErrUpstream, err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("generation.Client.Generate: %w: response too large (over %d bytes)", domain.ErrInvalidExternalResponse, maxResponseBytes)
	}
	return body, nil
}
