package chainlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/predeploy-org/predeploy-cli/internal/config"
	"github.com/predeploy-org/predeploy-cli/internal/domain"
	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// The registry is a few MB of JSON; cap what we read back on errors.
const maxErrorBody = 4 * 1024

// Client fetches the public chain registry over HTTPS.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a registry client for the configured endpoint.
func NewClient(cfg *config.RuntimeConfig) *Client {
	url := cfg.ChainlistURL
	if url == "" {
		url = domain.DefaultChainlistURL
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads and decodes the full registry. A non-2xx response fails
// with the status code and body preserved for diagnostics.
func (c *Client) Fetch(ctx context.Context) ([]domain.ChainEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build chainlist request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chainlist: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &domain.ChainlistFetchError{
			URL:    c.url,
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	var entries []domain.ChainEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode chainlist: %w", err)
	}

	return entries, nil
}

var _ usecase.ChainlistClient = (*Client)(nil)
