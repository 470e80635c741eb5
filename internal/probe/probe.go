// Package probe checks a running server's health endpoint.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"codeberg.org/awibi/medtech-api/api/rest/health"
	"github.com/goccy/go-json"
)

// largest health response body the probe will read
const maxBodySize = 4 * 1024

// calls url and succeeds only on a 200 carrying {"status": "OK"}
func Check(ctx context.Context, client *http.Client, url string) error {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read health response: %w", err)
	}

	var result health.Response
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("failed to decode health response: %w", err)
	}

	if result.Status != health.StatusOK {
		return fmt.Errorf("unhealthy status %q", result.Status)
	}

	return nil
}
