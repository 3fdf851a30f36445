package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPSink posts leads as JSON to the spreadsheet gateway. Transient failures
// are retried with a fixed backoff; the gateway is treated as a black box
// that either accepts the payload or doesn't.
type HTTPSink struct {
	URL        string
	Client     *http.Client
	MaxRetries int
	Backoff    time.Duration
}

// NewHTTPSink creates a sink for the given gateway URL.
func NewHTTPSink(url string, timeout time.Duration, maxRetries int) *HTTPSink {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &HTTPSink{
		URL:        url,
		Client:     &http.Client{Timeout: timeout},
		MaxRetries: maxRetries,
		Backoff:    500 * time.Millisecond,
	}
}

// Deliver posts the lead, retrying on transport errors and 5xx responses.
func (h *HTTPSink) Deliver(ctx context.Context, lead Lead) error {
	payload, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= h.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(h.Backoff):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := h.Client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
		lastErr = fmt.Errorf("gateway returned %s", resp.Status)
		if resp.StatusCode < 500 {
			// Client errors won't heal on retry.
			return lastErr
		}
	}

	return fmt.Errorf("delivery failed after %d attempts: %w", h.MaxRetries+1, lastErr)
}
