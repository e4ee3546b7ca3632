package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// httpDoer posts JSON with bearer auth and retries transient failures.
type httpDoer struct {
	httpClient   *http.Client
	serviceToken string
	maxRetries   uint
}

// statusError is a non-2xx response.
type statusError struct {
	Code int
	URL  string
	Body string
}

func (e *statusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d for %s", e.Code, e.URL)
	}
	return fmt.Sprintf("http %d for %s: %s", e.Code, e.URL, e.Body)
}

func retryable(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// postJSON marshals body, sends it and decodes the response into out.
// Network errors, 429 and 5xx are retried with exponential backoff; other
// statuses fail immediately.
func (h *httpDoer) postJSON(ctx context.Context, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	operation := func() (struct{}, error) {
		return struct{}{}, h.do(ctx, url, data, out)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond

	_, err = backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(h.maxRetries),
	)
	return err
}

func (h *httpDoer) do(ctx context.Context, url string, data []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("build request: %w", err))
	}

	req.Header.Set("Content-Type", "application/json")
	if h.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+h.serviceToken)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(fmt.Errorf("http error: %w", err))
		}
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		serr := &statusError{Code: resp.StatusCode, URL: url, Body: string(bytes.TrimSpace(snippet))}
		if retryable(resp.StatusCode) {
			return serr
		}
		return backoff.Permanent(serr)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

// StatusCode extracts the HTTP status of a failed provider call, or 0.
func StatusCode(err error) int {
	var serr *statusError
	if errors.As(err, &serr) {
		return serr.Code
	}
	return 0
}
