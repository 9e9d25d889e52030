package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sandevgo/reachout/pkg/retry"
)

const defaultTimeout = 60 * time.Second

type baseProvider struct {
	client  *http.Client
	retrier *retry.Retrier
	name    string
	baseURL string
	apiKey  string
	model   string
}

func newBaseProvider(name, baseURL, apiKey, model string, timeout time.Duration) baseProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return baseProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		retrier: retry.NewDefaultRetrier(),
		name:    name,
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
	}
}

func (b *baseProvider) Name() string {
	return b.name
}

// retryable reports statuses worth another attempt: rate limits and gateway errors.
func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

// doRequest sends the request, retrying transport errors and retryable statuses.
// The last response is returned as is, whatever its status.
func (b *baseProvider) doRequest(ctx context.Context, method, path string, body any, headers map[string]string) (*http.Response, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		payload = data
	}

	var resp *http.Response
	err := b.retrier.Do(ctx, func() error {
		if resp != nil {
			resp.Body.Close()
			resp = nil
		}
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bodyReader)
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		req.Header.Set("Content-Type", "application/json")

		r, err := b.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Permanent(fmt.Errorf("request: %w", err))
			}
			return fmt.Errorf("request: %w", err)
		}
		resp = r
		if retryable(r.StatusCode) {
			return fmt.Errorf("http %d", r.StatusCode)
		}
		return nil
	})

	if resp != nil {
		// a retryable status on the last attempt is reported by the caller
		return resp, nil
	}
	return nil, err
}
