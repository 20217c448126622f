// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package fetch

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/google/go-github/v66/github"
)

// RetryConfig controls how a Client retries transient request failures.
// Zero fields take the defaults noted.
type RetryConfig struct {
	MaxRetries     int           // default 3; negative disables retries
	InitialBackoff time.Duration // default 250ms
	MaxBackoff     time.Duration // default 30s
}

func (r RetryConfig) withDefaults() RetryConfig {
	if r.MaxRetries == 0 {
		r.MaxRetries = 3
	} else if r.MaxRetries < 0 {
		r.MaxRetries = 0
	}
	if r.InitialBackoff <= 0 {
		r.InitialBackoff = 250 * time.Millisecond
	}
	if r.MaxBackoff <= 0 {
		r.MaxBackoff = 30 * time.Second
	}
	return r
}

// withRetry calls op until it succeeds, fails with an error that is not
// retryable, the retry budget is exhausted, or ctx ends.
func (c *Client) withRetry(ctx context.Context, op func() error) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		wait, ok := retryable(lastErr)
		if !ok {
			return lastErr
		} else if attempt == c.retry.MaxRetries {
			break
		}
		if wait <= 0 {
			wait = c.backoff(attempt)
		}
		c.log.Warn("request failed, retrying", "attempt", attempt+1, "wait", wait, "error", lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("failed after %d retries: %w", c.retry.MaxRetries, lastErr)
}

// retryable reports whether err is a transient failure worth retrying, and
// how long the server asked the client to wait, if it said.
func retryable(err error) (time.Duration, bool) {
	var abuse *github.AbuseRateLimitError
	if errors.As(err, &abuse) {
		return abuse.GetRetryAfter(), true
	}
	var rsp *github.ErrorResponse
	if errors.As(err, &rsp) && rsp.Response != nil {
		switch rsp.Response.StatusCode {
		case http.StatusTooManyRequests, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return 0, true
		}
	}
	return 0, false
}

// backoff computes an exponential delay with ±20% jitter for the given
// zero-based attempt, capped at the configured maximum.
func (c *Client) backoff(attempt int) time.Duration {
	base := float64(c.retry.InitialBackoff) * float64(uint64(1)<<min(attempt, 30))
	jitter := rand.Float64()*0.4 - 0.2
	d := time.Duration(base * (1 + jitter))
	return min(d, c.retry.MaxBackoff)
}
