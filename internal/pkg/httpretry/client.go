// Package httpretry wraps outbound HTTP calls with retries and a shared
// rate limit.
package httpretry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// HTTPDoer executes HTTP requests. *http.Client, *RetryClient and the
// value returned by Limit all satisfy it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryClient retries transient failures with exponential backoff and full
// jitter. Client errors, refused destinations and context cancellation
// are not retried.
type RetryClient struct {
	client     HTTPDoer
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	logger     *slog.Logger
}

// NewRetryClient wraps client. A nil client becomes an http.Client with a
// 30s timeout; a negative maxRetries disables retries.
func NewRetryClient(client HTTPDoer, maxRetries int, baseDelay time.Duration, logger *slog.Logger) *RetryClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if baseDelay <= 0 {
		baseDelay = 200 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryClient{
		client:     client,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   30 * baseDelay,
		logger:     logger,
	}
}

// Do executes req, retrying on network errors and on 429/5xx responses. On
// the last attempt the response is returned as-is so the caller can inspect
// it.
func (rc *RetryClient) Do(req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= rc.maxRetries; attempt++ {
		if attempt > 0 {
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return nil, fmt.Errorf("httpretry: reset request body: %w", err)
				}
				req.Body = body
			}
			delay := rc.delay(attempt)
			rc.logger.Debug("retrying request",
				slog.String("method", req.Method),
				slog.String("host", req.URL.Host),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay))

			timer := time.NewTimer(delay)
			select {
			case <-timer.C:
			case <-req.Context().Done():
				timer.Stop()
				return nil, req.Context().Err()
			}
		}

		resp, err := rc.client.Do(req)
		if err != nil {
			if req.Context().Err() != nil || errors.Is(err, ErrNonPublicAddress) {
				return nil, err
			}
			lastErr = err
			continue
		}
		if !retryable(resp.StatusCode) || attempt == rc.maxRetries {
			return resp, nil
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		lastErr = fmt.Errorf("httpretry: retryable status %d", resp.StatusCode)
	}
	return nil, lastErr
}

// delay returns random(0, min(maxDelay, baseDelay*2^(attempt-1))), floored
// at half the base delay.
func (rc *RetryClient) delay(attempt int) time.Duration {
	exp := float64(rc.baseDelay) * math.Pow(2, float64(attempt-1))
	if exp > float64(rc.maxDelay) {
		exp = float64(rc.maxDelay)
	}
	d := time.Duration(rand.Float64() * exp)
	if floor := rc.baseDelay / 2; d < floor {
		d = floor
	}
	return d
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

type limited struct {
	next    HTTPDoer
	limiter *rate.Limiter
}

// Limit makes every request wait for a token from limiter before it is
// sent. A nil limiter returns next unchanged.
func Limit(next HTTPDoer, limiter *rate.Limiter) HTTPDoer {
	if limiter == nil {
		return next
	}
	return &limited{next: next, limiter: limiter}
}

func (l *limited) Do(req *http.Request) (*http.Response, error) {
	if err := l.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return l.next.Do(req)
}
