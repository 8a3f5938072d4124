package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/project-board/internal/platform/config"
	"github.com/jsamuelsen11/project-board/internal/platform/logging"
)

// jitter spreads each delay by up to this fraction either way.
const jitter = 0.25

// retryPolicy is exponential backoff with jitter. A Retry-After header on a
// 429 or 503 replaces the computed delay, capped at maxDelay.
type retryPolicy struct {
	attempts   int
	baseDelay  time.Duration
	maxDelay   time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		attempts:   cfg.MaxAttempts,
		baseDelay:  cfg.InitialInterval,
		maxDelay:   cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// backoff is the delay before retry n (n >= 1), jitter included.
func (p retryPolicy) backoff(n int) time.Duration {
	d := float64(p.baseDelay) * math.Pow(p.multiplier, float64(n-1))
	d = min(d, float64(p.maxDelay))
	d += d * jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto randomness
	return time.Duration(max(d, 0))
}

// wait picks the delay for retry n, preferring the server's Retry-After.
func (p retryPolicy) wait(n int, resp *http.Response, now time.Time) time.Duration {
	if resp != nil {
		if d, ok := retryAfter(resp.Header.Get("Retry-After"), now); ok {
			return min(d, p.maxDelay)
		}
	}
	return p.backoff(n)
}

// retryAfter parses a Retry-After value given either as delta seconds or as
// an HTTP date.
func retryAfter(v string, now time.Time) (time.Duration, bool) {
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0), true
	}
	return 0, false
}

// retryableErr reports whether a transport error is worth another attempt.
// Cancellation and deadlines are final; everything else (refused
// connections, resets, client timeouts) is retried.
func retryableErr(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus reports whether a status is worth another attempt: 429
// and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// send runs the attempts for req. The body is buffered once so every
// attempt replays the same bytes.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.attempts < 1 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.attempts)
	}

	var body []byte
	if req.Body != nil {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("reading request body: %w", err)
		}
		body = b
	}

	var (
		resp    *http.Response
		lastErr error
	)
	for n := range c.retry.attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, resp, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		r, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			resp, lastErr = nil, err
			continue
		}
		if !retryableStatus(r.StatusCode) {
			return r, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.peer)
		if n == c.retry.attempts-1 {
			return r, lastErr
		}

		// Keep the headers for Retry-After; the body is not needed.
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
		resp = r
	}
	return nil, lastErr
}

// pause logs the upcoming retry and sleeps, returning early with the
// context's error if ctx ends first.
func (c *Client) pause(ctx context.Context, req *http.Request, n int, prev *http.Response, cause error) error {
	d := c.retry.wait(n, prev, time.Now())

	logging.FromContext(ctx).WarnContext(ctx, "retrying outbound request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
