package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryPolicy_Backoff(t *testing.T) {
	t.Parallel()

	p := retryPolicy{attempts: 5, baseDelay: 100 * time.Millisecond, maxDelay: time.Second, multiplier: 2}

	tests := []struct {
		retry int
		want  time.Duration
	}{
		{retry: 1, want: 100 * time.Millisecond},
		{retry: 2, want: 200 * time.Millisecond},
		{retry: 3, want: 400 * time.Millisecond},
		{retry: 4, want: 800 * time.Millisecond},
		{retry: 5, want: time.Second},
		{retry: 9, want: time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("retry %d", tt.retry), func(t *testing.T) {
			t.Parallel()

			lo := time.Duration(float64(tt.want) * (1 - jitter))
			hi := time.Duration(float64(tt.want) * (1 + jitter))
			for range 50 {
				got := p.backoff(tt.retry)
				assert.GreaterOrEqual(t, got, lo)
				assert.LessOrEqual(t, got, hi)
			}
		})
	}
}

func TestRetryPolicy_WaitPrefersRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	p := retryPolicy{attempts: 3, baseDelay: 10 * time.Millisecond, maxDelay: 5 * time.Second, multiplier: 2}

	withHeader := func(v string) *http.Response {
		return &http.Response{Header: http.Header{"Retry-After": []string{v}}}
	}

	assert.Equal(t, 2*time.Second, p.wait(1, withHeader("2"), now))
	assert.Equal(t, 3*time.Second, p.wait(1, withHeader(now.Add(3*time.Second).Format(http.TimeFormat)), now))
	assert.Equal(t, 5*time.Second, p.wait(1, withHeader("600"), now), "capped at the max delay")

	got := p.wait(1, withHeader("soon"), now)
	assert.LessOrEqual(t, got, 13*time.Millisecond, "unparseable header falls back to backoff")
	got = p.wait(1, nil, now)
	assert.LessOrEqual(t, got, 13*time.Millisecond)
}

func TestRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  string
		want   time.Duration
		wantOK bool
	}{
		{name: "empty", value: ""},
		{name: "seconds", value: "7", want: 7 * time.Second, wantOK: true},
		{name: "zero", value: "0", wantOK: true},
		{name: "negative", value: "-3"},
		{name: "future date", value: now.Add(time.Minute).Format(http.TimeFormat), want: time.Minute, wantOK: true},
		{name: "past date", value: now.Add(-time.Minute).Format(http.TimeFormat), wantOK: true},
		{name: "garbage", value: "tomorrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := retryAfter(tt.value, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetryableErr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "wrapped deadline", err: fmt.Errorf("dial: %w", context.DeadlineExceeded), want: false},
		{name: "connection refused", err: errors.New("connect: connection refused"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, retryableErr(tt.err))
		})
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	retryable := []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable}
	final := []int{http.StatusOK, http.StatusAccepted, http.StatusNoContent, http.StatusBadRequest, http.StatusNotFound, http.StatusConflict}

	for _, code := range retryable {
		assert.True(t, retryableStatus(code), "%d", code)
	}
	for _, code := range final {
		assert.False(t, retryableStatus(code), "%d", code)
	}
}
