package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvKeyMapper(t *testing.T) {
	t.Parallel()

	mapKey := envKeyMapper([]string{
		"server.request_timeout",
		"webhook.urls",
		"webhook.client.retry.max_attempts",
		"board.people_max",
	})

	tests := []struct {
		env     string
		value   string
		wantKey string
		want    any
	}{
		{env: "APP_SERVER_REQUEST_TIMEOUT", value: "3s", wantKey: "server.request_timeout", want: "3s"},
		{env: "APP_BOARD_PEOPLE_MAX", value: "8", wantKey: "board.people_max", want: "8"},
		{env: "APP_WEBHOOK_CLIENT_RETRY_MAX_ATTEMPTS", value: "1", wantKey: "webhook.client.retry.max_attempts", want: "1"},
		{env: "APP_WEBHOOK_URLS", value: " http://a/h ,,http://b/h", wantKey: "webhook.urls", want: []string{"http://a/h", "http://b/h"}},
		{env: "APP_UNKNOWN_THING", value: "x", wantKey: "unknown.thing", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			key, value := mapKey(tt.env, tt.value)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestSplitList_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, splitList(""))
	assert.Empty(t, splitList(" , ,"))
}
