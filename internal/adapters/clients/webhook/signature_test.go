package webhook_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/project-board/internal/adapters/clients/webhook"
)

func TestSign_Format(t *testing.T) {
	t.Parallel()

	sig := webhook.Sign("key", []byte(`{"projects":[],"count":0}`))
	assert.True(t, strings.HasPrefix(sig, "sha256="))
	assert.Len(t, sig, len("sha256=")+64)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	body := []byte(`{"projects":[],"count":0}`)
	valid := webhook.Sign("key", body)

	tests := []struct {
		name      string
		secret    string
		body      []byte
		signature string
		want      bool
	}{
		{name: "valid", secret: "key", body: body, signature: valid, want: true},
		{name: "wrong secret", secret: "other", body: body, signature: valid},
		{name: "tampered body", secret: "key", body: []byte(`{"projects":[],"count":1}`), signature: valid},
		{name: "missing prefix", secret: "key", body: body, signature: strings.TrimPrefix(valid, "sha256=")},
		{name: "not hex", secret: "key", body: body, signature: "sha256=zz"},
		{name: "empty", secret: "key", body: body},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, webhook.Verify(tt.secret, tt.body, tt.signature))
		})
	}
}
