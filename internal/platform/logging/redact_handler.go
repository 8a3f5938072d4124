package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values are never
// logged. The HTTP middleware redacts the same set before building log
// attributes.
var SensitiveHeaders = map[string]bool{
	"authorization":     true,
	"cookie":            true,
	"x-api-key":         true,
	"x-board-signature": true,
}

// sensitiveFields are attribute keys redacted wherever they appear.
var sensitiveFields = []string{"password", "secret", "token", "signature"}

// sensitivePrefixes catch variants such as secret_key or api_key_v2.
var sensitivePrefixes = []string{"secret_", "api_key", "webhook_secret"}

var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment so version strings like 1.2.3 pass.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

	// HMAC signatures as sent in X-Board-Signature.
	signaturePattern = regexp.MustCompile(`sha256=[a-fA-F0-9]{64}`)
)

// newRedactAttr returns a masq ReplaceAttr func that redacts by attribute
// name and, for values that slip through, by pattern.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+4)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(apiKeyInlinePattern),
		masq.WithRegex(signaturePattern),
	)

	return masq.New(opts...)
}
