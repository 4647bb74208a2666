package secrets

import "errors"

var (
	// ErrSecretNotConfigured indicates the secret reference is unset in the
	// configuration or environment.
	ErrSecretNotConfigured = errors.New("search API key secret is not configured")
)
