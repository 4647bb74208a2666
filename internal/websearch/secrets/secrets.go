package secrets

import "context"

// Provider supplies the search API key. A failure here is a configuration
// error: the search layer does not retry secret retrieval, it aborts the
// search path immediately.
type Provider interface {
	// APIKey returns the API key for the search provider.
	APIKey(ctx context.Context) (string, error)
}

// Static returns the same key on every call. Used for local runs where the
// key comes straight from configuration or the environment.
type Static struct {
	key string
}

// NewStatic creates a provider backed by a fixed key.
func NewStatic(key string) *Static {
	return &Static{key: key}
}

// APIKey returns the configured key.
func (s *Static) APIKey(ctx context.Context) (string, error) {
	if s.key == "" {
		return "", ErrSecretNotConfigured
	}
	return s.key, nil
}
