package adapter

import (
	"fmt"
	"regexp"
	"sync"
)

// Registry maps model-identifier patterns to adapter factories. Patterns
// are regular expressions evaluated in reverse registration order, so a
// later, more specific registration overrides an earlier broad one for
// the same identifier (last-match-wins). Registration is declarative and
// has no side effects beyond populating the table.
type Registry struct {
	mu      sync.RWMutex
	entries []registration
}

type registration struct {
	pattern *regexp.Regexp
	factory Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a pattern with its adapter factory. The pattern must be a
// valid regular expression.
func (r *Registry) Register(pattern string, factory Factory) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid adapter pattern %q: %w", pattern, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, registration{pattern: re, factory: factory})
	return nil
}

// MustRegister is Register for static registration tables; it panics on
// an invalid pattern.
func (r *Registry) MustRegister(pattern string, factory Factory) {
	if err := r.Register(pattern, factory); err != nil {
		panic(err)
	}
}

// Resolve returns an adapter instance for the model identifier, built by
// the factory of the most recently registered matching pattern.
func (r *Registry) Resolve(modelID string) (BaseAdapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].pattern.MatchString(modelID) {
			return r.entries[i].factory(modelID)
		}
	}
	return nil, fmt.Errorf("no adapter registered for model %q", modelID)
}

// Patterns returns the registered patterns in registration order.
func (r *Registry) Patterns() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patterns := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		patterns = append(patterns, e.pattern.String())
	}
	return patterns
}
