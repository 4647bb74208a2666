package provider

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/secrets"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/types"
)

// Constructor builds a provider from configuration and a secret source.
type Constructor func(*types.ProviderConfig, secrets.Provider, *zap.Logger) (Provider, error)

// Factory creates provider instances
type Factory struct {
	mu           sync.RWMutex
	constructors map[types.ProviderID]Constructor
}

// NewFactory creates a new provider factory
func NewFactory() *Factory {
	f := &Factory{
		constructors: make(map[types.ProviderID]Constructor),
	}

	// Register built-in providers
	f.Register(types.ProviderTavily, NewTavilyProvider)

	return f
}

// Register registers a provider constructor
func (f *Factory) Register(id types.ProviderID, constructor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[id] = constructor
}

// Create creates a provider instance from configuration
func (f *Factory) Create(config *types.ProviderConfig, secretSource secrets.Provider, logger *zap.Logger) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	f.mu.RLock()
	constructor, exists := f.constructors[config.ID]
	f.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderNotFound, config.ID)
	}

	return constructor(config, secretSource, logger)
}

// ListProviders returns a list of all registered provider IDs
func (f *Factory) ListProviders() []types.ProviderID {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]types.ProviderID, 0, len(f.constructors))
	for id := range f.constructors {
		ids = append(ids, id)
	}
	return ids
}
