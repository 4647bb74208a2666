package adapter

import (
	"context"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/types"
)

// BaseAdapter is the contract every model backend implements. Run blocks
// until the model answers or fails; adapters do not retry or degrade,
// higher layers own those policies.
type BaseAdapter interface {
	Run(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error)
}

// Factory builds an adapter for a concrete model identifier. The same
// pattern can serve a whole model family, so the resolved identifier is
// passed through.
type Factory func(modelID string) (BaseAdapter, error)
