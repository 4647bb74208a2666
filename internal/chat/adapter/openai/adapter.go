package openai

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/types"
)

// Config holds the connection settings for an OpenAI-protocol backend.
type Config struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// Validate validates the adapter configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openai api key is required")
	}
	return nil
}

// Adapter runs chat requests against any backend speaking the OpenAI
// chat-completions protocol.
type Adapter struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// New creates an adapter bound to a single model identifier.
func New(cfg *Config, modelID string, logger *zap.Logger) (*Adapter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Adapter{
		client: openai.NewClientWithConfig(clientConfig),
		model:  modelID,
		logger: logger,
	}, nil
}

// Run executes one chat completion and returns the model's answer.
// Failures are returned to the caller; this adapter holds no fallback
// policy of its own.
func (a *Adapter) Run(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	messages := buildMessages(req)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    a.model,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	a.logger.Debug("chat completion finished",
		zap.String("model", a.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens))

	return &types.ChatResponse{
		Content: resp.Choices[0].Message.Content,
		Metadata: map[string]interface{}{
			"modelId": a.model,
			"usage": map[string]interface{}{
				"promptTokens":     resp.Usage.PromptTokens,
				"completionTokens": resp.Usage.CompletionTokens,
				"totalTokens":      resp.Usage.TotalTokens,
			},
		},
	}, nil
}

// buildMessages lays out system prompts in stable role order, then the
// user prompt.
func buildMessages(req *types.ChatRequest) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.SystemPrompts)+1)

	roles := make([]string, 0, len(req.SystemPrompts))
	for role := range req.SystemPrompts {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	for _, role := range roles {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompts[role],
		})
	}

	return append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})
}
