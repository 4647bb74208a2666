package fallback

import (
	"context"

	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/adapter"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/types"
	searchtypes "github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/types"
)

// Searcher is the slice of the search provider the orchestrator consumes.
// Search reports failures through the response's Error field, never
// through a returned error.
type Searcher interface {
	Search(ctx context.Context, req *searchtypes.SearchRequest) *searchtypes.SearchResponse
}

// Orchestrator wraps a base adapter with an opt-in web-search fallback.
//
// It holds a reference to the base adapter rather than extending it, so
// both invocation points are explicit and independently testable. The
// outward-facing failure rate never exceeds the base adapter's own: every
// failure on the fallback path degrades to the original response, and
// only a first-call failure escapes this layer.
type Orchestrator struct {
	base      adapter.BaseAdapter
	searcher  Searcher
	heuristic *ConfidenceHeuristic
	augmenter *PromptAugmenter
	logger    *zap.Logger
}

// NewOrchestrator creates a fallback orchestrator around base.
func NewOrchestrator(base adapter.BaseAdapter, searcher Searcher, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		base:      base,
		searcher:  searcher,
		heuristic: NewConfidenceHeuristic(),
		augmenter: NewPromptAugmenter(),
		logger:    logger,
	}
}

// Run invokes the base adapter and, when the answer disclaims knowledge,
// drives the search-augmented second call. A first-call error is
// propagated: there is no response to degrade to yet.
func (o *Orchestrator) Run(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	initial, err := o.base.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	if !o.heuristic.IsLowConfidence(initial.Content) {
		return initial, nil
	}

	o.logger.Info("low-confidence answer detected, performing web search",
		zap.String("query", truncate(req.Prompt, 100)))

	return o.runAugmented(ctx, req, initial), nil
}

// runAugmented performs the search, the prompt enhancement and the second
// model call. Every failure, including a panic anywhere on this path,
// resolves to the original response: a failed search must never replace a
// valid, if unhelpful, answer with an outright failure.
func (o *Orchestrator) runAugmented(ctx context.Context, req *types.ChatRequest, initial *types.ChatResponse) (final *types.ChatResponse) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("panic during web search fallback, returning original response",
				zap.Any("panic", r))
			final = initial
		}
	}()

	searchResp := o.searcher.Search(ctx, &searchtypes.SearchRequest{Query: req.Prompt})
	if searchResp == nil || searchResp.Failed() {
		if searchResp != nil {
			o.logger.Error("web search failed, returning original response",
				zap.String("error", searchResp.Error))
		}
		return initial
	}

	enhanced := o.augmenter.EnhancePrompt(req.Prompt, searchResp)
	o.logger.Debug("created enhanced prompt with search results",
		zap.String("prompt", truncate(enhanced, 100)))

	second, err := o.base.Run(ctx, req.WithPrompt(enhanced))
	if err != nil {
		o.logger.Error("fallback model call failed, returning original response",
			zap.Error(err))
		return initial
	}

	if second.Metadata != nil {
		second.Metadata[types.MetadataKeyWebSearch] = types.WebSearchMetadata{
			Performed:    true,
			Query:        req.Prompt,
			ResultsCount: len(searchResp.Results),
		}
	}
	return second
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
