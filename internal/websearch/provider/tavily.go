package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/secrets"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/types"
)

// TavilyProvider implements the Tavily search API with bounded retries.
type TavilyProvider struct {
	*BaseProvider
	secretSource secrets.Provider
	logger       *zap.Logger

	// newBackoff is swapped out in tests to avoid real waits.
	newBackoff func() retry.Backoff
}

// NewTavilyProvider creates a new Tavily provider
func NewTavilyProvider(config *types.ProviderConfig, secretSource secrets.Provider, logger *zap.Logger) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TavilyProvider{
		BaseProvider: NewBaseProvider(config),
		secretSource: secretSource,
		logger:       logger,
		newBackoff:   exponentialFullJitter,
	}, nil
}

// Search executes a search query using the Tavily API.
//
// The API key is fetched from the secret source per call and attached to
// the request payload. A secret failure aborts immediately with an Error
// response: missing configuration is not a transient condition, so it is
// never retried. Transport and non-2xx failures are retried with
// exponential backoff plus jitter until the retry ceiling is reached.
func (p *TavilyProvider) Search(ctx context.Context, req *types.SearchRequest) *types.SearchResponse {
	if req.Query == "" {
		return p.errorResponse(req, types.ErrEmptyQuery.Error())
	}

	payload := req.Payload()

	apiKey, err := p.secretSource.APIKey(ctx)
	if err != nil {
		p.logger.Error("failed to get search API key", zap.Error(err))
		return p.errorResponse(req, fmt.Sprintf("Failed to get API key: %v", err))
	}
	payload["api_key"] = apiKey

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return p.errorResponse(req, fmt.Sprintf("failed to marshal request: %v", err))
	}

	apiURL := fmt.Sprintf("%s/search", p.GetConfig().APIHost)
	maxRetries := p.MaxRetries()
	backoff := retry.WithMaxRetries(uint64(maxRetries), p.newBackoff())

	var searchResp types.SearchResponse
	attempts := 0

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		if attempts > 1 {
			p.logger.Info("retrying search request",
				zap.Int("attempt", attempts),
				zap.Int("max_retries", maxRetries))
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqBody))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		for k, v := range p.BuildDefaultHeaders() {
			httpReq.Header.Set(k, v)
		}

		resp, err := p.GetHTTPClient().Do(httpReq)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			body, _ := io.ReadAll(resp.Body)
			return retry.RetryableError(&types.ProviderError{
				Provider: p.GetID(),
				Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
				Message:  strings.TrimSpace(string(body)),
			})
		}

		if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	})

	if err != nil {
		p.logger.Error("search request failed",
			zap.Int("attempts", attempts),
			zap.Error(err))
		if attempts > maxRetries {
			return p.errorResponse(req, fmt.Sprintf("API request failed after %d retries: %v", maxRetries, err))
		}
		return p.errorResponse(req, err.Error())
	}

	if searchResp.Query == "" {
		searchResp.Query = req.Query
	}

	p.logger.Info("search completed",
		zap.String("query", req.Query),
		zap.Int("results", len(searchResp.Results)))

	return &searchResp
}

func (p *TavilyProvider) errorResponse(req *types.SearchRequest, msg string) *types.SearchResponse {
	return &types.SearchResponse{
		Query: req.Query,
		Error: msg,
	}
}
