package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/adapter"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/types"
)

type echoAdapter struct {
	err error
}

func (e *echoAdapter) Run(ctx context.Context, req *types.ChatRequest) (*types.ChatResponse, error) {
	if e.err != nil {
		return nil, e.err
	}
	return &types.ChatResponse{
		Content:  "echo: " + req.Prompt,
		Metadata: map[string]interface{}{"workspaceId": req.WorkspaceID},
	}, nil
}

func newTestRouter(t *testing.T, a adapter.BaseAdapter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := adapter.NewRegistry()
	require.NoError(t, registry.Register(`^gpt-.*`, func(modelID string) (adapter.BaseAdapter, error) {
		return a, nil
	}))

	router := gin.New()
	NewChatService(registry, zap.NewNop()).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestChatService_Chat(t *testing.T) {
	router := newTestRouter(t, &echoAdapter{})

	body := `{"model": "gpt-4o", "prompt": "hello", "workspace_id": "ws-1"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "echo: hello")
	assert.Contains(t, w.Body.String(), "ws-1")
}

func TestChatService_Chat_UnknownModel(t *testing.T) {
	router := newTestRouter(t, &echoAdapter{})

	body := `{"model": "titan-text", "prompt": "hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatService_Chat_MissingFields(t *testing.T) {
	router := newTestRouter(t, &echoAdapter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"model": "gpt-4o"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatService_Chat_AdapterFailure(t *testing.T) {
	router := newTestRouter(t, &echoAdapter{err: errors.New("backend down")})

	body := `{"model": "gpt-4o", "prompt": "hello"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "backend down")
}
