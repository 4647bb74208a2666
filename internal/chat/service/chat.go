package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/adapter"
	"github.com/yosefkri/aws-genai-llm-chatbot/internal/chat/types"
)

// ChatService exposes the chat endpoint. It resolves the adapter for the
// requested model through the registry and runs it; fallback behavior is
// the resolved adapter's concern.
type ChatService struct {
	registry *adapter.Registry
	logger   *zap.Logger
}

// NewChatService creates the chat service
func NewChatService(registry *adapter.Registry, logger *zap.Logger) *ChatService {
	return &ChatService{
		registry: registry,
		logger:   logger,
	}
}

// RegisterRoutes registers the chat routes on the given group
func (s *ChatService) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", s.Chat)
}

// ChatHTTPRequest is the wire form of a chat call.
type ChatHTTPRequest struct {
	Model         string            `json:"model" binding:"required"`
	Prompt        string            `json:"prompt" binding:"required"`
	WorkspaceID   string            `json:"workspace_id"`
	Images        []string          `json:"images"`
	Documents     []string          `json:"documents"`
	Videos        []string          `json:"videos"`
	UserGroups    []string          `json:"user_groups"`
	SystemPrompts map[string]string `json:"system_prompts"`
}

// Chat handles POST /chat
func (s *ChatService) Chat(c *gin.Context) {
	var httpReq ChatHTTPRequest
	if err := c.ShouldBindJSON(&httpReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chatAdapter, err := s.registry.Resolve(httpReq.Model)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	req := &types.ChatRequest{
		Prompt:        httpReq.Prompt,
		WorkspaceID:   httpReq.WorkspaceID,
		Images:        httpReq.Images,
		Documents:     httpReq.Documents,
		Videos:        httpReq.Videos,
		UserGroups:    httpReq.UserGroups,
		SystemPrompts: httpReq.SystemPrompts,
	}

	resp, err := chatAdapter.Run(c.Request.Context(), req)
	if err != nil {
		s.logger.Error("chat request failed",
			zap.String("model", httpReq.Model),
			zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "model invocation failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
