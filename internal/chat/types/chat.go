package types

// ChatRequest is the model-facing chat request. It is immutable once
// constructed and owned by the caller; derived requests are built with
// WithPrompt rather than by mutation.
type ChatRequest struct {
	Prompt        string            `json:"prompt"`
	WorkspaceID   string            `json:"workspace_id,omitempty"`
	Images        []string          `json:"images,omitempty"`
	Documents     []string          `json:"documents,omitempty"`
	Videos        []string          `json:"videos,omitempty"`
	UserGroups    []string          `json:"user_groups,omitempty"`
	SystemPrompts map[string]string `json:"system_prompts,omitempty"`
}

// WithPrompt returns a copy of the request with the prompt replaced and
// every other field carried over unchanged.
func (r *ChatRequest) WithPrompt(prompt string) *ChatRequest {
	clone := *r
	clone.Prompt = prompt
	return &clone
}

// ChatResponse is the model's answer plus extensible metadata. Content is
// never rewritten once the adapter returns it; consumers that want a
// different answer must request a new response.
type ChatResponse struct {
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// MetadataKeyWebSearch is the metadata entry describing a web-search
// fallback performed for this response.
const MetadataKeyWebSearch = "webSearch"

// WebSearchMetadata records that a response was produced from a prompt
// augmented with web-search evidence.
type WebSearchMetadata struct {
	Performed    bool   `json:"performed"`
	Query        string `json:"query"`
	ResultsCount int    `json:"resultsCount"`
}
