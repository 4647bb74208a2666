package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatRequest_WithPrompt(t *testing.T) {
	original := &ChatRequest{
		Prompt:        "original question",
		WorkspaceID:   "ws-1",
		Images:        []string{"img-1"},
		Documents:     []string{"doc-1"},
		Videos:        []string{"vid-1"},
		UserGroups:    []string{"admins"},
		SystemPrompts: map[string]string{"system": "be brief"},
	}

	derived := original.WithPrompt("enhanced question")

	assert.Equal(t, "enhanced question", derived.Prompt)
	assert.Equal(t, "original question", original.Prompt)

	// Every other field carries over
	assert.Equal(t, original.WorkspaceID, derived.WorkspaceID)
	assert.Equal(t, original.Images, derived.Images)
	assert.Equal(t, original.Documents, derived.Documents)
	assert.Equal(t, original.Videos, derived.Videos)
	assert.Equal(t, original.UserGroups, derived.UserGroups)
	assert.Equal(t, original.SystemPrompts, derived.SystemPrompts)
}
