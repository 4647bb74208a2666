package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRequest_Payload(t *testing.T) {
	tests := []struct {
		name string
		req  *SearchRequest
		want map[string]interface{}
	}{
		{
			name: "defaults applied",
			req:  &SearchRequest{Query: "q"},
			want: map[string]interface{}{
				"query":        "q",
				"search_depth": "basic",
			},
		},
		{
			name: "options extend and override defaults",
			req: &SearchRequest{
				Query: "q",
				Options: map[string]interface{}{
					"search_depth": "advanced",
					"max_results":  3,
				},
			},
			want: map[string]interface{}{
				"query":        "q",
				"search_depth": "advanced",
				"max_results":  3,
			},
		},
		{
			name: "nil-valued options dropped",
			req: &SearchRequest{
				Query: "q",
				Options: map[string]interface{}{
					"topic": nil,
				},
			},
			want: map[string]interface{}{
				"query":        "q",
				"search_depth": "basic",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Payload())
		})
	}
}

func TestSearchResponse_Failed(t *testing.T) {
	assert.False(t, (&SearchResponse{}).Failed())
	assert.False(t, (*SearchResponse)(nil).Failed())
	assert.True(t, (&SearchResponse{Error: "boom"}).Failed())

	// Error presence wins even when results are structurally present
	resp := &SearchResponse{
		Error:   "boom",
		Results: []*SearchResult{{Title: "t"}},
	}
	assert.True(t, resp.Failed())
}

func TestProviderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *ProviderConfig
		wantErr error
	}{
		{
			name: "valid config",
			config: &ProviderConfig{
				ID:      ProviderTavily,
				Name:    "Tavily",
				APIHost: "https://api.tavily.com",
			},
			wantErr: nil,
		},
		{
			name: "missing provider ID",
			config: &ProviderConfig{
				Name:    "Test",
				APIHost: "https://api.test.com",
			},
			wantErr: ErrInvalidProviderID,
		},
		{
			name: "missing name",
			config: &ProviderConfig{
				ID:      ProviderTavily,
				APIHost: "https://api.tavily.com",
			},
			wantErr: ErrInvalidProviderName,
		},
		{
			name: "missing API host",
			config: &ProviderConfig{
				ID:   ProviderTavily,
				Name: "Tavily",
			},
			wantErr: ErrInvalidAPIHost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
