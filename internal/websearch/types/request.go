package types

// SearchRequest represents a search request
type SearchRequest struct {
	Query       string `json:"query" validate:"required,min=1,max=1000"`
	SearchDepth string `json:"search_depth,omitempty"` // "basic" or "advanced"

	// Options carries provider-specific parameters merged into the request
	// payload. Nil-valued entries are dropped before submission.
	Options map[string]interface{} `json:"options,omitempty"`
}

// Payload builds the wire payload for the request. Defaults are applied
// first, then non-nil options override or extend them.
func (r *SearchRequest) Payload() map[string]interface{} {
	payload := map[string]interface{}{
		"query":        r.Query,
		"search_depth": r.SearchDepth,
	}
	if r.SearchDepth == "" {
		payload["search_depth"] = "basic"
	}
	for k, v := range r.Options {
		if v == nil {
			continue
		}
		payload[k] = v
	}
	return payload
}
