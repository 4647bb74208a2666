package types

// SearchResponse represents a search response.
//
// Exactly one of Results or Error is meaningful at a time: when Error is
// non-empty it takes priority in every consumer, and Results must be
// ignored. Provider failures always terminate in an Error value rather
// than a returned Go error, so callers must check Failed() before reading
// Results.
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []*SearchResult `json:"results"`
	Took    float64         `json:"time"` // seconds, as reported by the provider
	Error   string          `json:"error,omitempty"`
}

// Failed reports whether the response carries an error.
func (r *SearchResponse) Failed() bool {
	return r != nil && r.Error != ""
}

// SearchResult represents a single search result. Any field may be empty;
// formatting layers substitute explicit placeholders, never empty output.
type SearchResult struct {
	Title   string `json:"title,omitempty"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content,omitempty"` // snippet
}
