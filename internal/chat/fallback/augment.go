package fallback

import (
	"fmt"
	"strings"

	searchtypes "github.com/yosefkri/aws-genai-llm-chatbot/internal/websearch/types"
)

// PromptAugmenter turns raw search results into evidence text and
// composes the enhanced prompt for the second model call.
type PromptAugmenter struct{}

// NewPromptAugmenter creates a prompt augmenter
func NewPromptAugmenter() *PromptAugmenter {
	return &PromptAugmenter{}
}

// FormatResults renders a search response as a readable evidence block.
// An error-bearing response yields a one-line notice carrying only the
// error message. Absent result fields get explicit placeholders so the
// output never contains holes.
func (a *PromptAugmenter) FormatResults(resp *searchtypes.SearchResponse) string {
	if resp.Failed() {
		return fmt.Sprintf("Error retrieving search results: %s", resp.Error)
	}

	var b strings.Builder
	b.WriteString("### SEARCH RESULTS ###\n\n")

	query := resp.Query
	if query == "" {
		query = "Unknown query"
	}
	fmt.Fprintf(&b, "Query: %s\n", query)
	fmt.Fprintf(&b, "Search time: %.2f seconds\n\n", resp.Took)

	if len(resp.Results) == 0 {
		b.WriteString("No search results found.\n\n")
		return b.String()
	}

	for i, result := range resp.Results {
		fmt.Fprintf(&b, "Result %d:\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", orPlaceholder(result.Title, "No title"))
		fmt.Fprintf(&b, "URL: %s\n", orPlaceholder(result.URL, "No URL"))
		fmt.Fprintf(&b, "Content: %s\n\n", orPlaceholder(result.Content, "No content"))
	}

	return b.String()
}

// EnhancePrompt composes the instruction prompt for the second model
// call: a fixed instruction, the verbatim original query, the evidence
// block (or an explicit notice when resp is nil), and a closing
// instruction. The closing instruction tells the model to cite sources,
// prefer the evidence and flag knowledge-based fallback answers as such;
// it is what keeps the second call honest about provenance.
func (a *PromptAugmenter) EnhancePrompt(originalQuery string, resp *searchtypes.SearchResponse) string {
	var b strings.Builder

	b.WriteString("I need you to answer the user's question using the search results provided below.\n\n")
	fmt.Fprintf(&b, "User's original question: %s\n\n", originalQuery)

	if resp != nil {
		b.WriteString(a.FormatResults(resp))
	} else {
		b.WriteString("No search results are available.\n\n")
	}

	b.WriteString("Based on the search results above, please provide a comprehensive answer to the user's question. ")
	b.WriteString("Include relevant information from the search results and cite sources where appropriate. ")
	b.WriteString("If the search results don't contain relevant information, acknowledge this and provide the best answer you can ")
	b.WriteString("based on your knowledge, clearly indicating what information comes from your knowledge versus the search results.")

	return b.String()
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
