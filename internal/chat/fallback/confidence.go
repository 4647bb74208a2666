package fallback

import "strings"

// dontKnowPhrases are phrases associated with epistemic uncertainty or a
// disclaimed lack of access, in English, French and Hebrew. Matching is
// pure substring containment: a phrase embedded inside unrelated text
// still triggers. The false-positive cost is an extra search, not a wrong
// answer, since the final response is still model-composed.
var dontKnowPhrases = []string{
	"I don't know",
	"I don't have",
	"I'm not sure",
	"I am not sure",
	"I do not know",
	"I do not have",
	"I cannot provide",
	"I can't provide",
	"I don't have access to",
	"I don't have information",
	"I don't have enough information",
	"I don't have current information",
	"I don't have real-time",
	"I cannot access",
	"I cannot browse",
	"I don't have the ability to search",
	"I don't have the capability to access",
	"I don't have up-to-date information",
	"I'm not able to search",
	"I'm not able to browse",
	"I'm not connected to the internet",
	"I don't have internet access",
	"My knowledge is limited to",
	"My training data only includes",
	"My training cut-off",
	"As an AI language model, I don't have access to",
	"Je ne sais pas",
	"Je n'ai pas",
	"Je ne suis pas sûr",
	"Je ne peux pas fournir",
	"Je n'ai pas accès à",
	"Je n'ai pas d'informations",
	"Je n'ai pas suffisamment d'informations",
	"Je ne connais pas",
	"אני לא יודע",
	"אין לי מידע",
	"אין לי גישה",
	"אני לא בטוח",
	"המידע אינו זמין",
	"אין ברשותי מידע",
}

// ConfidenceHeuristic classifies a model answer as low confidence when it
// contains any phrase from its table, case-insensitively. It is a pure
// function of the input text and the table; the table is read-only after
// construction.
type ConfidenceHeuristic struct {
	phrases []string // lowercased
}

// NewConfidenceHeuristic builds a heuristic from the given phrases, or
// from the default table when none are given. The phrase list is a
// replaceable detection policy, not a fixed algorithm.
func NewConfidenceHeuristic(phrases ...string) *ConfidenceHeuristic {
	if len(phrases) == 0 {
		phrases = dontKnowPhrases
	}

	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	return &ConfidenceHeuristic{phrases: lowered}
}

// IsLowConfidence reports whether text disclaims knowledge or capability.
func (h *ConfidenceHeuristic) IsLowConfidence(text string) bool {
	lowered := strings.ToLower(text)
	for _, phrase := range h.phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
