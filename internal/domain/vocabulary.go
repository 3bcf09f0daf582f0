package domain

// VocabularyCandidate is one word or phrase the model found in a photo.
// It is a proposal for the user to review, not a stored vocabulary entry.
// A noun without an article or a verb without a helper verb is still valid.
type VocabularyCandidate struct {
	Word           string         `json:"word"`
	Article        *GenderArticle `json:"article,omitempty"`
	Plural         *string        `json:"plural,omitempty"`
	HelperVerb     *HelperVerb    `json:"helper_verb,omitempty"`
	PastParticiple *string        `json:"past_participle,omitempty"`
	Translation    string         `json:"translation"`
	Example        *string        `json:"example,omitempty"`
	Category       WordCategory   `json:"category"`
	Confidence     *float64       `json:"confidence,omitempty"`
}
