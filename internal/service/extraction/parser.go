package extraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/walled99/Learn-Deutsch/internal/domain"
)

var fenceMarkers = strings.NewReplacer("```json", "", "```", "")

// Rejection records why one array element was dropped.
type Rejection struct {
	Index int
	Err   error
}

// ParseResult holds the accepted candidates in model order and the rejected elements.
type ParseResult struct {
	Candidates []domain.VocabularyCandidate
	Rejected   []Rejection
}

// ParseCandidates turns the model's answer into validated candidates.
//
// Blank text is an EmptyResponse. Every ```json and ``` marker is removed
// before a strict parse; anything that is not a JSON array is a
// MalformedResponse. Elements failing validation are dropped and reported
// in Rejected; the call still succeeds.
func ParseCandidates(text string) (ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return ParseResult{}, domain.NewExtractionError(domain.ErrorKindEmptyResponse, domain.MsgEmptyResponse, nil)
	}

	cleaned := strings.TrimSpace(fenceMarkers.Replace(text))
	if !strings.HasPrefix(cleaned, "[") {
		return ParseResult{}, domain.NewExtractionError(domain.ErrorKindMalformedResponse, domain.MsgMalformedResponse,
			fmt.Errorf("parse: answer is not a JSON array"))
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &elements); err != nil {
		return ParseResult{}, domain.NewExtractionError(domain.ErrorKindMalformedResponse, domain.MsgMalformedResponse,
			fmt.Errorf("parse: %w", err))
	}

	result := ParseResult{Candidates: make([]domain.VocabularyCandidate, 0, len(elements))}
	for i, raw := range elements {
		c, err := validateCandidate(raw)
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Index: i, Err: err})
			continue
		}
		result.Candidates = append(result.Candidates, c)
	}
	return result, nil
}

// validateCandidate checks one element against the candidate schema.
// Required fields must be well-formed; optional fields of the wrong type or
// outside their enum are treated as absent.
func validateCandidate(raw json.RawMessage) (domain.VocabularyCandidate, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.VocabularyCandidate{}, domain.NewValidationError("element", "must be an object")
	}

	var errs []domain.FieldError

	word := domain.CleanText(stringField(fields, "word"))
	if word == "" {
		errs = append(errs, domain.FieldError{Field: "word", Message: "required"})
	}
	translation := domain.CleanText(stringField(fields, "translation"))
	if translation == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	}
	category := domain.WordCategory(stringField(fields, "category"))
	if !category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: fmt.Sprintf("unknown value %q", category)})
	}
	if len(errs) > 0 {
		return domain.VocabularyCandidate{}, domain.NewValidationErrors(errs)
	}

	c := domain.VocabularyCandidate{
		Word:           word,
		Translation:    translation,
		Category:       category,
		Plural:         optionalString(fields, "plural"),
		PastParticiple: optionalString(fields, "past_participle"),
		Example:        optionalString(fields, "example"),
	}
	if a := domain.GenderArticle(strings.ToLower(stringField(fields, "article"))); a.IsValid() {
		c.Article = &a
	}
	if h := domain.HelperVerb(strings.ToLower(stringField(fields, "helper_verb"))); h.IsValid() {
		c.HelperVerb = &h
	}
	if raw, ok := fields["confidence"]; ok {
		var conf float64
		if json.Unmarshal(raw, &conf) == nil && conf >= 0 && conf <= 1 {
			c.Confidence = &conf
		}
	}
	return c, nil
}

// stringField returns the string at key, or "" if absent or not a string.
func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func optionalString(fields map[string]json.RawMessage, key string) *string {
	s := domain.CleanText(stringField(fields, key))
	if s == "" {
		return nil
	}
	return &s
}
