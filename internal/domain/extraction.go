package domain

// ExtractionOutcome is the single result of one extraction call.
// Candidates is never nil. FailureReason is set iff Succeeded is false.
type ExtractionOutcome struct {
	Succeeded     bool                  `json:"succeeded"`
	Candidates    []VocabularyCandidate `json:"candidates"`
	FailureReason string                `json:"failure_reason,omitempty"`
	FailureKind   ErrorKind             `json:"failure_kind,omitempty"`
	Attempts      int                   `json:"attempts"`
}

// SucceededOutcome builds a successful outcome from parsed candidates.
func SucceededOutcome(candidates []VocabularyCandidate, attempts int) ExtractionOutcome {
	if candidates == nil {
		candidates = []VocabularyCandidate{}
	}
	return ExtractionOutcome{
		Succeeded:  true,
		Candidates: candidates,
		Attempts:   attempts,
	}
}

// FailedOutcome builds a failed outcome from a classified error.
func FailedOutcome(err *ExtractionError, attempts int) ExtractionOutcome {
	reason := err.Message
	if reason == "" {
		reason = MsgTryAgain
	}
	return ExtractionOutcome{
		Succeeded:     false,
		Candidates:    []VocabularyCandidate{},
		FailureReason: reason,
		FailureKind:   err.Kind,
		Attempts:      attempts,
	}
}
