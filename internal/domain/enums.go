package domain

// WordCategory is the grammatical category the model assigns to a candidate.
type WordCategory string

const (
	WordCategoryNoun      WordCategory = "Noun"
	WordCategoryVerb      WordCategory = "Verb"
	WordCategoryAdjective WordCategory = "Adjective"
	WordCategoryAdverb    WordCategory = "Adverb"
	WordCategoryPhrase    WordCategory = "Phrase"
)

func (c WordCategory) String() string { return string(c) }

func (c WordCategory) IsValid() bool {
	switch c {
	case WordCategoryNoun, WordCategoryVerb, WordCategoryAdjective, WordCategoryAdverb, WordCategoryPhrase:
		return true
	}
	return false
}

// GenderArticle is the definite article of a German noun.
type GenderArticle string

const (
	ArticleDer GenderArticle = "der"
	ArticleDie GenderArticle = "die"
	ArticleDas GenderArticle = "das"
)

func (a GenderArticle) String() string { return string(a) }

func (a GenderArticle) IsValid() bool {
	switch a {
	case ArticleDer, ArticleDie, ArticleDas:
		return true
	}
	return false
}

// HelperVerb is the auxiliary a German verb forms its perfect tense with.
type HelperVerb string

const (
	HelperVerbHaben HelperVerb = "haben"
	HelperVerbSein  HelperVerb = "sein"
)

func (h HelperVerb) String() string { return string(h) }

func (h HelperVerb) IsValid() bool {
	switch h {
	case HelperVerbHaben, HelperVerbSein:
		return true
	}
	return false
}

// ErrorKind classifies why an extraction failed.
type ErrorKind string

const (
	ErrorKindConfiguration     ErrorKind = "ConfigurationError"
	ErrorKindInput             ErrorKind = "InputError"
	ErrorKindOffline           ErrorKind = "Offline"
	ErrorKindTimeout           ErrorKind = "Timeout"
	ErrorKindRateLimited       ErrorKind = "RateLimited"
	ErrorKindServerTransient   ErrorKind = "ServerTransient"
	ErrorKindClient            ErrorKind = "ClientError"
	ErrorKindEmptyResponse     ErrorKind = "EmptyResponse"
	ErrorKindMalformedResponse ErrorKind = "MalformedResponse"
)

func (k ErrorKind) String() string { return string(k) }

func (k ErrorKind) IsValid() bool {
	switch k {
	case ErrorKindConfiguration, ErrorKindInput, ErrorKindOffline, ErrorKindTimeout,
		ErrorKindRateLimited, ErrorKindServerTransient, ErrorKindClient,
		ErrorKindEmptyResponse, ErrorKindMalformedResponse:
		return true
	}
	return false
}

// Retryable reports whether a failure of this kind may succeed on another attempt.
func (k ErrorKind) Retryable() bool {
	switch k {
	case ErrorKindTimeout, ErrorKindRateLimited, ErrorKindServerTransient:
		return true
	}
	return false
}
