package extraction

// extractionPrompt is sent as the text part of every request. The JSON
// shape it describes is what ParseCandidates validates.
const extractionPrompt = `
You are a German language expert AI. Your task is to extract German vocabulary from images.
For each word or phrase found, return a JSON array of objects.

RULES:
1. Extract the German word, its English translation, and a contextual example sentence.
2. For NOUNS: Include the definite article (der, die, das) and the plural form.
3. For VERBS: Include the helper verb (haben, sein) and the past participle.
4. Categorize each entry as: "Noun", "Verb", "Adjective", "Adverb", or "Phrase".
5. Return ONLY a valid JSON array. No markdown, no triple backticks.

JSON FORMAT:
[
  {
    "word": "Tisch",
    "article": "der",
    "plural": "Tische",
    "category": "Noun",
    "translation": "table",
    "example": "Der Tisch ist aus Holz."
  },
  {
    "word": "gehen",
    "helper_verb": "sein",
    "past_participle": "gegangen",
    "category": "Verb",
    "translation": "to go",
    "example": "Wir sind nach Hause gegangen."
  }
]
`

// BuildPrompt returns the instruction text for the vision model.
// It is identical for every call.
func BuildPrompt() string {
	return extractionPrompt
}
