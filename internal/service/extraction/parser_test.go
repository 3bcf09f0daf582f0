package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walled99/Learn-Deutsch/internal/domain"
)

func TestParseCandidates_FencedAndPlainAreEqual(t *testing.T) {
	t.Parallel()

	plain := `[{"word":"Tisch","article":"der","plural":"Tische","category":"Noun","translation":"table","example":"Der Tisch ist aus Holz."}]`
	variants := []string{
		plain,
		"```json\n" + plain + "\n```",
		"```\n" + plain + "\n```",
		"  \n```json" + plain + "```  \n",
		"```json\n```json\n" + plain + "\n```\n```",
	}

	want, err := ParseCandidates(plain)
	require.NoError(t, err)
	require.Len(t, want.Candidates, 1)

	for _, v := range variants {
		got, err := ParseCandidates(v)
		require.NoError(t, err, "input %q", v)
		assert.Equal(t, want.Candidates, got.Candidates, "input %q", v)
	}
}

func TestParseCandidates_DropsInvalidElements(t *testing.T) {
	t.Parallel()

	text := `[
		{"word":"Tisch","category":"Noun","translation":"table"},
		{"word":"","category":"Noun","translation":"empty"},
		{"word":"laufen","category":"Verbish","translation":"to run"},
		{"word":"schnell","category":"Adjective"},
		"just a string",
		42,
		null,
		{"word":"gehen","helper_verb":"sein","past_participle":"gegangen","category":"Verb","translation":"to go"}
	]`

	got, err := ParseCandidates(text)

	require.NoError(t, err)
	require.Len(t, got.Candidates, 2)
	assert.Equal(t, "Tisch", got.Candidates[0].Word)
	assert.Equal(t, "gehen", got.Candidates[1].Word)
	require.NotNil(t, got.Candidates[1].HelperVerb)
	assert.Equal(t, domain.HelperVerbSein, *got.Candidates[1].HelperVerb)

	require.Len(t, got.Rejected, 6)
	indexes := make([]int, 0, len(got.Rejected))
	for _, r := range got.Rejected {
		indexes = append(indexes, r.Index)
		assert.ErrorIs(t, r.Err, domain.ErrValidation)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, indexes)
}

func TestParseCandidates_PartialAcceptance(t *testing.T) {
	t.Parallel()

	text := `[{"word":"Haus","article":"das","category":"Noun","translation":"house"},{"word":"ohne Kategorie","translation":"x"}]`

	got, err := ParseCandidates(text)

	require.NoError(t, err)
	require.Len(t, got.Candidates, 1)
	c := got.Candidates[0]
	assert.Equal(t, "Haus", c.Word)
	require.NotNil(t, c.Article)
	assert.Equal(t, domain.ArticleDas, *c.Article)
	assert.Equal(t, domain.WordCategoryNoun, c.Category)
	assert.Nil(t, c.Plural)
	assert.Nil(t, c.Example)
}

func TestParseCandidates_OptionalFieldsTolerated(t *testing.T) {
	t.Parallel()

	text := `[{
		"word":"Katze",
		"article":"Die",
		"plural":7,
		"helper_verb":"werden",
		"category":"Noun",
		"translation":"cat",
		"example":"  Die   Katze schläft. ",
		"confidence":1.5
	},{
		"word":"oft",
		"category":"Adverb",
		"translation":"often",
		"confidence":0.75
	}]`

	got, err := ParseCandidates(text)

	require.NoError(t, err)
	require.Len(t, got.Candidates, 2)

	katze := got.Candidates[0]
	require.NotNil(t, katze.Article)
	assert.Equal(t, domain.ArticleDie, *katze.Article)
	assert.Nil(t, katze.Plural, "wrong-typed optional field is treated as absent")
	assert.Nil(t, katze.HelperVerb, "out-of-enum helper verb is treated as absent")
	assert.Nil(t, katze.Confidence, "confidence outside [0,1] is treated as absent")
	require.NotNil(t, katze.Example)
	assert.Equal(t, "Die Katze schläft.", *katze.Example)

	oft := got.Candidates[1]
	require.NotNil(t, oft.Confidence)
	assert.InDelta(t, 0.75, *oft.Confidence, 1e-9)
}

func TestParseCandidates_NounWithoutArticleIsValid(t *testing.T) {
	t.Parallel()

	got, err := ParseCandidates(`[{"word":"Wasser","category":"Noun","translation":"water"},{"word":"machen","category":"Verb","translation":"to do"}]`)

	require.NoError(t, err)
	assert.Len(t, got.Candidates, 2)
	assert.Empty(t, got.Rejected)
}

func TestParseCandidates_EmptyArray(t *testing.T) {
	t.Parallel()

	got, err := ParseCandidates("```json\n[]\n```")

	require.NoError(t, err)
	assert.NotNil(t, got.Candidates)
	assert.Empty(t, got.Candidates)
}

func TestParseCandidates_Empty(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := ParseCandidates(text)
		assert.Equal(t, domain.ErrorKindEmptyResponse, domain.KindOf(err), "input %q", text)
	}
}

func TestParseCandidates_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "prose", text: "Here are the words you asked for."},
		{name: "object", text: `{"word":"Tisch"}`},
		{name: "null", text: "null"},
		{name: "truncated", text: `[{"word":"Tisch","category":"Noun"`},
		{name: "fence only", text: "```json\n```"},
		{name: "trailing garbage", text: `[] and more`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseCandidates(tt.text)
			require.Error(t, err)
			assert.Equal(t, domain.ErrorKindMalformedResponse, domain.KindOf(err))
			assert.ErrorIs(t, err, domain.ErrExtraction)
		})
	}
}
