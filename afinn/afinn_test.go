package afinn

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.Equal(t, "en", a.Language())
	assert.Nil(t, a.emoticons)
	assert.True(t, a.wordBoundary)
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	a, err := New(Language("xx"))
	require.Error(t, err)
	assert.Nil(t, a)

	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))

	var lexErr *LexiconError
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, "xx", lexErr.Language)
}

func TestScore_EmptyAndUnmatched(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.Equal(t, 0.0, a.Score(""))
	assert.Equal(t, 0.0, a.Score("the rain in spain"))
	assert.Equal(t, 0.0, a.Score("???!!!"))
	assert.Equal(t, 0.0, a.Score("日本語のテキスト"))
}

func TestScore_SingleWord(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.Equal(t, 3.0, a.Score("excellent"))
	assert.Equal(t, 3.0, a.Score("This is utterly excellent!"))
	assert.Equal(t, -3.0, a.Score("bad"))
	assert.True(t, a.Score("This is oh so bad.") < 0)
}

func TestScore_SumsContributions(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	// good (3) + bad (-3)
	assert.Equal(t, 0.0, a.Score("good and bad"))
	// great (3) + wonderful (4)
	assert.Equal(t, 7.0, a.Score("a great and wonderful day"))
}

func TestScore_NegationFlipsSign(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.Equal(t, 3.0, a.Score("excellent"))
	assert.Equal(t, -3.0, a.Score("not excellent"))
	assert.Equal(t, -3.0, a.Score("it is not excellent"))

	// negative terms flip positive under negation
	assert.Equal(t, 3.0, a.Score("never bad"))
}

func TestScore_NegationWindowBounded(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	// four tokens between the negation and the match put it out of reach
	assert.Equal(t, 3.0, a.Score("not that the weather mattered excellent"))
	// inside the window the sign still flips
	assert.Equal(t, -3.0, a.Score("not at all excellent"))
}

func TestScore_LongestMatchWins(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	// "not good" is a lexicon phrase; the inner "good" must not also score
	assert.Equal(t, -2.0, a.Score("not good"))
	assert.Equal(t, -3.0, a.Score("it does not work"))
	assert.Equal(t, 3.0, a.Score("that was cool stuff"))
}

func TestScore_Emoticons(t *testing.T) {
	plain, err := New()
	require.NoError(t, err)
	withEmoticons, err := New(Emoticons(true))
	require.NoError(t, err)

	assert.Equal(t, 0.0, plain.Score("I saw that yesterday :)"))
	assert.Equal(t, 2.0, withEmoticons.Score("I saw that yesterday :)"))

	// emoticon weights join word weights
	assert.Equal(t, 6.0, withEmoticons.Score("Great :-D"))

	// emoticons are never negated
	assert.Equal(t, -2.0, withEmoticons.Score("never fun :)"))
}

func TestScore_EmoticonLongestMatch(t *testing.T) {
	a, err := New(Emoticons(true))
	require.NoError(t, err)

	// ":-(" must win over ":(" at the same position
	assert.Equal(t, -2.0, a.Score(":-("))
	assert.Equal(t, -4.0, a.Score(":( :("))
}

func TestScore_Idempotent(t *testing.T) {
	a, err := New(Emoticons(true))
	require.NoError(t, err)

	text := "Not a bad day :) though the weather was terrible"
	first := a.Score(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, a.Score(text))
	}
}

func TestScore_Danish(t *testing.T) {
	a, err := New(Language("da"))
	require.NoError(t, err)

	assert.True(t, a.Score("bedrageri") < 0)
	assert.True(t, a.Score("besvær") < 0)
	assert.True(t, a.Score("Det er bare vidunderlig!!!") > 0)

	// "ikke god" is a lexicon phrase, matched across punctuation and
	// ragged spacing
	assert.Equal(t, -2.0, a.Score("ikke god"))
	assert.Equal(t, -2.0, a.Score("ikke god."))
	assert.Equal(t, -2.0, a.Score("IKKE GOD-"))
	assert.Equal(t, -2.0, a.Score("ikke   god"))

	// negation token outside a phrase flips the matched weight
	assert.Equal(t, -3.0, a.Score("aldrig god"))
}

func TestScore_LanguageIsolation(t *testing.T) {
	en, err := New()
	require.NoError(t, err)
	da, err := New(Language("da"))
	require.NoError(t, err)

	assert.Equal(t, 0.0, en.Score("vidunderlig"))
	assert.Equal(t, 0.0, da.Score("excellent"))
}

func TestScore_WordBoundary(t *testing.T) {
	bounded, err := New()
	require.NoError(t, err)
	unbounded, err := New(WordBoundary(false))
	require.NoError(t, err)

	// "goodness" only contains "good" as a substring
	assert.Equal(t, 0.0, bounded.Score("goodness"))
	assert.Equal(t, 3.0, unbounded.Score("goodness"))

	// longest match still applies: "funeral" beats the inner "fun"
	assert.Equal(t, -1.0, unbounded.Score("funeral"))

	// negation works off token positions in both modes
	assert.Equal(t, -3.0, unbounded.Score("not excellent"))
}

func TestScoreWithWordlist(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.True(t, a.ScoreWithWordlist("Rather good.") > 0)
	assert.True(t, a.ScoreWithWordlist("Rather GOOD.") > 0)
	assert.Equal(t, 0.0, a.ScoreWithWordlist(""))

	// no phrase matching and no negation on this path
	assert.Equal(t, 3.0, a.ScoreWithWordlist("not good"))
}

func TestFindAll(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.Equal(t, []Match{{Term: "bad", Weight: -3}}, a.FindAll("It is so bad"))
	assert.Equal(t, []Match{{Term: "wonderful", Weight: 4}}, a.FindAll("It is wonderful!"))
	assert.Nil(t, a.FindAll("nothing to see here"))

	// matches come back in text order, unadjusted by negation
	got := a.FindAll("not excellent but not good either")
	assert.Equal(t, []Match{
		{Term: "excellent", Weight: 3},
		{Term: "not good", Weight: -2},
	}, got)
}

func TestSplit(t *testing.T) {
	a, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{"Hello", "world"}, a.Split("Hello, world!"))
	assert.Equal(t, []string{"Hellø", "Årld"}, a.Split("Hellø, Årld"))
	assert.Nil(t, a.Split(""))
}

func TestLanguages(t *testing.T) {
	codes := Languages()
	assert.Equal(t, []string{"da", "en", "fi", "sv", "tr"}, codes)

	for _, code := range codes {
		_, err := New(Language(code))
		assert.NoError(t, err, "language %s should construct", code)
	}
}

func BenchmarkAfinn_Score(b *testing.B) {
	a, err := New(Emoticons(true))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Score("The plot was good, but the characters are not great :)")
	}
}
