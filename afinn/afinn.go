// Package afinn scores the sentiment of natural-language text by summing
// per-word valence weights from the AFINN wordlists. Scoring is a pure
// lookup over an immutable lexicon: no part of the pipeline learns,
// guesses, or mutates state, so identical input always yields an
// identical score.
package afinn

import (
	"github.com/gonum/floats"
)

// Afinn gives a sentiment valence score to text.
//
// The zero value is not usable; construct with New. After construction an
// Afinn is read-only and safe for concurrent use by multiple goroutines.
type Afinn struct {
	language     string
	lexicon      *Lexicon
	emoticons    *Lexicon
	negations    map[string]struct{}
	window       int
	wordBoundary bool
}

// Match is a single lexicon hit returned by FindAll.
type Match struct {
	Term   string
	Weight float64
}

// New constructs a scorer for the configured language. It fails with a
// *LexiconError when the language is not supported or its lexicon data
// cannot be parsed.
func New(opts ...Option) (*Afinn, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rule, ok := lookupLanguage(cfg.language)
	if !ok {
		return nil, &LexiconError{Language: cfg.language, Cause: ErrUnsupportedLanguage}
	}

	load := loadLexicon
	if cfg.cache != nil {
		load = cfg.cache.load
	}

	lexicon, err := load(rule.Lexicon)
	if err != nil {
		return nil, &LexiconError{Language: cfg.language, Cause: err}
	}

	a := &Afinn{
		language:     cfg.language,
		lexicon:      lexicon,
		negations:    make(map[string]struct{}, len(rule.Negations)),
		window:       rule.NegationWindow,
		wordBoundary: cfg.wordBoundary,
	}
	for _, neg := range rule.Negations {
		a.negations[neg] = struct{}{}
	}

	if cfg.emoticons {
		a.emoticons, err = load(registry.EmoticonLexicon)
		if err != nil {
			return nil, &LexiconError{Language: "emoticons", Cause: err}
		}
	}

	return a, nil
}

// Language returns the language code the scorer was constructed with.
func (a *Afinn) Language() string {
	return a.language
}

// Score returns the summed sentiment valence of text.
//
// Lexicon terms are matched greedily, longest phrase first. A matched
// term's weight has its sign flipped when a negation token appears within
// the lookback window before it. Emoticon weights, when enabled, are
// added from a separate scan of the raw text and are never negated. Any
// input, including the empty string, yields a valid score; text with no
// matches scores 0.0.
func (a *Afinn) Score(text string) float64 {
	matches, tokens := a.termMatches(text)

	var contributions []float64
	for _, m := range matches {
		w := m.weight
		if a.negated(tokens, m.index) {
			w = -w
		}
		contributions = append(contributions, w)
	}

	if a.emoticons != nil {
		for _, m := range a.emoticons.scan(text) {
			contributions = append(contributions, m.weight)
		}
	}

	if len(contributions) == 0 {
		return 0.0
	}
	return floats.Sum(contributions)
}

// ScoreWithWordlist returns the sentiment valence of text using plain
// word-by-word lookup: no phrase matching, no negation and no emoticons.
func (a *Afinn) ScoreWithWordlist(text string) float64 {
	var contributions []float64
	for _, t := range tokenize(text) {
		if w, ok := a.lexicon.Weight(t.text); ok {
			contributions = append(contributions, w)
		}
	}

	if len(contributions) == 0 {
		return 0.0
	}
	return floats.Sum(contributions)
}

// FindAll returns every lexicon match in text, in text order, without
// negation or emoticon adjustment. It exposes the raw output of the
// phrase matcher for inspection.
func (a *Afinn) FindAll(text string) []Match {
	matches, _ := a.termMatches(text)
	if len(matches) == 0 {
		return nil
	}

	found := make([]Match, len(matches))
	for i, m := range matches {
		found[i] = Match{Term: m.term, Weight: m.weight}
	}
	return found
}

// Split returns the word tokens of text with their original casing.
func (a *Afinn) Split(text string) []string {
	return splitWords(text)
}

// termMatch is a lexicon hit positioned by the index of its first token,
// which anchors the negation lookback window.
type termMatch struct {
	term   string
	weight float64
	index  int
}

// termMatches finds all lexicon terms in text together with the token
// sequence they were matched against.
func (a *Afinn) termMatches(text string) ([]termMatch, []token) {
	if a.wordBoundary {
		tokens := tokenize(text)
		return a.matchTokens(tokens), tokens
	}

	// Boundary-free mode: terms match as substrings of the normalized
	// text. Tokens are still derived so negation has positions to work
	// against.
	norm := normalizeText(text)
	tokens := tokenize(norm)

	var matches []termMatch
	for _, span := range a.lexicon.scan(norm) {
		matches = append(matches, termMatch{
			term:   span.term,
			weight: span.weight,
			index:  tokenIndexBefore(tokens, span.start),
		})
	}
	return matches, tokens
}

// matchTokens scans tokens left to right, taking the longest lexicon
// phrase that starts at each position. Consumed tokens are skipped, so an
// inner single-word entry never also scores inside a matched phrase.
func (a *Afinn) matchTokens(tokens []token) []termMatch {
	var matches []termMatch

	for i := 0; i < len(tokens); {
		n, term, weight := a.longestPhrase(tokens, i)
		if n == 0 {
			i++
			continue
		}
		matches = append(matches, termMatch{term: term, weight: weight, index: i})
		i += n
	}

	return matches
}

func (a *Afinn) longestPhrase(tokens []token, i int) (int, string, float64) {
	longest := a.lexicon.maxPhrase
	if rem := len(tokens) - i; rem < longest {
		longest = rem
	}

	for n := longest; n >= 1; n-- {
		term := joinTokens(tokens[i : i+n])
		if w, ok := a.lexicon.Weight(term); ok {
			return n, term, w
		}
	}
	return 0, "", 0
}

// negated reports whether a negation token occurs within the lookback
// window before the token at index.
func (a *Afinn) negated(tokens []token, index int) bool {
	lo := index - a.window
	if lo < 0 {
		lo = 0
	}
	for _, t := range tokens[lo:index] {
		if _, ok := a.negations[t.text]; ok {
			return true
		}
	}
	return false
}

func joinTokens(tokens []token) string {
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) == 1 {
		return tokens[0].text
	}

	n := len(tokens) - 1
	for _, t := range tokens {
		n += len(t.text)
	}

	b := make([]byte, 0, n)
	for i, t := range tokens {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, t.text...)
	}
	return string(b)
}

// tokenIndexBefore returns the number of tokens ending at or before the
// given byte offset.
func tokenIndexBefore(tokens []token, offset int) int {
	n := 0
	for n < len(tokens) && tokens[n].end <= offset {
		n++
	}
	return n
}
