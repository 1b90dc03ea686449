package afinn

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed data/*.txt
var dataFiles embed.FS

// Lexicon is an immutable mapping from normalized terms to valence weights.
// Multi-word terms are space-joined. A Lexicon is never mutated after
// construction and may be shared freely between scorers.
type Lexicon struct {
	weights map[string]float64

	// longest term measured in word tokens, for phrase matching
	maxPhrase int
	// longest term measured in bytes, for boundary-free substring scans
	maxBytes int
}

func loadLexicon(filename string) (*Lexicon, error) {
	raw, err := dataFiles.ReadFile("data/" + filename)
	if err != nil {
		return nil, err
	}
	return parseLexicon(string(raw))
}

// parseLexicon converts tab-separated "term\tweight" lines to a Lexicon.
// Duplicate terms follow a last-wins policy. A malformed line aborts the
// whole parse; loading is all-or-nothing.
func parseLexicon(data string) (*Lexicon, error) {
	lex := &Lexicon{
		weights:   make(map[string]float64),
		maxPhrase: 1,
	}

	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		term, value, ok := strings.Cut(line, "\t")
		if !ok {
			return nil, fmt.Errorf("line %d: expected term and weight separated by a tab", i+1)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad weight for term %q: %w", i+1, term, err)
		}

		lex.weights[term] = weight
		if n := strings.Count(term, " ") + 1; n > lex.maxPhrase {
			lex.maxPhrase = n
		}
		if len(term) > lex.maxBytes {
			lex.maxBytes = len(term)
		}
	}

	return lex, nil
}

// Weight returns the valence of a normalized term.
func (l *Lexicon) Weight(term string) (float64, bool) {
	w, ok := l.weights[term]
	return w, ok
}

// Len returns the number of terms in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.weights)
}

// spanMatch is a lexicon hit with its byte offset in the scanned string.
type spanMatch struct {
	term   string
	weight float64
	start  int
}

// scan finds non-overlapping lexicon terms anywhere in text, preferring
// the longest entry at each position.
func (l *Lexicon) scan(text string) []spanMatch {
	var matches []spanMatch

	for i := 0; i < len(text); {
		term, weight, n := l.longestPrefix(text[i:])
		if n == 0 {
			i++
			continue
		}
		matches = append(matches, spanMatch{term: term, weight: weight, start: i})
		i += n
	}

	return matches
}

func (l *Lexicon) longestPrefix(s string) (string, float64, int) {
	limit := l.maxBytes
	if len(s) < limit {
		limit = len(s)
	}
	for n := limit; n > 0; n-- {
		if w, ok := l.weights[s[:n]]; ok {
			return s[:n], w, n
		}
	}
	return "", 0, 0
}
