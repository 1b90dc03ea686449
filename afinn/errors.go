package afinn

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage is reported, wrapped in a *LexiconError, when a
// scorer is constructed with a language code that has no registered lexicon.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// LexiconError is returned from New when the lexicon for the requested
// language cannot be loaded. The scorer is never partially initialized;
// construction either succeeds completely or fails with this error.
type LexiconError struct {
	Language string
	Cause    error
}

func (e *LexiconError) Error() string {
	return fmt.Sprintf("afinn: loading lexicon for language %q: %v", e.Language, e.Cause)
}

func (e *LexiconError) Unwrap() error {
	return e.Cause
}
