package afinn

type config struct {
	language     string
	emoticons    bool
	wordBoundary bool
	cache        *Cache
}

func defaultConfig() config {
	return config{
		language:     "en",
		wordBoundary: true,
	}
}

// Option configures a scorer at construction time.
type Option func(*config)

// Language selects the lexicon and negation rules for the given language
// code. The default is "en".
func Language(code string) Option {
	return func(c *config) {
		c.language = code
	}
}

// Emoticons enables scoring of emoticons found in the raw text.
func Emoticons(enabled bool) Option {
	return func(c *config) {
		c.emoticons = enabled
	}
}

// WordBoundary controls whether lexicon terms must line up with word
// boundaries. When disabled, terms match as plain substrings, which suits
// text without reliable whitespace. The default is true.
func WordBoundary(enabled bool) Option {
	return func(c *config) {
		c.wordBoundary = enabled
	}
}

// WithCache makes the scorer load its lexicons through the given shared
// cache instead of parsing them privately.
func WithCache(cache *Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}
