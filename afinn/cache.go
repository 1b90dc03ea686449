package afinn

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache shares loaded lexicons between scorer instances. Lexicons are
// immutable, so sharing is by pointer and safe for concurrent use.
// Concurrent loads of the same lexicon are collapsed into one parse.
type Cache struct {
	mu       sync.RWMutex
	lexicons map[string]*Lexicon
	group    singleflight.Group
}

func NewCache() *Cache {
	return &Cache{lexicons: make(map[string]*Lexicon)}
}

func (c *Cache) load(filename string) (*Lexicon, error) {
	c.mu.RLock()
	lex, ok := c.lexicons[filename]
	c.mu.RUnlock()
	if ok {
		return lex, nil
	}

	v, err, _ := c.group.Do(filename, func() (interface{}, error) {
		lex, err := loadLexicon(filename)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.lexicons[filename] = lex
		c.mu.Unlock()
		return lex, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Lexicon), nil
}
