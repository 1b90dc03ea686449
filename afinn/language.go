package afinn

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/languages.yaml
var languagesYAML []byte

// languageRule describes the per-language scoring behavior that is
// configuration data rather than code: which lexicon file to load, which
// tokens count as negations, and how far back the negation window reaches.
type languageRule struct {
	Lexicon        string   `yaml:"lexicon"`
	Negations      []string `yaml:"negations"`
	NegationWindow int      `yaml:"negation_window"`
}

type languageRegistry struct {
	Languages       map[string]languageRule `yaml:"languages"`
	EmoticonLexicon string                  `yaml:"emoticon_lexicon"`
}

var registry languageRegistry

func init() {
	if err := yaml.Unmarshal(languagesYAML, &registry); err != nil {
		panic(fmt.Sprintf("afinn: embedded language registry is malformed: %v", err))
	}
}

func lookupLanguage(code string) (languageRule, bool) {
	rule, ok := registry.Languages[code]
	return rule, ok
}

// Languages returns the supported language codes in sorted order.
func Languages() []string {
	codes := make([]string, 0, len(registry.Languages))
	for code := range registry.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
