package zuglang

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dictionary.yaml
var dictionaryYAML []byte

// dictionary maps normalized Zuglang phrases to natural language.
// Populated once at init, read-only afterwards.
var dictionary map[string]string

func init() {
	var doc struct {
		Phrases map[string]string `yaml:"phrases"`
	}
	if err := yaml.Unmarshal(dictionaryYAML, &doc); err != nil {
		panic(fmt.Sprintf("parsing embedded dictionary: %v", err))
	}
	dictionary = doc.Phrases
}

// UnknownPhraseError reports a phrase with no dictionary entry.
type UnknownPhraseError struct {
	Phrase string
}

func (e *UnknownPhraseError) Error() string {
	return fmt.Sprintf("unknown phrase %q", e.Phrase)
}

// normalizePhrase lowercases and collapses runs of whitespace to single
// spaces, so lookups are insensitive to casing and spacing.
func normalizePhrase(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Translate looks up a phrase and returns its natural-language rendering.
// An empty phrase after normalization or a phrase without an entry returns
// an UnknownPhraseError.
func Translate(phrase string) (string, error) {
	key := normalizePhrase(phrase)
	if key == "" {
		return "", &UnknownPhraseError{Phrase: phrase}
	}

	text, ok := dictionary[key]
	if !ok {
		return "", &UnknownPhraseError{Phrase: key}
	}

	return text, nil
}

// PhraseCount reports the number of dictionary entries. Used by the tool
// discovery listing.
func PhraseCount() int {
	return len(dictionary)
}
