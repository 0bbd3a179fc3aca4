package dataset

import "strings"

// where a dataset came from, reported by the diagnostic endpoints
const (
	SourceFile     = "file"
	SourceFallback = "fallback"
	SourceMinimal  = "minimal"
)

// Vocabulary maps tokens (slang terms or emoji) to a human-readable meaning.
// Terms keeps the load order and is what gets sampled.
type Vocabulary struct {
	Terms    []string
	Meanings map[string]string
	Source   string
}

type entry struct {
	token   string
	meaning string
}

func newVocabulary(source string) *Vocabulary {
	return &Vocabulary{
		Terms:    make([]string, 0),
		Meanings: make(map[string]string),
		Source:   source,
	}
}

// NewVocabulary builds a vocabulary from ordered terms; terms without a meaning are kept
func NewVocabulary(terms []string, meanings map[string]string, source string) *Vocabulary {
	v := newVocabulary(source)
	for _, term := range terms {
		v.add(term, meanings[term])
	}
	return v
}

func vocabularyFrom(entries []entry, source string) *Vocabulary {
	v := newVocabulary(source)
	for _, e := range entries {
		v.add(e.token, e.meaning)
	}
	return v
}

// add appends token once; a later meaning for a known token is ignored
func (v *Vocabulary) add(token, meaning string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	if _, exists := v.Meanings[token]; exists {
		return
	}
	v.Terms = append(v.Terms, token)
	v.Meanings[token] = strings.TrimSpace(meaning)
}

// Len returns the number of tokens
func (v *Vocabulary) Len() int {
	return len(v.Terms)
}

// Meaning returns the meaning of token, if one is known
func (v *Vocabulary) Meaning(token string) (string, bool) {
	meaning, ok := v.Meanings[token]
	if !ok || meaning == "" {
		return "", false
	}
	return meaning, true
}
