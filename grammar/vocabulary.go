package grammar

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/pcfg"
	"github.com/pkg/errors"
)

// Vocabulary is the set of words a grammar has been trained on. Words outside
// of the vocabulary are replaced by pcfg.UnknownWord before parsing.
type Vocabulary struct {
	words *hashset.Set
}

// NewVocabulary creates a vocabulary from a list of words.
func NewVocabulary(words ...string) *Vocabulary {
	v := &Vocabulary{words: hashset.New()}
	for _, w := range words {
		v.words.Add(w)
	}
	return v
}

// LoadVocabulary reads a vocabulary from r, one word per line.
// Empty lines are ignored.
func LoadVocabulary(r io.Reader) (*Vocabulary, error) {
	v := NewVocabulary()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if w := strings.TrimSpace(scanner.Text()); w != "" {
			v.words.Add(w)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading vocabulary")
	}
	tracer().Debugf("vocabulary of %d words", v.Size())
	return v, nil
}

// LoadVocabularyFile reads a vocabulary from a file.
func LoadVocabularyFile(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open vocabulary")
	}
	defer f.Close()
	return LoadVocabulary(f)
}

// Contains checks if word is part of the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	return v.words.Contains(word)
}

// Size returns the number of words in the vocabulary.
func (v *Vocabulary) Size() int {
	return v.words.Size()
}

// Substitute returns a copy of tokens, with every token not in v replaced by
// pcfg.UnknownWord. A nil vocabulary replaces nothing.
func (v *Vocabulary) Substitute(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if v != nil && !v.words.Contains(t) {
			out[i] = pcfg.UnknownWord
		} else {
			out[i] = t
		}
	}
	return out
}
