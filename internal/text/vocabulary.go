package text

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/drakos74/stylo/internal/model"
)

// CommentPrefix marks a line of a vocabulary file that is ignored.
const CommentPrefix = "#"

// DefaultVocabularyLimit is the number of function words used for the Delta features.
const DefaultVocabularyLimit = 65

// Vocabulary is an ordered set of unique tokens.
// The position of a token is the index of its feature in every vector.
type Vocabulary struct {
	tokens []string
	index  map[string]int
}

// NewVocabulary creates a vocabulary from the given tokens, keeping their order.
// Every token must come out of Words as is, otherwise it could never be counted.
func NewVocabulary(tokens ...string) (Vocabulary, error) {
	if len(tokens) == 0 {
		return Vocabulary{}, fmt.Errorf("empty vocabulary: %w", model.ConfigurationErr)
	}
	v := Vocabulary{
		tokens: make([]string, len(tokens)),
		index:  make(map[string]int, len(tokens)),
	}
	for i, token := range tokens {
		if token == "" {
			return Vocabulary{}, fmt.Errorf("empty token at position %d: %w", i, model.ConfigurationErr)
		}
		if words := Words(token); len(words) != 1 || words[0] != token {
			return Vocabulary{}, fmt.Errorf("token '%s' at position %d is not a single lowercase word: %w", token, i, model.ConfigurationErr)
		}
		if j, ok := v.index[token]; ok {
			return Vocabulary{}, fmt.Errorf("duplicate token '%s' at %d and %d: %w", token, j, i, model.ConfigurationErr)
		}
		v.tokens[i] = token
		v.index[token] = i
	}
	return v, nil
}

// ParseVocabulary reads one token per line.
// Blank lines and lines starting with '#' are skipped.
// If limit is positive only the first limit tokens are kept.
func ParseVocabulary(r io.Reader, limit int) (Vocabulary, error) {
	tokens := make([]string, 0, DefaultVocabularyLimit)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		tokens = append(tokens, Lower(line))
		if limit > 0 && len(tokens) == limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return Vocabulary{}, fmt.Errorf("could not read vocabulary: %w", err)
	}
	return NewVocabulary(tokens...)
}

// LoadVocabulary reads the vocabulary file at the given path.
func LoadVocabulary(path string, limit int) (Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("could not open vocabulary '%s': %w", path, err)
	}
	defer f.Close()

	v, err := ParseVocabulary(f, limit)
	if err != nil {
		return Vocabulary{}, fmt.Errorf("vocabulary '%s': %w", path, err)
	}
	return v, nil
}

// Size returns the number of tokens.
func (v Vocabulary) Size() int {
	return len(v.tokens)
}

// Tokens returns a copy of the tokens in feature order.
func (v Vocabulary) Tokens() []string {
	tokens := make([]string, len(v.tokens))
	copy(tokens, v.tokens)
	return tokens
}

// Index returns the feature index of the token.
func (v Vocabulary) Index(token string) (int, bool) {
	i, ok := v.index[token]
	return i, ok
}
