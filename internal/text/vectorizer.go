package text

import (
	"fmt"

	"github.com/drakos74/stylo/internal/model"
	"gonum.org/v1/gonum/mat"
)

// Vectorizer counts the vocabulary tokens of each document.
// The vocabulary is given up front and is never learned from the documents.
type Vectorizer struct {
	vocabulary Vocabulary
}

// NewVectorizer creates a Vectorizer for the given vocabulary.
func NewVectorizer(vocabulary Vocabulary) (*Vectorizer, error) {
	if vocabulary.Size() == 0 {
		return nil, fmt.Errorf("vectorizer needs a vocabulary: %w", model.ConfigurationErr)
	}
	return &Vectorizer{vocabulary: vocabulary}, nil
}

// Dim returns the width of the produced vectors.
func (vz *Vectorizer) Dim() int {
	if vz == nil {
		return 0
	}
	return vz.vocabulary.Size()
}

// Vocabulary returns the vocabulary the vectorizer counts against.
func (vz *Vectorizer) Vocabulary() Vocabulary {
	return vz.vocabulary
}

// Count returns the vocabulary counts of the given text.
// Out-of-vocabulary words are ignored, an empty text gives the zero vector.
func (vz *Vectorizer) Count(s string) []float64 {
	counts := make([]float64, vz.vocabulary.Size())
	for _, word := range Words(s) {
		if j, ok := vz.vocabulary.Index(word); ok {
			counts[j]++
		}
	}
	return counts
}

// Transform returns the N×V count matrix for the given documents.
func (vz *Vectorizer) Transform(docs []model.Document) (*mat.Dense, error) {
	if vz == nil || vz.vocabulary.Size() == 0 {
		return nil, fmt.Errorf("vectorizer has no vocabulary: %w", model.StateErr)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents to vectorize: %w", model.ConfigurationErr)
	}
	v := vz.vocabulary.Size()
	data := make([]float64, 0, len(docs)*v)
	for _, doc := range docs {
		data = append(data, vz.Count(doc.Text())...)
	}
	return mat.NewDense(len(docs), v, data), nil
}
