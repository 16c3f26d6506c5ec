package text

import (
	"testing"

	"github.com/drakos74/stylo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func newTestVectorizer(t *testing.T, tokens ...string) *Vectorizer {
	v, err := NewVocabulary(tokens...)
	require.NoError(t, err)
	vz, err := NewVectorizer(v)
	require.NoError(t, err)
	return vz
}

func TestVectorizer_Count(t *testing.T) {

	type test struct {
		text   string
		counts []float64
	}

	tests := map[string]test{
		"counts": {
			text:   "the cat and the dog and the bird",
			counts: []float64{3, 2, 0},
		},
		"out-of-vocabulary-ignored": {
			text:   "cat dog bird",
			counts: []float64{0, 0, 0},
		},
		"punctuation": {
			text:   "the, and; of. (the)",
			counts: []float64{2, 1, 1},
		},
		"empty": {
			text:   "",
			counts: []float64{0, 0, 0},
		},
	}

	vz := newTestVectorizer(t, "the", "and", "of")
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.counts, vz.Count(tt.text))
		})
	}
}

func TestVectorizer_OrderFollowsVocabulary(t *testing.T) {
	forward := newTestVectorizer(t, "the", "and", "of")
	backward := newTestVectorizer(t, "of", "and", "the")

	text := "of of of and and the"
	shuffled := "the and of and of of"

	assert.Equal(t, []float64{1, 2, 3}, forward.Count(text))
	assert.Equal(t, []float64{3, 2, 1}, backward.Count(text))
	assert.Equal(t, forward.Count(text), forward.Count(shuffled))
}

func TestVectorizer_Transform(t *testing.T) {
	vz := newTestVectorizer(t, "the", "and")
	docs := []model.Document{
		{Tokens: []string{"the", "and", "the"}},
		{Tokens: []string{}},
		{Tokens: []string{"and"}},
	}

	m, err := vz.Transform(docs)
	require.NoError(t, err)

	expected := mat.NewDense(3, 2, []float64{
		2, 1,
		0, 0,
		0, 1,
	})
	assert.True(t, mat.Equal(expected, m))
}

func TestVectorizer_Errors(t *testing.T) {
	_, err := NewVectorizer(Vocabulary{})
	assert.ErrorIs(t, err, model.ConfigurationErr)

	var unfitted *Vectorizer
	_, err = unfitted.Transform([]model.Document{{Tokens: []string{"a"}}})
	assert.ErrorIs(t, err, model.StateErr)

	_, err = (&Vectorizer{}).Transform([]model.Document{{Tokens: []string{"a"}}})
	assert.ErrorIs(t, err, model.StateErr)

	vz := newTestVectorizer(t, "a")
	_, err = vz.Transform(nil)
	assert.ErrorIs(t, err, model.ConfigurationErr)
}
