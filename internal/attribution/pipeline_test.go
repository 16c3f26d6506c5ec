package attribution

import (
	"strings"
	"testing"
	"time"

	"github.com/drakos74/stylo/internal/math/ml"
	"github.com/drakos74/stylo/internal/model"
	"github.com/drakos74/stylo/internal/storage"
	"github.com/drakos74/stylo/internal/storage/file/json"
	"github.com/drakos74/stylo/internal/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var styles = map[model.Label][]string{
	// every author leans on a different function word
	"B": {"the", "the", "the", "and", "of", "cat", "to", "in"},
	"G": {"and", "and", "and", "the", "of", "dog", "to", "in"},
	"H": {"of", "of", "of", "the", "and", "bird", "to", "in"},
}

// write produces n words for the author, cycling over its style with a stride
// so that chunks are not identical.
func write(author model.Label, n, offset int) string {
	style := styles[author]
	words := make([]string, n)
	for i := range words {
		words[i] = style[(i*3+offset)%len(style)]
	}
	return strings.Join(words, " ")
}

func corpus(t *testing.T, chunks, offset int) model.Corpus {
	c := model.NewCorpus()
	for _, author := range []model.Label{"B", "G", "H"} {
		docs, err := text.Segment(write(author, chunks*40, offset), author, strings.ToLower(string(author)), 40)
		require.NoError(t, err)
		require.Len(t, docs, chunks)
		c.Add(docs...)
	}
	return c
}

func newPipeline(t *testing.T, opts Options) *Pipeline {
	v, err := text.NewVocabulary("the", "and", "of", "to", "in")
	require.NoError(t, err)
	p, err := New(v, opts)
	require.NoError(t, err)
	return p
}

func TestPipeline_Attribute(t *testing.T) {
	train := corpus(t, 5, 0)
	test := corpus(t, 2, 1)

	for _, opts := range []Options{{}, {WithMean: true}} {
		fitted, err := newPipeline(t, opts).Fit(train)
		require.NoError(t, err)

		for _, metric := range ml.Metrics() {
			report, err := fitted.Attribute(test, metric)
			require.NoError(t, err)

			assert.Equal(t, metric.String(), report.Metric)
			assert.Equal(t, 5, report.Features)
			assert.Equal(t, 15, report.References)
			assert.Len(t, report.Attributions, 6)
			assert.Equal(t, 1.0, report.Accuracy)
			assert.NotEmpty(t, report.ID)

			for _, a := range report.Attributions {
				assert.True(t, a.Correct(), a.Title)
				assert.True(t, strings.HasPrefix(a.Nearest, strings.ToLower(string(a.Author))), a.Nearest)
				if metric == ml.CityBlock {
					assert.InDelta(t, a.Distance/5, a.Delta, 1e-12)
				} else {
					assert.Equal(t, 0.0, a.Delta)
				}
			}

			predicted, err := fitted.Predict(test, metric)
			require.NoError(t, err)
			assert.Equal(t, test.Labels(), predicted)
		}
	}
}

func TestPipeline_Errors(t *testing.T) {
	_, err := New(text.Vocabulary{}, Options{})
	assert.ErrorIs(t, err, model.ConfigurationErr)

	p := newPipeline(t, Options{})
	_, err = p.Fit(model.NewCorpus())
	assert.ErrorIs(t, err, model.ConfigurationErr)

	fitted, err := p.Fit(corpus(t, 2, 0))
	require.NoError(t, err)
	_, err = fitted.Attribute(model.NewCorpus(), ml.CityBlock)
	assert.ErrorIs(t, err, model.ConfigurationErr)
}

func TestAccuracy(t *testing.T) {

	type test struct {
		truth     []model.Label
		predicted []model.Label
		accuracy  float64
	}

	tests := map[string]test{
		"all": {
			truth:     []model.Label{"A", "B"},
			predicted: []model.Label{"A", "B"},
			accuracy:  1,
		},
		"half": {
			truth:     []model.Label{"A", "B", "A", "B"},
			predicted: []model.Label{"A", "A", "A", "A"},
			accuracy:  0.5,
		},
		"empty": {
			accuracy: 0,
		},
		"mismatch": {
			truth:     []model.Label{"A"},
			predicted: []model.Label{"A", "B"},
			accuracy:  0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.accuracy, Accuracy(tt.truth, tt.predicted))
		})
	}
}

func TestScores(t *testing.T) {
	attributions := []Attribution{
		{Author: "A", Predicted: "A"},
		{Author: "A", Predicted: "B"},
		{Author: "B", Predicted: "B"},
		{Author: "B", Predicted: "C"},
	}
	scores := Scores(attributions)

	assert.Equal(t, []Score{
		{Author: "A", Support: 2, Predicted: 1, Correct: 1, Precision: 1, Recall: 0.5},
		{Author: "B", Support: 2, Predicted: 2, Correct: 1, Precision: 0.5, Recall: 0.5},
		{Author: "C", Support: 0, Predicted: 1, Correct: 0, Precision: 0, Recall: 0},
	}, scores)
}

func TestStore(t *testing.T) {
	report := NewReport(ml.Cosine, 5, 10, []Attribution{
		{Title: "b-1", Author: "B", Predicted: "B", Nearest: "b-3", Distance: 0.1},
	})

	s, err := json.MemoryShard()("reports")
	require.NoError(t, err)

	at := time.Unix(1700000000, 0)
	k, err := Store(s, report, at)
	require.NoError(t, err)
	assert.Equal(t, storage.Key{Stamp: 1700000000, Metric: "cosine", Run: report.ID}, k)

	var loaded Report
	require.NoError(t, s.Load(k, &loaded))
	assert.Equal(t, report, loaded)
}
