package attribution

import (
	"sort"

	"github.com/drakos74/stylo/internal/math/ml"
	"github.com/drakos74/stylo/internal/model"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Attribution is the outcome for a single test document.
type Attribution struct {
	Title     string      `json:"title"`
	Author    model.Label `json:"author"`
	Predicted model.Label `json:"predicted"`
	Nearest   string      `json:"nearest"`
	Distance  float64     `json:"distance"`
	// Delta is Burrows' Delta to the nearest reference, only set for the city block metric.
	Delta float64 `json:"delta,omitempty"`
}

// Correct reports whether the predicted author is the true one.
func (a Attribution) Correct() bool {
	return a.Author == a.Predicted
}

// Score summarises the predictions for one author.
type Score struct {
	Author    model.Label `json:"author"`
	Support   int         `json:"support"`
	Predicted int         `json:"predicted"`
	Correct   int         `json:"correct"`
	Precision float64     `json:"precision"`
	Recall    float64     `json:"recall"`
}

// Report is the result of attributing a test corpus.
type Report struct {
	ID           string        `json:"id"`
	Metric       string        `json:"metric"`
	Features     int           `json:"features"`
	References   int           `json:"references"`
	Attributions []Attribution `json:"attributions"`
	Accuracy     float64       `json:"accuracy"`
	Scores       []Score       `json:"scores"`
}

// NewReport scores the attributions of a run.
func NewReport(metric ml.Metric, features, references int, attributions []Attribution) Report {
	return Report{
		ID:           uuid.New().String(),
		Metric:       metric.String(),
		Features:     features,
		References:   references,
		Attributions: attributions,
		Accuracy: Accuracy(
			lo.Map(attributions, func(a Attribution, _ int) model.Label { return a.Author }),
			lo.Map(attributions, func(a Attribution, _ int) model.Label { return a.Predicted }),
		),
		Scores: Scores(attributions),
	}
}

// Accuracy is the fraction of predicted labels matching the truth.
// It is 0 when there is nothing to score.
func Accuracy(truth, predicted []model.Label) float64 {
	if len(truth) == 0 || len(truth) != len(predicted) {
		return 0
	}
	correct := 0
	for i := range truth {
		if truth[i] == predicted[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// Scores computes precision and recall for every author seen either as truth or as prediction.
func Scores(attributions []Attribution) []Score {
	support := lo.CountValuesBy(attributions, func(a Attribution) model.Label { return a.Author })
	predicted := lo.CountValuesBy(attributions, func(a Attribution) model.Label { return a.Predicted })
	correct := lo.CountValuesBy(lo.Filter(attributions, func(a Attribution, _ int) bool {
		return a.Correct()
	}), func(a Attribution) model.Label { return a.Author })

	authors := lo.Uniq(append(lo.Keys(support), lo.Keys(predicted)...))
	sort.Slice(authors, func(i, j int) bool {
		return authors[i] < authors[j]
	})

	scores := make([]Score, len(authors))
	for i, author := range authors {
		s := Score{
			Author:    author,
			Support:   support[author],
			Predicted: predicted[author],
			Correct:   correct[author],
		}
		if s.Predicted > 0 {
			s.Precision = float64(s.Correct) / float64(s.Predicted)
		}
		if s.Support > 0 {
			s.Recall = float64(s.Correct) / float64(s.Support)
		}
		scores[i] = s
	}
	return scores
}
