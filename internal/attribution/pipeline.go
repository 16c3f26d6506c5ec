package attribution

import (
	"fmt"

	stylomath "github.com/drakos74/stylo/internal/math"
	"github.com/drakos74/stylo/internal/math/ml"
	"github.com/drakos74/stylo/internal/metrics"
	"github.com/drakos74/stylo/internal/model"
	"github.com/drakos74/stylo/internal/text"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

// Options configures the attribution pipeline.
type Options struct {
	// WithMean centers the features before scaling them.
	// Delta is defined on scale-only standardization, so it is off by default.
	WithMean bool
}

// Pipeline turns documents into relative frequencies of the vocabulary and attributes them with Delta.
type Pipeline struct {
	vectorizer *text.Vectorizer
	delta      ml.Delta
}

// New creates a pipeline for the given vocabulary.
func New(vocabulary text.Vocabulary, opts Options) (*Pipeline, error) {
	vectorizer, err := text.NewVectorizer(vocabulary)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		vectorizer: vectorizer,
		delta:      ml.Delta{Standardizer: ml.Standardizer{WithMean: opts.WithMean}},
	}, nil
}

// Features returns the L1 normalized vocabulary counts of the corpus documents.
func (p *Pipeline) Features(c model.Corpus) (*mat.Dense, error) {
	counts, err := p.vectorizer.Transform(c.Documents)
	if err != nil {
		return nil, err
	}
	return stylomath.NormalizeRows(counts), nil
}

// Fit learns the reference set from the training corpus.
func (p *Pipeline) Fit(train model.Corpus) (*Fitted, error) {
	x, err := p.Features(train)
	if err != nil {
		return nil, fmt.Errorf("could not extract training features: %w", err)
	}
	dm, err := p.delta.Fit(x, train.Labels())
	if err != nil {
		return nil, fmt.Errorf("could not fit delta: %w", err)
	}
	log.Info().
		Int("documents", train.Size()).
		Int("features", dm.Dim()).
		Int("authors", len(train.Authors())).
		Msg("fitted attribution pipeline")
	return &Fitted{
		pipeline: p,
		model:    dm,
		titles:   train.Titles(),
	}, nil
}

// Fitted is a pipeline bound to its reference set.
type Fitted struct {
	pipeline *Pipeline
	model    *ml.DeltaModel
	titles   []string
}

// Model returns the fitted Delta model.
func (f *Fitted) Model() *ml.DeltaModel {
	return f.model
}

// Predict returns the predicted author of every test document.
func (f *Fitted) Predict(test model.Corpus, metric ml.Metric) ([]model.Label, error) {
	x, err := f.pipeline.Features(test)
	if err != nil {
		return nil, fmt.Errorf("could not extract test features: %w", err)
	}
	return f.model.Predict(x, metric)
}

// Attribute predicts the author of every test document and scores the predictions.
func (f *Fitted) Attribute(test model.Corpus, metric ml.Metric) (Report, error) {
	x, err := f.pipeline.Features(test)
	if err != nil {
		return Report{}, fmt.Errorf("could not extract test features: %w", err)
	}
	neighbours, err := f.model.Neighbours(x, metric)
	if err != nil {
		return Report{}, fmt.Errorf("could not attribute: %w", err)
	}

	dim := float64(f.model.Dim())
	attributions := make([]Attribution, len(neighbours))
	for i, n := range neighbours {
		doc := test.Documents[i]
		attributions[i] = Attribution{
			Title:     doc.Title,
			Author:    doc.Author,
			Predicted: n.Label,
			Nearest:   f.titles[n.Index],
			Distance:  n.Distance,
		}
		if metric == ml.CityBlock {
			attributions[i].Delta = n.Distance / dim
		}
		metrics.Observer.Prediction(string(doc.Author), string(n.Label))
	}

	report := NewReport(metric, f.model.Dim(), f.model.Size(), attributions)
	log.Info().
		Str("run", report.ID).
		Str("metric", report.Metric).
		Int("documents", len(attributions)).
		Float64("accuracy", report.Accuracy).
		Msg("attributed test corpus")
	return report, nil
}
