package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/drakos74/stylo/infra/config"
	"github.com/drakos74/stylo/internal/attribution"
	"github.com/drakos74/stylo/internal/corpus"
	"github.com/drakos74/stylo/internal/math/ml"
	"github.com/drakos74/stylo/internal/metrics"
	"github.com/drakos74/stylo/internal/storage"
	"github.com/drakos74/stylo/internal/storage/file/json"
	"github.com/drakos74/stylo/internal/text"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		log.Error().Err(err).Msg("delta attribution failed")
	}
	os.Exit(code)
}

// configure parses the flags and loads the run configuration.
// Only flags given on the command line override the json file and the environment.
func configure(args []string) (config.Delta, error) {
	flags := flag.NewFlagSet("delta", flag.ContinueOnError)
	configPath := flags.String("config", fmt.Sprintf("%s/delta.json", config.Path), "json config file")
	train := flags.String("train", "", "directory of the training texts")
	test := flags.String("test", "", "directory of the texts to attribute")
	metric := flags.String("metric", "", "distance metric: cityblock, cosine or euclidean")
	chunk := flags.Int("chunk", config.DefaultChunkLength, "tokens per document")
	withMean := flags.Bool("with-mean", false, "center features before scaling")
	store := flags.String("store", "", "directory to store the report in")
	vocabularyPath := flags.String("vocabulary", "", "function word file")
	if err := flags.Parse(args); err != nil {
		return config.Delta{}, err
	}

	// a missing .env is fine
	_ = godotenv.Load()

	return config.LoadDelta(*configPath, func(cfg *config.Delta) {
		flags.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "train":
				cfg.TrainDir = *train
			case "test":
				cfg.TestDir = *test
			case "metric":
				cfg.Metric = *metric
			case "chunk":
				cfg.ChunkLength = *chunk
			case "with-mean":
				cfg.WithMean = *withMean
			case "store":
				cfg.ReportDir = *store
			case "vocabulary":
				cfg.VocabularyPath = *vocabularyPath
			}
		})
	})
}

func run(args []string) (int, error) {
	cfg, err := configure(args)
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zerolog.SetGlobalLevel(level)
	}
	if cfg.MetricsPort > 0 {
		metrics.Serve(cfg.MetricsPort)
	}

	m, err := ml.ParseMetric(cfg.Metric)
	if err != nil {
		return exitConfig, err
	}
	vocabulary, err := text.LoadVocabulary(cfg.VocabularyPath, cfg.VocabularyLimit)
	if err != nil {
		return exitConfig, err
	}

	pipeline, err := attribution.New(vocabulary, attribution.Options{WithMean: cfg.WithMean})
	if err != nil {
		return exitConfig, err
	}

	trainCorpus, err := corpus.Load(cfg.TrainDir, cfg.ChunkLength)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not load training corpus: %w", err)
	}
	testCorpus, err := corpus.Load(cfg.TestDir, cfg.ChunkLength)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not load test corpus: %w", err)
	}

	fitted, err := pipeline.Fit(trainCorpus)
	if err != nil {
		return exitRuntime, err
	}
	report, err := fitted.Attribute(testCorpus, m)
	if err != nil {
		return exitRuntime, err
	}

	render(os.Stdout, report)

	shard := storage.VoidShard()
	if cfg.ReportDir != "" {
		shard = json.BlobShard(cfg.ReportDir, storage.ReportDir)
	}
	s, err := shard(m.String())
	if err != nil {
		return exitRuntime, err
	}
	k, err := attribution.Store(s, report, time.Now())
	if err != nil {
		return exitRuntime, err
	}
	keys, err := s.Keys()
	if err != nil {
		return exitRuntime, err
	}
	log.Info().
		Str("dir", cfg.ReportDir).
		Str("file", k.Path()).
		Int("reports", len(keys)).
		Msg("stored report")
	return exitOK, nil
}
