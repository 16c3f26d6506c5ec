package config

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/drakos74/stylo/internal/math/ml"
	"github.com/drakos74/stylo/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const (
	// Path is the directory holding the default configuration files.
	Path = "infra/config"
	// DefaultChunkLength is the number of tokens of every document.
	DefaultChunkLength = 1000
)

// Delta is the configuration of an attribution run.
type Delta struct {
	ChunkLength     int    `json:"chunk_length" env:"STYLO_CHUNK_LENGTH" validate:"gt=0"`
	VocabularyPath  string `json:"vocabulary_path" env:"STYLO_VOCABULARY_PATH" validate:"required"`
	VocabularyLimit int    `json:"vocabulary_limit" env:"STYLO_VOCABULARY_LIMIT" validate:"gte=0"`
	Metric          string `json:"metric" env:"STYLO_METRIC" validate:"metric"`
	WithMean        bool   `json:"with_mean" env:"STYLO_WITH_MEAN"`
	TrainDir        string `json:"train_dir" env:"STYLO_TRAIN_DIR" validate:"required"`
	TestDir         string `json:"test_dir" env:"STYLO_TEST_DIR" validate:"required"`
	ReportDir       string `json:"report_dir" env:"STYLO_REPORT_DIR"`
	MetricsPort     int    `json:"metrics_port" env:"STYLO_METRICS_PORT" validate:"gte=0,lte=65535"`
	LogLevel        string `json:"log_level" env:"STYLO_LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the configuration used when nothing else is given.
func Default() Delta {
	return Delta{
		ChunkLength:     DefaultChunkLength,
		VocabularyPath:  fmt.Sprintf("%s/function_words.txt", Path),
		VocabularyLimit: 65,
		Metric:          ml.CityBlock.String(),
		LogLevel:        "info",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// registering a static tag on a fresh validator cannot fail
	_ = v.RegisterValidation("metric", func(fl validator.FieldLevel) bool {
		_, err := ml.ParseMetric(fl.Field().String())
		return err == nil
	})
	return v
}

// Load reads the json file at the given path into v.
func Load(path string, v interface{}) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not load config '%s': %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("could not unmarshal config '%s': %w", path, err)
	}
	return nil
}

// LoadDelta builds the run configuration from the defaults, the optional json file
// at path, the STYLO_* environment variables and the given overrides, in that order of precedence.
func LoadDelta(path string, overrides ...func(cfg *Delta)) (Delta, error) {
	cfg := Default()
	if path != "" {
		if err := Load(path, &cfg); err != nil {
			return Delta{}, err
		}
		log.Info().Str("path", path).Msg("loaded config")
	}
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Delta{}, fmt.Errorf("could not read environment: %w", err)
	}
	for _, override := range overrides {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Delta{}, err
	}
	return cfg, nil
}

// Validate checks the configuration.
func (d Delta) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), model.ConfigurationErr)
	}
	return nil
}
