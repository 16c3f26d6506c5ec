package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words.txt"), "# test words\nthe\nand\nof\n")

	styles := map[string]string{
		"b": "the the the and of cat ",
		"g": "and and and the of dog ",
		"h": "of of of the and bird ",
	}
	for author, style := range styles {
		writeFile(t, filepath.Join(dir, "train", author+"_train.txt"), strings.Repeat(style, 30))
		writeFile(t, filepath.Join(dir, "test", author+"_test.txt"), strings.Repeat(style, 10))
	}

	code, err := run([]string{
		"-config", "",
		"-vocabulary", filepath.Join(dir, "words.txt"),
		"-train", filepath.Join(dir, "train"),
		"-test", filepath.Join(dir, "test"),
		"-chunk", "30",
		"-store", filepath.Join(dir, "reports"),
	})
	require.NoError(t, err)
	assert.Equal(t, exitOK, code)

	stored, err := filepath.Glob(filepath.Join(dir, "reports", "reports", "cityblock", "cityblock_*.json"))
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestConfigure_ExplicitFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "delta.json")
	writeFile(t, path, `{
		"with_mean": true,
		"chunk_length": 500,
		"train_dir": "json/train",
		"test_dir": "json/test"
	}`)

	type test struct {
		args     []string
		withMean bool
		chunk    int
		train    string
	}

	tests := map[string]test{
		"json-only": {
			args:     []string{"-config", path},
			withMean: true,
			chunk:    500,
			train:    "json/train",
		},
		"switch-off-mean": {
			args:     []string{"-config", path, "-with-mean=false"},
			withMean: false,
			chunk:    500,
			train:    "json/train",
		},
		"override": {
			args:     []string{"-config", path, "-chunk", "20", "-train", "flag/train"},
			withMean: true,
			chunk:    20,
			train:    "flag/train",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := configure(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.withMean, cfg.WithMean)
			assert.Equal(t, tt.chunk, cfg.ChunkLength)
			assert.Equal(t, tt.train, cfg.TrainDir)
			assert.Equal(t, "json/test", cfg.TestDir)
		})
	}
}

func TestRun_ConfigError(t *testing.T) {
	code, err := run([]string{"-config", "", "-chunk", "-5", "-train", "a", "-test", "b"})
	assert.Error(t, err)
	assert.Equal(t, exitConfig, code)
}

func TestRun_MissingCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "words.txt"), "the\n")

	code, err := run([]string{
		"-config", "",
		"-vocabulary", filepath.Join(dir, "words.txt"),
		"-train", filepath.Join(dir, "nope"),
		"-test", filepath.Join(dir, "nope"),
	})
	assert.Error(t, err)
	assert.Equal(t, exitRuntime, code)
}
