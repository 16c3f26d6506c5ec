package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ReportDir is the table holding the attribution reports.
const ReportDir = "reports"

// Extension is the suffix of every stored file.
const Extension = ".json"

var (
	// DefaultDir is the root of the file storage.
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
	InvalidKeyErr   = errors.New("invalid key")
)

// Key identifies a report of a run.
// The metric comes first so that listing a directory groups the runs of a metric together.
type Key struct {
	Stamp  int64  `json:"stamp"`
	Metric string `json:"metric"`
	Run    string `json:"run"`
}

// Path is the file name for the key.
func (k Key) Path() string {
	return fmt.Sprintf("%s_%d_%s%s", k.Metric, k.Stamp, k.Run, Extension)
}

// ParseKey is the inverse of Key.Path.
// The run id may itself contain underscores, metric names never do.
func ParseKey(name string) (Key, error) {
	base := filepath.Base(name)
	if filepath.Ext(base) != Extension {
		return Key{}, fmt.Errorf("'%s' is not a %s file: %w", name, Extension, InvalidKeyErr)
	}
	parts := strings.SplitN(strings.TrimSuffix(base, Extension), "_", 3)
	if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
		return Key{}, fmt.Errorf("'%s' is not <metric>_<stamp>_<run>: %w", name, InvalidKeyErr)
	}
	stamp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Key{}, fmt.Errorf("bad stamp in '%s': %w", name, InvalidKeyErr)
	}
	return Key{
		Stamp:  stamp,
		Metric: parts[0],
		Run:    parts[2],
	}, nil
}

// SortKeys orders the keys by stamp, oldest first, then by run.
func SortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Stamp != keys[j].Stamp {
			return keys[i].Stamp < keys[j].Stamp
		}
		return keys[i].Run < keys[j].Run
	})
}

// Persistence stores and loads values by key.
type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
	// Keys lists the stored keys, oldest first.
	Keys() ([]Key, error)
}
