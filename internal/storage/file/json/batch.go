package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drakos74/stylo/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage keeps every report in its own json file under <root>/<table>/<shard>.
type BlobStorage struct {
	dir string
}

// BlobShard creates blob storages for the given table under the given root.
func BlobShard(root, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		if shard == "" {
			return nil, fmt.Errorf("blob storage needs a shard name: %w", storage.InvalidKeyErr)
		}
		return NewJsonBlob(root, table, shard), nil
	}
}

// NewJsonBlob creates a blob storage.
// The table groups values of the same schema, the shard is a logical split within it.
func NewJsonBlob(root, table, shard string) *BlobStorage {
	if root == "" {
		root = storage.DefaultDir
	}
	return &BlobStorage{
		dir: filepath.Join(root, table, shard),
	}
}

// Dir returns the directory holding the files of the storage.
func (s BlobStorage) Dir() string {
	return s.dir
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	if err := Save(s.dir, k.Path(), value); err != nil {
		return err
	}
	log.Debug().Str("dir", s.dir).Str("file", k.Path()).Msg("stored json file")
	return nil
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir, k.Path(), value)
}

// Keys lists the files of the storage that parse as keys.
// A directory that was never written to holds no keys.
func (s BlobStorage) Keys() ([]storage.Key, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []storage.Key{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not list '%s': %w", s.dir, err)
	}
	keys := make([]storage.Key, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		k, err := storage.ParseKey(entry.Name())
		if err != nil {
			log.Debug().Str("dir", s.dir).Str("file", entry.Name()).Msg("skipping foreign file")
			continue
		}
		keys = append(keys, k)
	}
	storage.SortKeys(keys)
	return keys, nil
}

// Save writes the json encoding of value to fileName under filePath, creating the directory if needed.
func Save(filePath string, fileName string, value interface{}) error {
	info, err := os.Stat(filePath)
	if err != nil {
		if err := os.MkdirAll(filePath, os.ModePerm); err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a directory: %s", filePath)
	}
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode value for '%s': %w", fileName, err)
	}
	p := filepath.Join(filePath, fileName)
	if err := os.WriteFile(p, b, 0644); err != nil {
		return fmt.Errorf("could not write file '%s': %w", p, err)
	}
	return nil
}

// Load decodes the json file fileName under filePath into value.
func Load(filePath string, fileName string, value interface{}) error {
	p := filepath.Join(filePath, fileName)
	data, err := os.ReadFile(p)
	if err != nil {
		return fmt.Errorf("could not read file '%s' %s: %w", p, err.Error(), storage.NotFoundErr)
	}
	if err := json.Unmarshal(data, value); err != nil {
		return fmt.Errorf("could not unmarshal '%s' %s: %w", p, err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}
