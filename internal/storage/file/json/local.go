package json

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/drakos74/stylo/internal/storage"
)

// MemoryShard creates storages that keep the encoded reports in memory.
// Every call creates an independent storage.
func MemoryShard() storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewMemoryStorage(shard), nil
	}
}

// MemoryStorage keeps the json encoding of every value, so a loaded value
// never shares state with the stored one.
type MemoryStorage struct {
	shard string
	blobs map[storage.Key][]byte
	mutex *sync.RWMutex
}

// NewMemoryStorage creates an empty in-memory storage.
func NewMemoryStorage(shard string) *MemoryStorage {
	return &MemoryStorage{
		shard: shard,
		blobs: make(map[storage.Key][]byte),
		mutex: new(sync.RWMutex),
	}
}

func (m *MemoryStorage) Store(k storage.Key, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode '%s': %w", k.Path(), err)
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.blobs[k] = b
	return nil
}

func (m *MemoryStorage) Load(k storage.Key, value interface{}) error {
	m.mutex.RLock()
	b, ok := m.blobs[k]
	m.mutex.RUnlock()
	if !ok {
		return fmt.Errorf("'%s' in shard '%s': %w", k.Path(), m.shard, storage.NotFoundErr)
	}
	if err := json.Unmarshal(b, value); err != nil {
		return fmt.Errorf("could not decode '%s' %s: %w", k.Path(), err.Error(), storage.CouldNotLoadErr)
	}
	return nil
}

func (m *MemoryStorage) Keys() ([]storage.Key, error) {
	m.mutex.RLock()
	keys := make([]storage.Key, 0, len(m.blobs))
	for k := range m.blobs {
		keys = append(keys, k)
	}
	m.mutex.RUnlock()
	storage.SortKeys(keys)
	return keys, nil
}
