package json

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/stylo/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	ID     string  `json:"id"`
	Author string  `json:"author"`
	Score  float64 `json:"score"`
}

func TestStorage(t *testing.T) {

	type test struct {
		shard storage.Shard
	}

	tests := map[string]test{
		"blob": {
			shard: BlobShard(t.TempDir(), storage.ReportDir),
		},
		"memory": {
			shard: MemoryShard(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := tt.shard("test")
			require.NoError(t, err)

			keys, err := s.Keys()
			require.NoError(t, err)
			assert.Empty(t, keys)

			newer := storage.Key{Stamp: 2, Metric: "cosine", Run: uuid.New().String()}
			older := storage.Key{Stamp: 1, Metric: "cosine", Run: uuid.New().String()}
			for _, k := range []storage.Key{newer, older} {
				require.NoError(t, s.Store(k, entry{ID: k.Run, Author: "B", Score: 0.75}))
			}

			var loaded entry
			require.NoError(t, s.Load(newer, &loaded))
			assert.Equal(t, entry{ID: newer.Run, Author: "B", Score: 0.75}, loaded)

			keys, err = s.Keys()
			require.NoError(t, err)
			assert.Equal(t, []storage.Key{older, newer}, keys)

			var missing entry
			err = s.Load(storage.Key{Run: "missing"}, &missing)
			assert.ErrorIs(t, err, storage.NotFoundErr)
		})
	}
}

func TestBlobStorage_Keys(t *testing.T) {
	root := t.TempDir()
	s := NewJsonBlob(root, storage.ReportDir, "cityblock")

	k := storage.Key{Stamp: 5, Metric: "cityblock", Run: "r"}
	require.NoError(t, s.Store(k, entry{ID: "r"}))
	assert.FileExists(t, filepath.Join(root, storage.ReportDir, "cityblock", k.Path()))

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "broken.json"), []byte("x"), 0600))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []storage.Key{k}, keys)

	var e entry
	err = Load(s.Dir(), "broken.json", &e)
	assert.ErrorIs(t, err, storage.CouldNotLoadErr)
}

func TestBlobShard_NoShard(t *testing.T) {
	_, err := BlobShard(t.TempDir(), storage.ReportDir)("")
	assert.ErrorIs(t, err, storage.InvalidKeyErr)
}

func TestMemoryStorage_Isolated(t *testing.T) {
	s := NewMemoryStorage("test")
	k := storage.Key{Stamp: 1, Metric: "cosine", Run: "a"}
	e := entry{ID: "a", Author: "B"}
	require.NoError(t, s.Store(k, &e))
	e.Author = "G"

	var loaded entry
	require.NoError(t, s.Load(k, &loaded))
	assert.Equal(t, "B", loaded.Author)
}
