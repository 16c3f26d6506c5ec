package storage

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// VoidStorage discards everything it is given.
// It stands in for the report storage when no directory is configured.
type VoidStorage struct {
	shard string
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	log.Debug().Str("shard", d.shard).Str("file", k.Path()).Msg("discarded")
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("nothing is kept in void shard '%s', '%s': %w", d.shard, k.Path(), NotFoundErr)
}

func (d VoidStorage) Keys() ([]Key, error) {
	return []Key{}, nil
}

// VoidShard creates storages that keep nothing.
func VoidShard() Shard {
	return func(shard string) (Persistence, error) {
		return VoidStorage{shard: shard}, nil
	}
}
