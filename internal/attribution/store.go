package attribution

import (
	"fmt"
	"time"

	"github.com/drakos74/stylo/internal/storage"
)

// Key is the storage key of the report.
func (r Report) Key(at time.Time) storage.Key {
	return storage.Key{
		Stamp:  at.Unix(),
		Metric: r.Metric,
		Run:    r.ID,
	}
}

// Store persists the report and returns the key it was stored under.
func Store(p storage.Persistence, r Report, at time.Time) (storage.Key, error) {
	k := r.Key(at)
	if err := p.Store(k, r); err != nil {
		return k, fmt.Errorf("could not store report %s: %w", r.ID, err)
	}
	return k, nil
}
