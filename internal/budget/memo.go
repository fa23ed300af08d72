package budget

import (
	"sync"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"flowstate/internal/model"
)

// Cached memoizes Derive on snapshot identity and calendar day. Repeated
// derivations within the same day over an unchanged snapshot return the
// previous View without recomputing.
type Cached struct {
	mu   sync.Mutex
	key  memoKey
	view View
	ok   bool
}

type memoKey struct {
	hash uint64
	year int
	yday int
}

// Derive returns the memoized view, recomputing when the snapshot or the
// calendar day changed. Hashing failures fall back to a plain recompute.
func (c *Cached) Derive(snap model.Snapshot, now time.Time) View {
	h, err := hashstructure.Hash(snap, hashstructure.FormatV2, nil)
	if err != nil {
		return Derive(snap, now)
	}
	key := memoKey{hash: h, year: now.Year(), yday: now.YearDay()}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ok && c.key == key {
		return c.view
	}
	c.view = Derive(snap, now)
	c.key = key
	c.ok = true
	return c.view
}

// Invalidate drops the cached view.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ok = false
}
