// Package catalog owns the in-memory record collection and its
// mutation operations.
package catalog

import (
	"sync"
	"time"

	"github.com/somi-im/somi/internal/domain"
)

// Cell holds the live collection. It is the single source of truth: all
// mutations go through Replace (whole-slice swap), never through partial
// in-place edits, so readers always see a consistent snapshot.
type Cell struct {
	mu          sync.RWMutex
	records     []domain.Record
	version     uint64
	lastReplace time.Time
}

func NewCell() *Cell {
	return &Cell{}
}

// Snapshot returns a copy of the collection in order. Callers may keep
// the slice as long as they like; it never aliases the live collection.
func (c *Cell) Snapshot() []domain.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Replace swaps the whole collection and bumps the version counter.
func (c *Cell) Replace(records []domain.Record) {
	next := make([]domain.Record, len(records))
	copy(next, records)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = next
	c.version++
	c.lastReplace = time.Now()
}

// Len returns the number of records.
func (c *Cell) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

// Version returns the replace counter. Derived views may use it to
// memoize, although at catalog scale recomputing on every read is fine.
func (c *Cell) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.version
}

// LastReplace returns the timestamp of the last collection swap.
func (c *Cell) LastReplace() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastReplace
}
