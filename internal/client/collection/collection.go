// Package collection holds the in-memory view of the user's files.
//
// The collection never performs I/O. Callers apply the results of remote
// operations to it and own any reconciliation (see services.FileService).
// Every mutating call is atomic with respect to the others; readers always
// observe a complete sequence with unique ids.
package collection

import (
	"sync"

	"github.com/dmitrijs2005/gophfiles/internal/client/models"
)

// State tells whether the collection mirrors the last fetch.
type State int

const (
	// Pristine: exactly the records of the last successful list or search.
	Pristine State = iota
	// Extended: holds records appended after an upload that no refresh has
	// confirmed yet.
	Extended
)

func (s State) String() string {
	if s == Extended {
		return "extended"
	}
	return "pristine"
}

type FileCollection struct {
	mu      sync.RWMutex
	records []models.FileRecord
	index   map[string]int
	state   State
	version uint64
}

func New() *FileCollection {
	return &FileCollection{index: make(map[string]int)}
}

// ReplaceAll swaps the visible sequence for records. Later duplicates of an
// id are dropped so the uniqueness invariant holds even for a sloppy
// response.
func (c *FileCollection) ReplaceAll(records []models.FileRecord) {
	next := make([]models.FileRecord, 0, len(records))
	index := make(map[string]int, len(records))
	for _, r := range records {
		if _, dup := index[r.ID]; dup {
			continue
		}
		index[r.ID] = len(next)
		next = append(next, r)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = next
	c.index = index
	c.state = Pristine
	c.version++
}

// Append adds a confirmed upload result at the end. If the id is already
// visible (a refresh got there first) the record is replaced in place.
func (c *FileCollection) Append(record models.FileRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index[record.ID]; ok {
		c.records[i] = record
	} else {
		c.index[record.ID] = len(c.records)
		c.records = append(c.records, record)
	}
	c.state = Extended
	c.version++
}

// RemoveByID drops the record with id. It reports false and changes nothing
// when the id is not present.
func (c *FileCollection) RemoveByID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}

	next := make([]models.FileRecord, 0, len(c.records)-1)
	next = append(next, c.records[:i]...)
	next = append(next, c.records[i+1:]...)
	c.records = next
	c.reindex()
	c.version++
	return true
}

// PatchByID merges update's non-zero fields into the record with id. It
// reports false and changes nothing when the id is not present.
func (c *FileCollection) PatchByID(id string, update models.FileRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.records[i] = c.records[i].Merge(update)
	c.version++
	return true
}

// Snapshot returns a copy of the visible sequence.
func (c *FileCollection) Snapshot() []models.FileRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.FileRecord(nil), c.records...)
}

func (c *FileCollection) Get(id string) (models.FileRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return models.FileRecord{}, false
	}
	return c.records[i], true
}

func (c *FileCollection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

func (c *FileCollection) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Version increases with every applied mutation. No-op removals and patches
// leave it unchanged.
func (c *FileCollection) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// reindex must be called with mu held.
func (c *FileCollection) reindex() {
	index := make(map[string]int, len(c.records))
	for i, r := range c.records {
		index[r.ID] = i
	}
	c.index = index
}
