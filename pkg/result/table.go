// Package result collects the outcomes of a batch of fixed-width integer
// evaluations run concurrently by internal/batch, and saves them to a
// checkpoint file that can be read back later.
package result

import (
	"sort"
	"sync"
)

// Record is the outcome of evaluating one batch line: the input
// expression, its formatted result, and an error message if evaluation
// failed (empty on success).
type Record struct {
	Line   int
	Input  string
	Output string
	Err    string
}

// Table stores batch evaluation records contributed by concurrent
// workers. A value is a fixed-size limb array with no internal
// synchronization of its own, so the table — not the values it holds —
// is what needs the lock.
type Table struct {
	mu      sync.Mutex
	records []Record
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Add inserts a record into the table.
func (t *Table) Add(r Record) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, r)
}

// Records returns a copy of all records, sorted by source line number.
func (t *Table) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, len(t.records))
	copy(out, t.records)
	sort.Slice(out, func(i, j int) bool { return out[i].Line < out[j].Line })
	return out
}

// Len returns the number of records collected so far.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}

// Failed returns the number of records whose Err is non-empty.
func (t *Table) Failed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, r := range t.records {
		if r.Err != "" {
			n++
		}
	}
	return n
}
