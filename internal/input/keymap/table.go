package keymap

import (
	"errors"
	"sync"

	"github.com/crestui/crest/internal/input/key"
)

// Table is the session-scoped keybinding table. Installation and
// replacement are explicit operations; lookups go through a Snapshot taken
// at the start of a dispatch pass. Safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	bindings []Compiled
	nextSeq  uint64
}

// NewTable creates an empty binding table.
func NewTable() *Table {
	return &Table{}
}

// BindKeys compiles and installs a batch of bindings. Bindings whose spec
// fails to parse are rejected individually and reported in the returned
// error (one MalformedBindingError per offender, joined); the valid
// remainder of the batch still installs. Binding the same keystroke and
// context twice is permitted: the later registration wins at match time.
func (t *Table) BindKeys(bindings []Binding) error {
	compiled, errs := compile(bindings)

	t.mu.Lock()
	for _, c := range compiled {
		c.seq = t.nextSeq
		t.nextSeq++
		t.bindings = append(t.bindings, c)
	}
	t.mu.Unlock()

	return errors.Join(errs...)
}

// ReplaceAll atomically swaps the whole table for a new batch, with the
// same per-binding rejection behavior as BindKeys. Used by hot reload.
func (t *Table) ReplaceAll(bindings []Binding) error {
	compiled, errs := compile(bindings)

	t.mu.Lock()
	t.bindings = t.bindings[:0]
	for _, c := range compiled {
		c.seq = t.nextSeq
		t.nextSeq++
		t.bindings = append(t.bindings, c)
	}
	t.mu.Unlock()

	return errors.Join(errs...)
}

// Len returns the number of installed bindings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.bindings)
}

// Snapshot captures the current table contents. The snapshot is immutable;
// later BindKeys or ReplaceAll calls do not affect it.
func (t *Table) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	bindings := make([]Compiled, len(t.bindings))
	copy(bindings, t.bindings)
	return Snapshot{bindings: bindings}
}

func compile(bindings []Binding) ([]Compiled, []error) {
	compiled := make([]Compiled, 0, len(bindings))
	var errs []error

	for _, b := range bindings {
		ks, err := key.ParseKeystroke(b.Keys)
		if err != nil {
			errs = append(errs, &MalformedBindingError{Keys: b.Keys, Err: err})
			continue
		}
		compiled = append(compiled, Compiled{
			Keystroke: ks,
			Action:    b.Action,
			Context:   b.Context,
		})
	}
	return compiled, errs
}

// Snapshot is an immutable view of the table used for one dispatch pass.
type Snapshot struct {
	bindings []Compiled
}

// Match is a resolved binding. Depth indexes into the context sequence the
// lookup was given: 0 is the innermost declared context. An unscoped
// binding matches at Depth == len(contexts).
type Match struct {
	Binding Compiled
	Depth   int
}

// Match resolves a keystroke against an ordered context sequence, given
// innermost first (focused node outward). The most specific binding wins:
// lowest depth first, then highest registration sequence. The second return
// is false when nothing matches.
func (s Snapshot) Match(ks key.Keystroke, contexts []string) (Match, bool) {
	best := Match{Depth: -1}
	var bestSeq uint64
	found := false

	for _, b := range s.bindings {
		if b.Keystroke != ks {
			continue
		}

		depth := len(contexts)
		if b.Context != "" {
			depth = -1
			for i, label := range contexts {
				if label == b.Context {
					depth = i
					break
				}
			}
			if depth < 0 {
				continue
			}
		}

		if !found || depth < best.Depth || (depth == best.Depth && b.seq > bestSeq) {
			best = Match{Binding: b, Depth: depth}
			bestSeq = b.seq
			found = true
		}
	}

	return best, found
}

// Len returns the number of bindings in the snapshot.
func (s Snapshot) Len() int {
	return len(s.bindings)
}
