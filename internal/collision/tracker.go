// Package collision detects hash collisions between index terms.
package collision

import (
	"fmt"

	"github.com/arloliu/squeeze/errs"
)

// Tracker records which term owns each term ID.
type Tracker struct {
	terms map[uint64]string
}

// NewTracker creates a tracker sized for about sizeHint terms.
func NewTracker(sizeHint int) *Tracker {
	return &Tracker{
		terms: make(map[uint64]string, sizeHint),
	}
}

// Track registers term under id.
//
// It reports whether the term is new. Registering the same term again is not
// an error. A different term with the same id returns errs.ErrUnresolvedCollision.
func (t *Tracker) Track(term string, id uint64) (bool, error) {
	if term == "" {
		return false, errs.ErrInvalidTerm
	}

	existing, ok := t.terms[id]
	if !ok {
		t.terms[id] = term
		return true, nil
	}

	if existing != term {
		return false, fmt.Errorf("%w: %q and %q share id 0x%016x", errs.ErrUnresolvedCollision, existing, term, id)
	}

	return false, nil
}

// Term returns the term registered under id.
func (t *Tracker) Term(id uint64) (string, bool) {
	term, ok := t.terms[id]
	return term, ok
}

// Count returns the number of tracked terms.
func (t *Tracker) Count() int {
	return len(t.terms)
}

// Reset forgets all terms, keeping the allocated map.
func (t *Tracker) Reset() {
	clear(t.terms)
}
