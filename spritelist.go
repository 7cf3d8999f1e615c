package arcade

import "fmt"

// SpriteList is an ordered collection of Actors updated and drawn as a batch.
// Insertion order is significant and preserved; duplicates are allowed. A
// sprite may belong to any number of lists at once — the list registers
// itself on each appended sprite so Sprite.Kill can sever every membership.
//
// Like the rest of the package, SpriteList is single-threaded.
type SpriteList struct {
	actors   []Actor
	disposed bool
}

// NewSpriteList creates an empty sprite list.
func NewSpriteList() *SpriteList {
	return &SpriteList{}
}

// Append adds a to the end of the list and registers the list in the
// sprite's back-reference set. No duplicate check: appending the same sprite
// twice yields two entries and two back-references.
func (l *SpriteList) Append(a Actor) {
	if globalDebug {
		debugCheckListDisposed(l, "Append")
		debugCheckListSize(l)
	}
	l.actors = append(l.actors, a)
	a.base().registerList(l)
}

// Remove removes the first entry whose underlying sprite matches a. Returns
// ErrNotFound (wrapped) when a is not a member; the list is left untouched.
func (l *SpriteList) Remove(a Actor) error {
	target := a.base()
	for i, m := range l.actors {
		if m.base() == target {
			copy(l.actors[i:], l.actors[i+1:])
			l.actors[len(l.actors)-1] = nil
			l.actors = l.actors[:len(l.actors)-1]
			return nil
		}
	}
	return fmt.Errorf("arcade: remove: %w", ErrNotFound)
}

// Pop removes and returns the last entry. Returns ErrEmptyList (wrapped) when
// the list is empty.
func (l *SpriteList) Pop() (Actor, error) {
	n := len(l.actors)
	if n == 0 {
		return nil, fmt.Errorf("arcade: pop: %w", ErrEmptyList)
	}
	a := l.actors[n-1]
	l.actors[n-1] = nil
	l.actors = l.actors[:n-1]
	return a, nil
}

// Contains reports whether any entry's underlying sprite matches a.
func (l *SpriteList) Contains(a Actor) bool {
	target := a.base()
	for _, m := range l.actors {
		if m.base() == target {
			return true
		}
	}
	return false
}

// Update calls Update on every member, in sequence order, synchronously.
// Variant overrides dispatch through the Actor interface.
func (l *SpriteList) Update() {
	for _, a := range l.actors {
		a.Update()
	}
}

// Draw calls Draw on every member, in sequence order, synchronously.
func (l *SpriteList) Draw(r Renderer) {
	for _, a := range l.actors {
		a.Draw(r)
	}
}

// Len returns the number of entries.
func (l *SpriteList) Len() int {
	return len(l.actors)
}

// At returns the entry at the given index.
func (l *SpriteList) At(index int) Actor {
	return l.actors[index]
}

// Actors returns the live member slice for iteration, in current sequence
// order. The returned slice MUST NOT be mutated by the caller, and mutating
// the list (Append/Remove/Pop/Kill) while ranging over it is a caller hazard
// with undefined results — there is no snapshot.
func (l *SpriteList) Actors() []Actor {
	return l.actors
}

// Dispose empties the list and removes its back-reference from every member
// sprite, then marks the list as dead. Call this before discarding a list
// whose sprites live on in other lists, so their back-reference sets don't
// accumulate dangling entries. Disposing twice is a no-op.
func (l *SpriteList) Dispose() {
	if l.disposed {
		return
	}
	for i, a := range l.actors {
		a.base().unregisterList(l)
		l.actors[i] = nil
	}
	l.actors = nil
	l.disposed = true
}

// IsDisposed returns true if this list has been disposed.
func (l *SpriteList) IsDisposed() bool {
	return l.disposed
}
