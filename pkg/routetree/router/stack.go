package router

import "github.com/google/uuid"

// StackEntry is one previous snapshot: the tree that was installed before
// Action replaced it.
type StackEntry struct {
	ID       uuid.UUID
	Revision uint64
	Action   Action
	Tree     Tree
}

// Stack keeps previous snapshots for undo and time travel. Snapshots share
// structure, so keeping many of them is cheap.
// It is not safe for concurrent use; the Router guards its own stack.
type Stack struct {
	entries []StackEntry
	limit   int
}

// NewStack creates an empty stack holding at most limit entries.
// A limit of zero or less means unbounded.
func NewStack(limit int) *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
		limit:   limit,
	}
}

// Push adds a new entry to the stack, dropping the oldest one when full.
func (s *Stack) Push(entry StackEntry) {
	if s.limit > 0 && len(s.entries) >= s.limit {
		copy(s.entries, s.entries[1:])
		s.entries = s.entries[:len(s.entries)-1]
	}
	s.entries = append(s.entries, entry)
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Find returns the position of the entry with id, or -1.
func (s *Stack) Find(id uuid.UUID) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// Truncate drops the entry at index i and everything pushed after it,
// returning the dropped entry at i.
func (s *Stack) Truncate(i int) *StackEntry {
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	entry := s.entries[i]
	s.entries = s.entries[:i]
	return &entry
}

// Entries returns a copy of the entries, oldest first.
func (s *Stack) Entries() []StackEntry {
	out := make([]StackEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
}
