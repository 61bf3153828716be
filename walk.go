package main

import (
	"fmt"

	"cursorlist/sequence"
)

// Walk is one demonstration traversal: where it starts and how it moves.
type Walk struct {
	Name    string
	Start   func(seq *sequence.Sequence) sequence.Cursor
	Advance func(iter *sequence.Cursor)
}

func begin(seq *sequence.Sequence) sequence.Cursor { return seq.Begin() }
func end(seq *sequence.Sequence) sequence.Cursor { return seq.End() }

// Walks returns the six traversals of the demo in print order. offset is the
// jump used by the two offset walks and must not be zero.
func Walks(offset int) []Walk {
	if offset < 0 {
		offset = -offset
	}
	return []Walk{
		{"forward_prefix", begin, func(iter *sequence.Cursor) { iter.StepForward() }},
		{"forward_postfix", begin, func(iter *sequence.Cursor) { iter.PostStepForward() }},
		{"forward_offset", begin, func(iter *sequence.Cursor) { iter.Offset(+offset) }},
		{"reverse_postfix", end, func(iter *sequence.Cursor) { iter.PostStepBackward() }},
		{"reverse_prefix", end, func(iter *sequence.Cursor) { iter.StepBackward() }},
		{"reverse_offset", end, func(iter *sequence.Cursor) { iter.Offset(-offset) }},
	}
}

// Run walks seq until the cursor is empty and returns the values visited.
func (w Walk) Run(seq *sequence.Sequence) (*Queue, error) {
	visited := NewQueue(seq.Size())
	iter := w.Start(seq)
	for !iter.IsEmpty() {
		v, err := iter.Dereference()
		if err != nil {
			return nil, fmt.Errorf("walk %s at %v: %w", w.Name, iter, err)
		}
		visited.Enqueue(v)
		if visited.Len() > seq.Size() {
			return nil, fmt.Errorf("walk %s visited more than %d elements", w.Name, seq.Size())
		}
		w.Advance(&iter)
	}
	return visited, nil
}
