// Package sequence implements a doubly linked list of ints together with a
// Cursor type for walking it in either direction.
//
// Nodes live in an arena owned by the Sequence and are linked by index, so a
// Cursor never holds a pointer into freed memory. A Cursor whose node was
// popped, or whose Sequence was released, reports ErrStaleCursor instead of
// reading whatever occupies the slot now.
//
// Neither type is safe for concurrent use.
package sequence

import (
	"errors"
	"strconv"
	"strings"
)

const nilIndex = -1

var (
	ErrEmpty           = errors.New("sequence: sequence is empty")
	ErrInvalidPosition = errors.New("sequence: cursor is not positioned on an element")
	ErrStaleCursor     = errors.New("sequence: cursor refers to a removed element or a released sequence")
)

type node struct {
	value int
	next  int
	prev  int
	gen   uint32 // bumped every time the slot is freed
	used  bool
}

// Sequence is an ordered collection of ints. Use New to create one; the zero
// value is not ready for use.
type Sequence struct {
	nodes []node
	free  *slotStack
	head  int
	tail  int
	size  int
	epoch uint32
}

func New() *Sequence {
	return &Sequence{
		free: newSlotStack(0),
		head: nilIndex,
		tail: nilIndex,
	}
}

// InsertAtHead links v in front of the current head.
func (s *Sequence) InsertAtHead(v int) {
	idx := s.alloc(v)
	s.nodes[idx].next = s.head

	if s.head != nilIndex {
		s.nodes[s.head].prev = idx
	} else {
		s.tail = idx
	}

	s.head = idx
	s.size += 1
}

// InsertAtTail links v after the current tail.
func (s *Sequence) InsertAtTail(v int) {
	idx := s.alloc(v)
	s.nodes[idx].prev = s.tail

	if s.tail != nilIndex {
		s.nodes[s.tail].next = idx
	} else {
		s.head = idx
	}

	s.tail = idx
	s.size += 1
}

// PopFromHead unlinks the head and returns its value. Cursors positioned on
// the removed element become stale.
func (s *Sequence) PopFromHead() (int, error) {
	if s.size == 0 {
		return 0, ErrEmpty
	}
	first := s.head
	value := s.nodes[first].value

	s.head = s.nodes[first].next
	if s.head != nilIndex {
		s.nodes[s.head].prev = nilIndex
	} else {
		s.tail = nilIndex
	}

	s.free_slot(first)
	s.size -= 1
	return value, nil
}

// PopFromTail unlinks the tail and returns its value. Cursors positioned on
// the removed element become stale.
func (s *Sequence) PopFromTail() (int, error) {
	if s.size == 0 {
		return 0, ErrEmpty
	}
	last := s.tail
	value := s.nodes[last].value

	s.tail = s.nodes[last].prev
	if s.tail != nilIndex {
		s.nodes[s.tail].next = nilIndex
	} else {
		s.head = nilIndex
	}

	s.free_slot(last)
	s.size -= 1
	return value, nil
}

func (s *Sequence) Front() (int, error) {
	if s.size == 0 {
		return 0, ErrEmpty
	}
	return s.nodes[s.head].value, nil
}

func (s *Sequence) Back() (int, error) {
	if s.size == 0 {
		return 0, ErrEmpty
	}
	return s.nodes[s.tail].value, nil
}

// Begin returns a cursor on the head, or the empty cursor if s is empty.
func (s *Sequence) Begin() Cursor {
	return s.cursorAt(s.head)
}

// End returns a cursor on the last element, not one past it. Forward walks
// terminate on Cursor.IsEmpty, never by comparing against End.
func (s *Sequence) End() Cursor {
	return s.cursorAt(s.tail)
}

func (s *Sequence) Size() int {
	return s.size
}

// Slice returns the values from head to tail.
func (s *Sequence) Slice() []int {
	values := make([]int, 0, s.size)
	for current := s.head; current != nilIndex; current = s.nodes[current].next {
		values = append(values, s.nodes[current].value)
	}
	return values
}

// ReverseSlice returns the values from tail to head.
func (s *Sequence) ReverseSlice() []int {
	values := make([]int, 0, s.size)
	for current := s.tail; current != nilIndex; current = s.nodes[current].prev {
		values = append(values, s.nodes[current].value)
	}
	return values
}

// Release drops every element. All cursors obtained before the call become
// stale; s itself can be reused as an empty sequence.
func (s *Sequence) Release() {
	s.nodes = nil
	s.free = newSlotStack(0)
	s.head = nilIndex
	s.tail = nilIndex
	s.size = 0
	s.epoch += 1
}

func (s *Sequence) String() string {
	var sb strings.Builder
	for current := s.head; current != nilIndex; current = s.nodes[current].next {
		sb.WriteString(strconv.Itoa(s.nodes[current].value))
		sb.WriteString(" <--> ")
	}
	sb.WriteString("nullptr")
	return sb.String()
}

func (s *Sequence) alloc(v int) int {
	if idx, ok := s.free.Pop(); ok {
		n := &s.nodes[idx]
		n.value = v
		n.next = nilIndex
		n.prev = nilIndex
		n.used = true
		return idx
	}
	s.nodes = append(s.nodes, node{value: v, next: nilIndex, prev: nilIndex, used: true})
	return len(s.nodes) - 1
}

func (s *Sequence) free_slot(idx int) {
	n := &s.nodes[idx]
	n.next = nilIndex
	n.prev = nilIndex
	n.used = false
	n.gen += 1
	s.free.Push(idx)
}

func (s *Sequence) cursorAt(idx int) Cursor {
	if idx == nilIndex {
		return Cursor{}
	}
	return Cursor{seq: s, idx: idx, gen: s.nodes[idx].gen, epoch: s.epoch}
}
