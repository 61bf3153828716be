package sequence

import "fmt"

// Cursor is a position in a Sequence: either on an element or empty. The zero
// Cursor is empty. Cursors are plain values and can be copied freely; moving
// one never changes the Sequence.
type Cursor struct {
	seq   *Sequence // nil means empty
	idx   int
	gen   uint32
	epoch uint32
}

func (c Cursor) IsEmpty() bool {
	return c.seq == nil
}

// Err reports why c cannot be dereferenced, or nil if it can.
func (c Cursor) Err() error {
	if c.seq == nil {
		return ErrInvalidPosition
	}
	if c.stale() {
		return ErrStaleCursor
	}
	return nil
}

func (c Cursor) Dereference() (int, error) {
	if err := c.Err(); err != nil {
		return 0, err
	}
	return c.seq.nodes[c.idx].value, nil
}

// StepForward moves c to the next element and returns the moved cursor.
func (c *Cursor) StepForward() Cursor {
	c.step(true)
	return *c
}

// PostStepForward moves c to the next element and returns c as it was
// before the move.
func (c *Cursor) PostStepForward() Cursor {
	temp := *c
	c.step(true)
	return temp
}

func (c *Cursor) StepBackward() Cursor {
	c.step(false)
	return *c
}

func (c *Cursor) PostStepBackward() Cursor {
	temp := *c
	c.step(false)
	return temp
}

// Offset moves c forward n elements, or backward -n elements when n is
// negative. It stops at the empty state if the chain runs out first.
func (c *Cursor) Offset(n int) Cursor {
	for ; n > 0 && c.seq != nil; n-- {
		c.step(true)
	}
	for ; n < 0 && c.seq != nil; n++ {
		c.step(false)
	}
	return *c
}

// At is Offset applied to a copy; c itself does not move.
func (c Cursor) At(n int) Cursor {
	return c.Offset(n)
}

// Equals reports whether both cursors are on the same element, or both empty.
func (c Cursor) Equals(other Cursor) bool {
	if c.seq == nil || other.seq == nil {
		return c.seq == nil && other.seq == nil
	}
	return c.seq == other.seq &&
		c.idx == other.idx &&
		c.gen == other.gen &&
		c.epoch == other.epoch
}

func (c Cursor) String() string {
	if c.seq == nil {
		return "{nil}"
	}
	return fmt.Sprintf("{%d}", c.idx)
}

// step never follows the links of a freed slot: a stale cursor collapses to
// empty.
func (c *Cursor) step(forward bool) {
	if c.seq == nil {
		return
	}
	if c.stale() {
		*c = Cursor{}
		return
	}
	n := c.seq.nodes[c.idx]
	if forward {
		*c = c.seq.cursorAt(n.next)
	} else {
		*c = c.seq.cursorAt(n.prev)
	}
}

func (c Cursor) stale() bool {
	if c.epoch != c.seq.epoch || c.idx >= len(c.seq.nodes) {
		return true
	}
	n := c.seq.nodes[c.idx]
	return !n.used || n.gen != c.gen
}
