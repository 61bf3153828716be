package sequence

// LIFO of freed arena slots. The most recently freed slot is reused first.

type slotStack struct {
	data []int
	top  int
}

func newSlotStack(size int) *slotStack {
	return &slotStack{
		make([]int, size), 0,
	}
}

func (s *slotStack) Len() int {
	return s.top
}

func (s *slotStack) Cap() int {
	return cap(s.data)
}

func (s *slotStack) IsEmpty() bool {
	return s.top == 0
}

func (s *slotStack) Push(slot int) {
	if s.top < len(s.data) {
		s.data[s.top] = slot
	} else {
		s.data = append(s.data, slot)
	}
	s.top += 1
}

func (s *slotStack) Pop() (int, bool) {
	if s.top == 0 {
		return nilIndex, false
	}
	s.top -= 1
	slot := s.data[s.top]
	s.data[s.top] = 0
	return slot, true
}
