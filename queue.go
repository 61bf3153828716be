package main

// FIFO of values visited by a walk, drained in visit order when rendered

type Queue struct {
	data  []int
	front int
	size  int
}

func NewQueue(size int) *Queue {
	return &Queue{
		make([]int, 0, size), 0, 0,
	}
}

func (q *Queue) Len() int {
	return q.size
}

func (q *Queue) Cap() int {
	return cap(q.data)
}

func (q *Queue) IsEmpty() bool {
	return q.size == 0
}

func (q *Queue) Enqueue(num int) {
	q.data = append(q.data, num)
	q.size += 1
}

func (q *Queue) Dequeue() (int, bool) {
	if q.size == 0 {
		return -1, false
	}
	deleted := q.data[q.front]
	q.data[q.front] = 0
	q.front += 1
	q.size -= 1
	if q.size == 0 {
		q.data = q.data[:0]
		q.front = 0
	}
	return deleted, true
}
