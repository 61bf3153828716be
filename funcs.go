package main

import (
	"fmt"
	"strconv"
	"strings"

	"cursorlist/sequence"
)

// ParseValues reads a comma separated list of ints such as "6, 5,4".
// A blank input yields no values.
func ParseValues(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	tokens := strings.Split(s, ",")
	values := make([]int, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		trim := strings.TrimSpace(tokens[i])
		if trim == "" {
			return nil, fmt.Errorf("empty value at position %d in %q", i, s)
		}
		v, err := strconv.Atoi(trim)
		if err != nil {
			return nil, fmt.Errorf("bad value at position %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// BuildSequence inserts values in order, each at the head or each at the tail.
func BuildSequence(values []int, mode string) (*sequence.Sequence, error) {
	seq := sequence.New()
	switch mode {
	case "head":
		for _, v := range values {
			seq.InsertAtHead(v)
		}
	case "tail":
		for _, v := range values {
			seq.InsertAtTail(v)
		}
	default:
		return nil, fmt.Errorf("unknown insert mode %q, want head or tail", mode)
	}
	return seq, nil
}

// Render drains q into "v <--> v <--> nullptr".
func Render(q *Queue) string {
	var sb strings.Builder
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString(" <--> ")
	}
	sb.WriteString("nullptr")
	return sb.String()
}
