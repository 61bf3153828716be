package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cursorlist/sequence"
)

const demoOutput = `1 <--> 2 <--> 3 <--> 4 <--> 5 <--> 6 <--> nullptr
1 <--> 2 <--> 3 <--> 4 <--> 5 <--> 6 <--> nullptr
1 <--> 4 <--> nullptr
6 <--> 5 <--> 4 <--> 3 <--> 2 <--> 1 <--> nullptr
6 <--> 5 <--> 4 <--> 3 <--> 2 <--> 1 <--> nullptr
6 <--> 3 <--> nullptr
`

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	err := Run(&out, Config{Values: "6,5,4,3,2,1", Mode: "head", Offset: 3})
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != demoOutput {
		t.Errorf("Run() printed:\n%s\nwant:\n%s", out.String(), demoOutput)
	}
}

func TestRunEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := Run(&out, Config{Values: "", Mode: "tail", Offset: 1}); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), strings.Repeat("nullptr\n", 6); got != want {
		t.Errorf("Run() on empty sequence printed %q, want %q", got, want)
	}
}

func TestRunBadConfig(t *testing.T) {
	var configs = []Config{
		{Values: "1,2", Mode: "head", Offset: 0},
		{Values: "1,x", Mode: "head", Offset: 1},
		{Values: "1,2", Mode: "sideways", Offset: 1},
	}
	for _, cfg := range configs {
		var out bytes.Buffer
		if err := Run(&out, cfg); err == nil {
			t.Errorf("Run(%+v) succeeded, want error", cfg)
		}
	}
}

func TestRunRecordsTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walks.db")
	var out bytes.Buffer
	if err := Run(&out, Config{Values: "6,5,4,3,2,1", Mode: "head", Offset: 3, DBPath: path}); err != nil {
		t.Fatal(err)
	}

	db, err := DBOpen(path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	lines := strings.Split(strings.TrimSuffix(demoOutput, "\n"), "\n")
	for i, walk := range Walks(3) {
		line, err := DBView(db, walk.Name)
		if err != nil {
			t.Fatalf("DBView(%s): %v", walk.Name, err)
		}
		if line != lines[i] {
			t.Errorf("DBView(%s) = %q, want %q", walk.Name, line, lines[i])
		}
	}
}

func TestDBViewMissing(t *testing.T) {
	db, err := DBOpen(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := DBView(db, "forward_prefix"); err == nil {
		t.Errorf("DBView without bucket should fail")
	}
	if err := DBInit(db); err != nil {
		t.Fatal(err)
	}
	if _, err := DBView(db, "forward_prefix"); err == nil {
		t.Errorf("DBView of missing walk should fail")
	}
	if err := DBInsert(db, "forward_prefix", "1 <--> nullptr"); err != nil {
		t.Fatal(err)
	}
	if line, err := DBView(db, "forward_prefix"); err != nil || line != "1 <--> nullptr" {
		t.Errorf("DBView() = %q, %v", line, err)
	}
}

func TestWalkNegativeOffset(t *testing.T) {
	seq, _ := BuildSequence([]int{1, 2, 3, 4, 5}, "tail")
	walks := Walks(-2)
	visited, err := walks[2].Run(seq)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Render(visited), "1 <--> 3 <--> 5 <--> nullptr"; got != want {
		t.Errorf("forward_offset = %q, want %q", got, want)
	}
}

var gcq *Queue
var gcs []int

func newBenchSequence(n int) *sequence.Sequence {
	seq := sequence.New()
	for i := 0; i < n; i++ {
		seq.InsertAtTail(i)
	}
	return seq
}

func BenchmarkWalkForward(b *testing.B) {
	seq := newBenchSequence(4096)
	walk := Walks(1)[0]

	var visited *Queue

	for i := 0; i < b.N; i++ {
		visited, _ = walk.Run(seq)
	}

	gcq = visited
}

func BenchmarkSlice(b *testing.B) {
	seq := newBenchSequence(4096)

	var values []int

	for i := 0; i < b.N; i++ {
		values = seq.Slice()
	}

	gcs = values
}

func BenchmarkInsertPop(b *testing.B) {
	seq := sequence.New()
	for i := 0; i < b.N; i++ {
		seq.InsertAtHead(i)
		seq.InsertAtTail(i)
		seq.PopFromHead()
		seq.PopFromTail()
	}
}
