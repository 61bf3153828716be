package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"

	bolt "go.etcd.io/bbolt"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to 'file'")
var memprofile = flag.String("memprofile", "", "write mem profile to 'file'")

var values_flag = flag.String("values", "6,5,4,3,2,1", "comma separated values to insert")
var mode_flag = flag.String("mode", "head", "insert every value at the 'head' or the 'tail'")
var offset_flag = flag.Int("offset", 3, "jump size of the offset walks")
var db_flag = flag.String("db", "", "record each walk into this bbolt 'file'")

type Config struct {
	Values string
	Mode   string
	Offset int
	DBPath string
}

func main() {
	// PROFILING SNIPPET
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not *create* CPU profile: ", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not *start* CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	// PROFILING SNIPPET

	cfg := Config{
		Values: *values_flag,
		Mode:   *mode_flag,
		Offset: *offset_flag,
		DBPath: *db_flag,
	}
	if err := Run(os.Stdout, cfg); err != nil {
		log.Fatal(err)
	}

	// PROFILING SNIPPET
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not *create* MEM profile: ", err)
		}
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not *start*  MEM profile: ", err)
		}
		f.Close()
	}
	// PROFILING SNIPPET
}

// Run builds the sequence described by cfg and prints one line per walk.
func Run(w io.Writer, cfg Config) error {
	if cfg.Offset == 0 {
		return fmt.Errorf("offset must not be zero")
	}
	values, err := ParseValues(cfg.Values)
	if err != nil {
		return fmt.Errorf("parse -values: %w", err)
	}
	seq, err := BuildSequence(values, cfg.Mode)
	if err != nil {
		return err
	}
	defer seq.Release()

	var db *bolt.DB
	if cfg.DBPath != "" {
		if db, err = DBOpen(cfg.DBPath); err != nil {
			return err
		}
		defer db.Close()
		if err = DBInit(db); err != nil {
			return err
		}
	}

	for _, walk := range Walks(cfg.Offset) {
		visited, err := walk.Run(seq)
		if err != nil {
			return err
		}
		line := Render(visited)
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
		if db != nil {
			if err = DBInsert(db, walk.Name, line); err != nil {
				return err
			}
		}
	}
	if db != nil {
		log.Printf("recorded %d walks into %s", len(Walks(cfg.Offset)), cfg.DBPath)
	}
	return nil
}
