package main

import (
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

var FILE_MODE_RW os.FileMode = 0600

const TRANSCRIPT_BUCKET = "Transcripts"

// DBOpen opens (or creates) the transcript file at path.
func DBOpen(path string) (*bolt.DB, error) {
	db, err := bolt.Open(path, FILE_MODE_RW, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open '%s' failed: %w", path, err)
	}
	return db, nil
}

func DBInit(db *bolt.DB) error {
	err := db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(TRANSCRIPT_BUCKET)); err != nil {
			return fmt.Errorf("Failed to create bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bbolt db.Update in DBInit failed: %w", err)
	}
	return nil
}

// DBInsert stores the rendered line of one walk. A later run overwrites it.
func DBInsert(db *bolt.DB, walk string, line string) error {
	err := db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(TRANSCRIPT_BUCKET))
		if err != nil {
			return fmt.Errorf("Failed to create bucket: %w", err)
		}
		if err = bucket.Put([]byte(walk), []byte(line)); err != nil {
			return fmt.Errorf("Failed to insert '%s': %w", walk, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("bbolt db.Update in DBInsert failed: %w", err)
	}
	return nil
}

func DBView(db *bolt.DB, walk string) (string, error) {
	var line string
	err := db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(TRANSCRIPT_BUCKET))
		if bucket == nil {
			return fmt.Errorf("Failed to find bucket")
		}
		value := bucket.Get([]byte(walk))
		if value == nil {
			return fmt.Errorf("Failed to view '%s'", walk)
		}
		// value is only valid inside the transaction
		line = string(value)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("bbolt db.View in DBView failed: %w", err)
	}
	return line, nil
}
