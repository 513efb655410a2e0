// Package storage opens the in-process stores used by the portal. Nothing
// is written to disk: state lives as long as the process.
package storage

import (
	"fmt"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

// OpenBadger opens an in-memory Badger instance.
func OpenBadger() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return db, nil
}

// OpenIndex opens an in-memory bluge index writer.
func OpenIndex() (*bluge.Writer, error) {
	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	if err != nil {
		return nil, fmt.Errorf("open in-memory index: %w", err)
	}
	return writer, nil
}
