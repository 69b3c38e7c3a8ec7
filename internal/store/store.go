// Package store persists the built index to a durable file and loads it
// back on warm-up.
//
// The snapshot is gzip-compressed JSON of every index table. Writes go to a
// temporary sibling file that is atomically renamed over the destination,
// so a crash mid-write can never corrupt a previously good cache and a
// concurrent reader never observes a half-written file. Load failures of
// any kind degrade to "no cache": a full rebuild is always a safe fallback,
// so a missing or corrupt cache must not turn into a startup crash.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/MarbleSodas/godoty-docs/internal/indexer"
)

// Save serializes the index to path via a temporary sibling file and an
// atomic rename. The parent directory is created if needed.
func Save(path string, idx *indexer.MemoryIndex) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-ops once the rename has succeeded.
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	zw := gzip.NewWriter(tmp)
	if err := json.NewEncoder(zw).Encode(idx); err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to flush index: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close cache file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to finalize cache file: %w", err)
	}
	return nil
}

// Load deserializes a previously saved index. It returns nil for a missing,
// unreadable, or malformed cache, or for one whose tables fail the index
// well-formedness check; the caller falls back to a full rebuild.
func Load(path string) *indexer.MemoryIndex {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil
	}
	defer func() { _ = zr.Close() }()

	var idx indexer.MemoryIndex
	if err := json.NewDecoder(zr).Decode(&idx); err != nil {
		return nil
	}
	if err := idx.Validate(); err != nil {
		return nil
	}
	return &idx
}
