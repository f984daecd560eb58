package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
)

// defaultFileMode is used when Save creates a new store file.
const defaultFileMode = 0o644

// Load reads the store at path.
// A missing or blank file yields an empty store.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}

	c := codecFor(path)
	var doc document
	if err := c.Decode(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", ErrCorruptStore, path, c.Name(), err)
	}
	s, err := restore(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, path, err)
	}
	return s, nil
}

// restore validates a decoded document and builds a Store from it.
func restore(doc document) (*Store, error) {
	if doc.LastID < 0 {
		return nil, fmt.Errorf("invalid last_id: %d", doc.LastID)
	}
	lastID := doc.LastID
	seen := make(map[int]bool, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if t.ID <= 0 {
			return nil, fmt.Errorf("invalid task id: %d", t.ID)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate task id: %d", t.ID)
		}
		seen[t.ID] = true
		if !t.Status.Valid() {
			return nil, fmt.Errorf("task %d: missing or invalid status", t.ID)
		}
		lastID = max(lastID, t.ID)
	}
	return &Store{
		tasks:  slices.Clone(doc.Tasks),
		lastID: lastID,
	}, nil
}

// Save writes the full store to path, replacing any previous contents.
// The file is replaced atomically: on failure the previous file is intact.
func (s *Store) Save(path string) error {
	c := codecFor(path)
	data, err := c.Encode(document{LastID: s.lastID, Tasks: s.tasks})
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrStorageUnavailable, c.Name(), err)
	}

	// Replace the file a symlink points at, not the link itself.
	target := path
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		target = resolved
	}

	perm := fs.FileMode(defaultFileMode)
	if fi, err := os.Stat(target); err == nil {
		if !fi.Mode().IsRegular() {
			return fmt.Errorf("%w: %s is not a regular file", ErrStorageUnavailable, path)
		}
		perm = fi.Mode().Perm()
	}

	if err := writeFileAtomic(target, data, perm); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path, syncs it, and
// renames it over path. Once the rename succeeds the new contents are in
// place, so a failed directory sync afterwards is not reported.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	_ = syncDir(dir)
	return nil
}

// syncDir flushes a directory entry change to disk.
var syncDir = func(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	if err := d.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}
	return nil
}
