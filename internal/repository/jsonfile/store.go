// Package jsonfile stores each collection as a single JSON array file under
// the data directory. Reads return a full snapshot; writes rewrite the whole
// array atomically (temp file + rename).
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type store struct {
	path string
}

func newStore(dataDir, filename string) *store {
	return &store{path: filepath.Join(dataDir, filename)}
}

// load decodes the file into v. A missing or empty file reads as-if the
// collection were empty and leaves v untouched.
func (s *store) load(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}
	return nil
}

// save rewrites the file with the serialized collection. The temp file lands
// in the same directory so the rename stays on one filesystem.
func (s *store) save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
