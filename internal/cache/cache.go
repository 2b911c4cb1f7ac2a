// Package cache is the local snapshot store: one JSON file with two named
// slots, "leads" and "stats". It is read once at startup and rewritten
// whenever a slot changes. Writes are best-effort; failures are logged and
// never surfaced to the user. A corrupt slot is treated as absent without
// affecting the other slot.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Slot names.
const (
	SlotLeads = "leads"
	SlotStats = "stats"
)

// File is a two-slot snapshot store backed by a single JSON file.
type File struct {
	path   string
	logger *zap.Logger
	slots  map[string]json.RawMessage
}

// Open reads the cache file at path. A missing or unreadable file is a
// cold start, not an error.
func Open(path string, logger *zap.Logger) *File {
	f := &File{path: path, logger: logger, slots: map[string]json.RawMessage{}}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("cache read failed", zap.String("path", path), zap.Error(err))
		}
		return f
	}
	if err := json.Unmarshal(data, &f.slots); err != nil {
		logger.Warn("cache parse failed, starting cold", zap.String("path", path), zap.Error(err))
		f.slots = map[string]json.RawMessage{}
	}
	return f
}

// Get decodes a slot into v. It reports false when the slot is absent or
// does not parse; a parse failure is logged and otherwise absorbed.
func (f *File) Get(slot string, v any) bool {
	raw, ok := f.slots[slot]
	if !ok || len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		f.logger.Warn("cached slot unreadable, ignoring", zap.String("slot", slot), zap.Error(err))
		return false
	}
	return true
}

// Set serializes v into a slot and rewrites the file. Best-effort: any
// failure is logged and swallowed.
func (f *File) Set(slot string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		f.logger.Warn("cache encode failed", zap.String("slot", slot), zap.Error(err))
		return
	}
	f.slots[slot] = raw
	f.flush()
}

func (f *File) flush() {
	data, err := json.Marshal(f.slots)
	if err != nil {
		f.logger.Warn("cache encode failed", zap.Error(err))
		return
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			f.logger.Warn("cache dir create failed", zap.String("path", f.path), zap.Error(err))
			return
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		f.logger.Warn("cache write failed", zap.String("path", f.path), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, f.path); err != nil {
		f.logger.Warn("cache write failed", zap.String("path", f.path), zap.Error(err))
	}
}
