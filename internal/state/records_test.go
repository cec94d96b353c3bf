// Where: internal/state/records_test.go
// What: Tests for build record persistence.
// Why: Records must round-trip and removal must be idempotent.
package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecordStoreSaveLoadRemove(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)

	store := RecordStore{}
	record := Record{
		Tag:       "train:abc1234",
		ImageID:   "sha256:feedface",
		BaseImage: "python:3.11",
		BuiltAt:   time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}

	if err := store.Save("/work/train", record); err != nil {
		t.Fatalf("save record: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	got, ok := loaded["/work/train"]
	if !ok {
		t.Fatal("record missing after save")
	}
	if got.Tag != record.Tag || got.ImageID != record.ImageID {
		t.Fatalf("record mismatch: %+v", got)
	}

	if err := store.Remove("/work/train"); err != nil {
		t.Fatalf("remove record: %v", err)
	}
	loaded, err = store.Load()
	if err != nil {
		t.Fatalf("reload records: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("records not removed: %+v", loaded)
	}

	// Removing again is a no-op.
	if err := store.Remove("/work/train"); err != nil {
		t.Fatalf("second remove: %v", err)
	}

	path := filepath.Join(home, "builds.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("records file missing: %v", err)
	}
}

func TestRecordStoreLoadMissingFile(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())

	loaded, err := RecordStore{}.Load()
	if err != nil {
		t.Fatalf("load records: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected empty map, got %+v", loaded)
	}
}
