package lite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewFileStore(path)
}

func TestFileStoreList(t *testing.T) {
	store := writeConfig(t, "local_files:\n  - /data/a.json\n  - https://example.com/b.json\n")
	got, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0] != "/data/a.json" || got[1] != "https://example.com/b.json" {
		t.Fatalf("List = %v", got)
	}
}

func TestFileStoreAdd(t *testing.T) {
	store := writeConfig(t, "local_files:\n  - /data/a.json\n")

	if err := store.Add("/data/b.json"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add("/data/b.json"); !errors.Is(err, ErrRepositoryExists) {
		t.Fatalf("duplicate Add err = %v, want ErrRepositoryExists", err)
	}

	// Re-read through a fresh store to prove the change hit the file.
	got, err := NewFileStore(store.path).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[1] != "/data/b.json" {
		t.Fatalf("persisted list = %v", got)
	}
}

func TestFileStoreRemove(t *testing.T) {
	store := writeConfig(t, "local_files:\n  - /data/a.json\n  - /data/b.json\n")

	if err := store.Remove("/data/a.json"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := store.Remove("/data/a.json"); !errors.Is(err, ErrRepositoryNotFound) {
		t.Fatalf("second Remove err = %v, want ErrRepositoryNotFound", err)
	}

	got, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0] != "/data/b.json" {
		t.Fatalf("list after remove = %v", got)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := store.List(); err == nil {
		t.Fatal("List on missing file succeeded, want error")
	}
	if err := store.Add("/data/a.json"); err == nil {
		t.Fatal("Add on missing file succeeded, want error")
	}
}
