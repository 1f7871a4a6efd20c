package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func tempFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func startWatcher(t *testing.T, path string) *Watcher {
	t.Helper()
	w, err := New(path, WithDebounce(30*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func TestWatcher_DetectsWrite(t *testing.T) {
	path := tempFile(t)
	w := startWatcher(t, path)

	if err := os.WriteFile(path, []byte(`{"a": 2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("expected an event after writing the file")
	}
}

func TestWatcher_DetectsAtomicReplace(t *testing.T) {
	path := tempFile(t)
	w := startWatcher(t, path)

	// Editors often save by writing a temp file and renaming it over the
	// original.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(`{"a": 3}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("expected an event after replacing the file")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	path := tempFile(t)
	w := startWatcher(t, path)

	sibling := filepath.Join(filepath.Dir(path), "other.json")
	if err := os.WriteFile(sibling, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Events():
		t.Fatal("sibling file changes should not produce events")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_CoalescesRapidWrites(t *testing.T) {
	path := tempFile(t)
	w := startWatcher(t, path)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(`{"i": 1}`), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("expected an event after the burst")
	}

	// The burst fell inside one debounce window; no second event follows.
	select {
	case <-w.Events():
		t.Fatal("expected the burst to coalesce into one event")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	path := tempFile(t)
	w := startWatcher(t, path)

	if err := w.Start(); err != ErrAlreadyStarted {
		t.Errorf("expected ErrAlreadyStarted, got %v", err)
	}
}

func TestWatcher_CloseBeforeStart(t *testing.T) {
	w, err := New(tempFile(t))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("closing an unstarted watcher should be a no-op, got %v", err)
	}
}
