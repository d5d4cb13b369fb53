package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestIsRelevantEvent(t *testing.T) {
	w := &Watcher{path: filepath.Clean("/docs/report.txt")}

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write", fsnotify.Event{Name: "/docs/report.txt", Op: fsnotify.Write}, true},
		{"create", fsnotify.Event{Name: "/docs/report.txt", Op: fsnotify.Create}, true},
		{"rename", fsnotify.Event{Name: "/docs/report.txt", Op: fsnotify.Rename}, true},
		{"chmod", fsnotify.Event{Name: "/docs/report.txt", Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: "/docs/report.txt", Op: fsnotify.Remove}, false},
		{"other file", fsnotify.Event{Name: "/docs/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, w.isRelevantEvent(tt.event))
		})
	}
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("One."), 0o600))

	w, err := New(Config{Path: path, DebounceDur: 20 * time.Millisecond})
	require.NoError(t, err)
	changes, err := w.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	require.NoError(t, os.WriteFile(path, []byte("One. Two."), 0o600))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatcher_StartFailsForMissingDirectory(t *testing.T) {
	w, err := New(DefaultConfig(filepath.Join(t.TempDir(), "missing", "doc.txt")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.fsWatcher.Close() })

	_, err = w.Start()
	require.Error(t, err)
}
