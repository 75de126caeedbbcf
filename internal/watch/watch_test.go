package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, options Options) *Watcher {
	t.Helper()
	w, err := New(options)
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })
	return w
}

func TestMatches(t *testing.T) {
	testCases := []struct {
		path string
		want bool
	}{
		{"main.grass", true},
		{"dir/lib.GRASS", true},
		{"util.gs", true},
		{"notes.txt", false},
		{"grass", false},
	}

	assert := assert.New(t)
	w := newTestWatcher(t, Options{Extensions: []string{".grass", ".gs"}})
	for _, tc := range testCases {
		assert.Equal(tc.want, w.Matches(tc.path), tc.path)
	}

	all := newTestWatcher(t, Options{})
	assert.True(all.Matches("anything.txt"))
}

func TestAcceptDebounces(t *testing.T) {
	assert := assert.New(t)
	w := newTestWatcher(t, Options{Debounce: 100 * time.Millisecond, Extensions: []string{".grass"}})

	start := time.Now()
	write := fsnotify.Event{Name: "a.grass", Op: fsnotify.Write}

	assert.True(w.accept(write, start))
	assert.False(w.accept(write, start.Add(50*time.Millisecond)))
	assert.True(w.accept(write, start.Add(150*time.Millisecond)))

	// Other files are debounced independently.
	assert.True(w.accept(fsnotify.Event{Name: "b.grass", Op: fsnotify.Create}, start.Add(160*time.Millisecond)))

	assert.False(w.accept(fsnotify.Event{Name: "c.grass", Op: fsnotify.Remove}, start))
	assert.False(w.accept(fsnotify.Event{Name: "c.txt", Op: fsnotify.Write}, start))
}

func TestRunReportsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	changed := make(chan string, 8)
	w := newTestWatcher(t, Options{
		Extensions: []string{".grass"},
		OnChange:   func(path string) { changed <- path },
	})
	require.NoError(t, w.Add(dir))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))
	target := filepath.Join(dir, "main.grass")
	require.NoError(t, os.WriteFile(target, []byte("let x: Int = 1"), 0o644))

	select {
	case path := <-changed:
		assert.Equal(t, target, path)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestAddSkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "objects"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src"), 0o755))

	w := newTestWatcher(t, Options{})
	require.NoError(t, w.Add(dir))

	assert.ElementsMatch(t, []string{dir, filepath.Join(dir, "src")}, w.watcher.WatchList())
}

func TestAddMissingDirectory(t *testing.T) {
	w := newTestWatcher(t, Options{})
	assert.Error(t, w.Add(filepath.Join(t.TempDir(), "missing")))
}
