package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReportsWrites(t *testing.T) {
	dir := t.TempDir()
	writeRaw(t, dir, "car.glb", []byte("v1"))
	writeRaw(t, dir, "other.glb", []byte("v1"))
	l := NewLoader(dir, 1, quietLogger())
	defer l.Close()

	changed := make(chan struct{}, 4)
	require.NoError(t, l.Watch(waitCtx(t), "car.glb", func() { changed <- struct{}{} }))

	// Unrelated files in the same directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.glb"), []byte("v2"), 0o644))
	select {
	case <-changed:
		t.Fatal("change reported for another file")
	case <-time.After(2 * watchDebounce):
	}

	// Several quick writes collapse into one notification.
	for _, v := range []string{"v2", "v3", "v4"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "car.glb"), []byte(v), 0o644))
	}
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
	select {
	case <-changed:
		t.Fatal("writes were not debounced")
	case <-time.After(2 * watchDebounce):
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	l := NewLoader(t.TempDir(), 1, quietLogger())
	defer l.Close()

	err := l.Watch(waitCtx(t), "missing/car.glb", func() {})
	assert.Error(t, err)
}
