package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vterm/vterm/internal/state"
)

func TestSnapshotRoundTrip(t *testing.T) {
	store := &state.MemStore{}

	fs := New(store, nil)
	require.True(t, fs.Mkdir("/home/user/docs"))
	require.True(t, fs.Touch("/home/user/docs/a.txt", "alpha"))
	require.True(t, fs.WriteFile("/home/user/docs/a.txt", "!", true))
	require.True(t, fs.ChangeDirectory("/home/user/docs"))

	reloaded := New(store, nil)
	assert.Equal(t, "/home/user/docs", reloaded.CurrentPath())

	content, ok := reloaded.ReadFile("/home/user/docs/a.txt")
	require.True(t, ok)
	assert.Equal(t, "alpha!", content)

	var compare func(a, b *Node)
	compare = func(a, b *Node) {
		assert.Equal(t, a.Name, b.Name)
		assert.Equal(t, a.IsDirectory, b.IsDirectory)
		assert.Equal(t, a.Content, b.Content)
		assert.Equal(t, a.Size, b.Size)
		require.Equal(t, len(a.Children), len(b.Children))
		for name, child := range a.Children {
			other, ok := b.Children[name]
			require.True(t, ok, name)
			compare(child, other)
		}
	}
	compare(fs.root, reloaded.root)
}

func TestWriteThroughPerMutation(t *testing.T) {
	store := &state.MemStore{}
	fs := New(store, nil)
	baseline := store.Saves()

	require.True(t, fs.Mkdir("/tmp/a"))
	assert.Equal(t, baseline+1, store.Saves())

	require.True(t, fs.Touch("/tmp/a/f.txt", "x"))
	assert.Equal(t, baseline+2, store.Saves())

	require.True(t, fs.WriteFile("/tmp/a/f.txt", "y", false))
	assert.Equal(t, baseline+3, store.Saves())

	require.True(t, fs.ChangeDirectory("/tmp/a"))
	assert.Equal(t, baseline+4, store.Saves())

	require.True(t, fs.Remove("/tmp/a/f.txt"))
	assert.Equal(t, baseline+5, store.Saves())

	// Failed operations do not persist.
	require.False(t, fs.Mkdir("/tmp/a"))
	assert.Equal(t, baseline+5, store.Saves())
}

func TestCorruptSnapshotFallsBack(t *testing.T) {
	store := &state.MemStore{}
	require.NoError(t, store.Save([]byte("{not json")))

	fs := New(store, nil)
	assert.Equal(t, "/home/user", fs.CurrentPath())
	// Fresh in-memory tree, degraded but alive.
	assert.True(t, fs.IsDirectory("/"))
	assert.Empty(t, fs.ListDirectory("/"))
}

func TestMissingSnapshotSeedsLayout(t *testing.T) {
	store := &state.MemStore{}
	fs := New(store, nil)

	assert.True(t, fs.IsDirectory("/usr/bin"))
	assert.Equal(t, "/home/user", fs.CurrentPath())
	// The seeded layout was written through.
	assert.NotEmpty(t, store.Bytes())
}

func TestSnapshotNormalizesNodes(t *testing.T) {
	raw := `{
	  "current_path": "/home",
	  "root": {
	    "name": "",
	    "is_directory": true,
	    "children": {
	      "home": {"name": "home", "is_directory": true},
	      "f.txt": {"name": "f.txt", "content": "abc", "size": 99}
	    }
	  }
	}`
	store := &state.MemStore{}
	require.NoError(t, store.Save([]byte(raw)))

	fs := New(store, nil)
	assert.Equal(t, "/home", fs.CurrentPath())

	// Directory without a children key still gets a usable map.
	assert.True(t, fs.Mkdir("/home/user"))

	// File size is recomputed from content.
	entries := fs.ListDirectory("/")
	for _, entry := range entries {
		if entry.Name == "f.txt" {
			assert.Equal(t, 3, entry.Size)
		}
	}
}
