package environ

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vterm/vterm/internal/state"
)

func TestDefaults(t *testing.T) {
	env := New(nil, 0, nil)

	for _, name := range []string{"PATH", "HOME", "USER", "SHELL", "PS1"} {
		_, ok := env.Get(name)
		assert.True(t, ok, name)
	}
	user, _ := env.Get("USER")
	assert.Equal(t, "user", user)
	assert.Empty(t, env.History())
}

func TestSetGet(t *testing.T) {
	env := New(nil, 0, nil)

	env.Set("EDITOR", "vterm")
	value, ok := env.Get("EDITOR")
	require.True(t, ok)
	assert.Equal(t, "vterm", value)

	env.Set("EDITOR", "other")
	value, _ = env.Get("EDITOR")
	assert.Equal(t, "other", value)

	_, ok = env.Get("UNBOUND")
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	env := New(nil, 0, nil)
	env.Set("USER", "alice")
	env.Set("HOME", "/home/alice")

	tests := []struct {
		in   string
		want string
	}{
		{"$USER", "alice"},
		{"hello $USER!", "hello alice!"},
		{"$HOME/docs", "/home/alice/docs"},
		{"$UNKNOWN", "$UNKNOWN"},
		{"$USER$USER", "alicealice"},
		{"plain", "plain"},
		{"$1notident", "$1notident"},
		{"price $", "price $"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, env.Expand(tt.in), tt.in)
	}
}

func TestHistoryEviction(t *testing.T) {
	env := New(nil, 5, nil)

	for i := 1; i <= 8; i++ {
		env.RecordHistory(fmt.Sprintf("cmd%d", i))
	}

	history := env.History()
	require.Len(t, history, 5)
	// Oldest evicted first, most recent last.
	assert.Equal(t, "cmd4", history[0])
	assert.Equal(t, "cmd8", history[4])
}

func TestHistorySkipsBlankLines(t *testing.T) {
	env := New(nil, 0, nil)

	env.RecordHistory("")
	env.RecordHistory("   ")
	env.RecordHistory("\t")
	assert.Empty(t, env.History())

	env.RecordHistory("ls")
	assert.Len(t, env.History(), 1)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := &state.MemStore{}

	env := New(store, 0, nil)
	env.Set("PROJECT", "vterm")
	env.RecordHistory("echo hi")
	env.RecordHistory("ls /tmp")

	reloaded := New(store, 0, nil)
	value, ok := reloaded.Get("PROJECT")
	require.True(t, ok)
	assert.Equal(t, "vterm", value)
	assert.Equal(t, []string{"echo hi", "ls /tmp"}, reloaded.History())
}

func TestCorruptSnapshotTolerated(t *testing.T) {
	store := &state.MemStore{}
	require.NoError(t, store.Save([]byte("not json at all")))

	env := New(store, 0, nil)
	// Defaults survive; process continues.
	_, ok := env.Get("PATH")
	assert.True(t, ok)
	assert.Empty(t, env.History())
}

func TestLoadedHistoryRespectsCap(t *testing.T) {
	store := &state.MemStore{}
	env := New(store, 10, nil)
	for i := 0; i < 10; i++ {
		env.RecordHistory(fmt.Sprintf("cmd%d", i))
	}

	// Reload with a smaller cap keeps only the most recent entries.
	reloaded := New(store, 3, nil)
	history := reloaded.History()
	require.Len(t, history, 3)
	assert.Equal(t, "cmd9", history[2])
}
