package vfs

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/vterm/vterm/internal/state"
)

// Snapshot is the durable representation of the whole filesystem.
type Snapshot struct {
	CurrentPath string `json:"current_path"`
	Root        *Node  `json:"root"`
}

func loadSnapshot(store state.Store) (*Snapshot, bool, error) {
	if store == nil {
		return nil, false, nil
	}
	data, found, err := store.Load()
	if err != nil || !found {
		return nil, false, err
	}
	var snap Snapshot
	if err := sonic.Unmarshal(data, &snap); err != nil {
		return nil, false, fmt.Errorf("corrupt filesystem snapshot: %w", err)
	}
	if snap.Root == nil || !snap.Root.IsDirectory {
		return nil, false, fmt.Errorf("corrupt filesystem snapshot: missing root directory")
	}
	snap.Root.normalize()
	return &snap, true, nil
}

func saveSnapshot(store state.Store, snap *Snapshot) error {
	if store == nil {
		return nil
	}
	data, err := sonic.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return store.Save(data)
}
