package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
)

type InMemorySnapshotStore struct {
	lock     sync.RWMutex
	snapshot gametypes.Snapshot
	frame    uint64
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{}
}

func (m *InMemorySnapshotStore) Get(ctx context.Context) (*gametypes.Snapshot, uint64, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	copy := m.snapshot.Copy()
	return &copy, m.frame, nil
}

func (m *InMemorySnapshotStore) Set(ctx context.Context, snapshot *gametypes.Snapshot) error {
	if snapshot == nil {
		return fmt.Errorf("snapshot is nil")
	}

	// copy outside the lock, the frame loop owns the argument
	copy := snapshot.Copy()

	m.lock.Lock()
	defer m.lock.Unlock()
	m.snapshot = copy
	m.frame++
	return nil
}
