package state

import (
	"context"

	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
)

// SnapshotStore provides shared access to the latest published snapshot.
// Implementations must be thread-safe.
type SnapshotStore interface {
	// Get returns a copy of the latest snapshot and the frame it was published on.
	Get(ctx context.Context) (*gametypes.Snapshot, uint64, error)
	// Set publishes a snapshot.
	Set(ctx context.Context, snapshot *gametypes.Snapshot) error
}
