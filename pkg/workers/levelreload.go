package workers

import (
	"context"
	"path/filepath"

	"github.com/cbodonnell/brawler/pkg/level"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/cbodonnell/brawler/pkg/queue"
)

type LevelReloadWorker struct {
	changedFiles <-chan string
	levelQueue   queue.Queue
	path         string
	load         func(path string) (*level.Level, error)
}

type NewLevelReloadWorkerOptions struct {
	// ChangedFiles receives the paths of level files that changed on disk.
	ChangedFiles <-chan string
	// LevelQueue receives every successfully reloaded *level.Level.
	LevelQueue queue.Queue
	// Path is the level file being played. Changes to other files are ignored.
	Path string
	// Load reads a level file. Defaults to level.LoadFile.
	Load func(path string) (*level.Level, error)
}

// NewLevelReloadWorker creates a new LevelReloadWorker.
// The worker parses changed level files off the frame loop and
// writes valid levels to a queue for the game loop to pick up.
func NewLevelReloadWorker(opts NewLevelReloadWorkerOptions) *LevelReloadWorker {
	load := opts.Load
	if load == nil {
		load = level.LoadFile
	}
	return &LevelReloadWorker{
		changedFiles: opts.ChangedFiles,
		levelQueue:   opts.LevelQueue,
		path:         filepath.Clean(opts.Path),
		load:         load,
	}
}

func (w *LevelReloadWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-w.changedFiles:
			if !ok {
				return
			}
			w.reload(path)
		}
	}
}

func (w *LevelReloadWorker) reload(path string) {
	if filepath.Clean(path) != w.path {
		log.Trace("Ignoring change to %s", path)
		return
	}

	l, err := w.load(path)
	if err != nil {
		// keep playing the last good level
		log.Warn("Failed to reload level: %v", err)
		return
	}

	if err := w.levelQueue.Enqueue(l); err != nil {
		log.Error("Failed to queue reloaded level %q: %v", l.Name, err)
		return
	}
	log.Info("Reloaded level %q from %s, it applies on the next restart", l.Name, path)
}
