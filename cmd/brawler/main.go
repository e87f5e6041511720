package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/cbodonnell/brawler/client/game"
	"github.com/cbodonnell/brawler/client/scenes"
	"github.com/cbodonnell/brawler/pkg/api"
	gamepkg "github.com/cbodonnell/brawler/pkg/game"
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/level"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/cbodonnell/brawler/pkg/queue"
	"github.com/cbodonnell/brawler/pkg/state"
	"github.com/cbodonnell/brawler/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// EventQueueSize bounds the events buffered between two frames.
	EventQueueSize = 1024
	// LevelQueueSize bounds the reloaded levels waiting for the frame loop.
	LevelQueueSize = 4
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	levelFile := flag.String("level", "", "path to a level YAML file (defaults to the bundled street level)")
	watch := flag.Bool("watch", false, "reload the level file when it changes on disk")
	inspectorPort := flag.Int("inspector-port", 0, "port of the debug inspector, 0 to disable")
	seed := flag.Int64("seed", 0, "seed for enemy attack rolls, 0 for a random seed")
	debug := flag.Bool("debug", false, "show the debug overlay and hurtboxes")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lvl, levelPath, err := loadLevel(*levelFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level: %v", err))
	}
	log.Info("Loaded level %q", lvl.Name)

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Info("Using seed %d", *seed)

	eventQueue := queue.NewInMemoryQueue(EventQueueSize)
	world, err := gamepkg.NewWorld(gamepkg.NewWorldOptions{
		Level:      lvl,
		Random:     rand.New(rand.NewSource(*seed)),
		EventQueue: eventQueue,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create world: %v", err))
	}

	var store state.SnapshotStore
	if *inspectorPort > 0 {
		store = state.NewInMemorySnapshotStore()
		server := api.NewAPIServer(api.NewAPIServerOptions{
			Port:  *inspectorPort,
			Store: store,
		})
		go server.Start()
		defer func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer stopCancel()
			if err := server.Stop(stopCtx); err != nil {
				log.Error("Failed to stop inspector: %v", err)
			}
		}()
	}

	var levelQueue queue.Queue
	if *watch {
		levelQueue = queue.NewInMemoryQueue(LevelQueueSize)
		watcher, err := level.NewWatcher(filepath.Dir(levelPath))
		if err != nil {
			log.Warn("Level hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
			go logWatcherErrors(watcher)
			worker := workers.NewLevelReloadWorker(workers.NewLevelReloadWorkerOptions{
				ChangedFiles: watcher.Events,
				LevelQueue:   levelQueue,
				Path:         levelPath,
			})
			go worker.Start(ctx)
			log.Info("Watching %s for changes", levelPath)
		}
	}

	scene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		World:      world,
		EventQueue: eventQueue,
		LevelQueue: levelQueue,
		Store:      store,
		Debug:      *debug,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game scene: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug: *debug,
		Scene: scene,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(int(constants.ViewportWidth), int(constants.ViewportHeight))
	ebiten.SetWindowTitle("Brawler")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Game exited with error: %v", err)
	}
}

// loadLevel returns the level to play and the path to watch for it.
func loadLevel(path string) (*level.Level, string, error) {
	if path != "" {
		l, err := level.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return l, path, nil
	}
	l, err := level.Default()
	if err != nil {
		return nil, "", err
	}
	return l, filepath.Join("levels", level.DefaultLevel), nil
}

func logWatcherErrors(watcher *level.Watcher) {
	for err := range watcher.Errors {
		log.Warn("Level watcher error: %v", err)
	}
}
