package scenes

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/brawler/client/input"
	"github.com/cbodonnell/brawler/client/objects"
	"github.com/cbodonnell/brawler/pkg/game"
	"github.com/cbodonnell/brawler/pkg/game/constants"
	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/level"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/cbodonnell/brawler/pkg/queue"
	"github.com/cbodonnell/brawler/pkg/state"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DamageTextTTL is how long damage and heal numbers float above an actor.
	DamageTextTTL = 600 // ms
)

var (
	enemyDamageColor  = color.RGBA{R: 255, G: 230, B: 80, A: 255}
	playerDamageColor = color.RGBA{R: 255, G: 70, B: 70, A: 255}
	healColor         = color.RGBA{R: 80, G: 230, B: 90, A: 255}
)

// Draw order of the scene layers.
const (
	zIndexStreet = iota
	zIndexPickups
	zIndexActors
	zIndexEffects
	zIndexTextEffects
	zIndexHUD
	zIndexOverlay
)

type GameScene struct {
	*BaseScene

	// world is the simulation being played.
	world *game.World
	// eventQueue receives gameplay events from the world.
	eventQueue queue.Queue
	// levelQueue receives levels reloaded from disk.
	levelQueue queue.Queue
	// store publishes the latest snapshot to the inspector. Optional.
	store state.SnapshotStore
	// lastUpdate is the wall-clock time of the previous frame.
	lastUpdate time.Time
	// snapshot is the render data of the current frame.
	snapshot gametypes.Snapshot

	street      *objects.StreetObject
	pickups     *objects.PickupsObject
	actors      *objects.ActorsObject
	effects     *objects.EffectsObject
	textEffects *objects.BaseObject
	hud         *objects.HUDObject
	overlay     *objects.TextOverlayObject
}

type NewGameSceneOptions struct {
	// World is the simulation to play. Required.
	World *game.World
	// EventQueue is the queue the world emits events to. Required.
	EventQueue queue.Queue
	// LevelQueue delivers hot reloaded levels. Optional.
	LevelQueue queue.Queue
	// Store receives a copy of every snapshot. Optional.
	Store state.SnapshotStore
	// Debug draws actor hurtboxes.
	Debug bool
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	if opts.World == nil {
		return nil, fmt.Errorf("world is required")
	}
	if opts.EventQueue == nil {
		return nil, fmt.Errorf("event queue is required")
	}

	g := &GameScene{
		BaseScene:   NewBaseScene(objects.NewSortedZIndexObject("game-root", nil)),
		world:       opts.World,
		eventQueue:  opts.EventQueue,
		levelQueue:  opts.LevelQueue,
		store:       opts.Store,
		street:      objects.NewStreetObject("street"),
		pickups:     objects.NewPickupsObject("pickups"),
		actors:      objects.NewActorsObject("actors", opts.Debug),
		effects:     objects.NewEffectsObject("effects"),
		textEffects: objects.NewBaseObject("text-effects", nil),
		hud:         objects.NewHUDObject("hud"),
		overlay:     objects.NewTextOverlayObject("overlay"),
	}

	layers := []struct {
		zIndex int
		object objects.GameObject
	}{
		{zIndexStreet, g.street},
		{zIndexPickups, g.pickups},
		{zIndexActors, g.actors},
		{zIndexEffects, g.effects},
		{zIndexTextEffects, g.textEffects},
		{zIndexHUD, g.hud},
		{zIndexOverlay, g.overlay},
	}
	for _, layer := range layers {
		layer.object.SetZIndex(layer.zIndex)
		if err := g.Root.AddChild(layer.object.GetID(), layer.object); err != nil {
			return nil, fmt.Errorf("failed to add %s layer: %v", layer.object.GetID(), err)
		}
	}

	if err := g.render(); err != nil {
		return nil, fmt.Errorf("failed to render initial snapshot: %v", err)
	}

	return g, nil
}

func (g *GameScene) Update() error {
	if err := g.applyReloadedLevels(); err != nil {
		return fmt.Errorf("failed to apply reloaded levels: %v", err)
	}

	g.world.Step(g.frameDelta(), input.ReadInputState())

	if err := g.render(); err != nil {
		return fmt.Errorf("failed to render snapshot: %v", err)
	}

	if err := g.processEvents(); err != nil {
		return fmt.Errorf("failed to process events: %v", err)
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

// frameDelta returns the wall-clock time since the previous frame, capped so a stalled
// window does not move everything at once.
func (g *GameScene) frameDelta() float64 {
	now := time.Now()
	defer func() { g.lastUpdate = now }()

	if g.lastUpdate.IsZero() {
		return 1.0 / float64(ebiten.TPS())
	}
	deltaTime := now.Sub(g.lastUpdate).Seconds()
	if deltaTime > constants.MaxFrameDelta {
		deltaTime = constants.MaxFrameDelta
	}
	return deltaTime
}

func (g *GameScene) applyReloadedLevels() error {
	if g.levelQueue == nil {
		return nil
	}
	items, err := g.levelQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read level queue: %v", err)
	}
	for _, item := range items {
		l, ok := item.(*level.Level)
		if !ok {
			log.Error("Failed to cast level queue item to *level.Level")
			continue
		}
		g.world.SetLevel(l)
	}
	return nil
}

// render takes the world snapshot, pushes it to the layers and publishes it.
func (g *GameScene) render() error {
	g.snapshot = g.world.Snapshot()

	g.street.SetSegments(g.snapshot.Segments)
	g.pickups.SetPickups(g.snapshot.Pickups)
	if err := g.actors.Sync(g.snapshot.Actors); err != nil {
		return fmt.Errorf("failed to sync actors: %v", err)
	}
	g.effects.SetEffects(g.snapshot.Effects)
	g.hud.SetUIState(g.snapshot.UI)
	g.updateOverlay(g.snapshot.UI)

	if g.store != nil {
		if err := g.store.Set(context.Background(), &g.snapshot); err != nil {
			log.Error("Failed to publish snapshot: %v", err)
		}
	}
	return nil
}

func (g *GameScene) updateOverlay(ui gametypes.UIState) {
	switch {
	case ui.Phase == gametypes.PhaseGameOver:
		g.overlay.SetText("Game Over", "Press R or Enter to restart")
	case ui.Phase == gametypes.PhaseStageClear:
		g.overlay.SetText("Stage Clear", "Press R or Enter to play again")
	case ui.Paused:
		g.overlay.SetText("Paused", "Press P or Escape to resume")
	default:
		g.overlay.SetText("", "")
	}
}

func (g *GameScene) processEvents() error {
	events, err := g.eventQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read event queue: %v", err)
	}

	for _, item := range events {
		switch event := item.(type) {
		case *gametypes.EnemyHitEvent:
			if err := g.addTextOverEnemy(event.EnemyID, fmt.Sprintf("-%d", event.Damage), enemyDamageColor); err != nil {
				log.Error("Failed to add enemy hit text: %v", err)
			}
		case *gametypes.EnemyDefeatedEvent:
			log.Debug("Enemy %d (%s) defeated", event.EnemyID, event.CharacterType)
		case *gametypes.PlayerHitEvent:
			if err := g.addTextOverPlayer(fmt.Sprintf("-%d", event.Damage), playerDamageColor); err != nil {
				log.Error("Failed to add player hit text: %v", err)
			}
		case *gametypes.PickupCollectedEvent:
			if event.Healed == 0 {
				continue
			}
			if err := g.addTextOverPlayer(fmt.Sprintf("+%d", event.Healed), healColor); err != nil {
				log.Error("Failed to add heal text: %v", err)
			}
		case *gametypes.RestartEvent:
			if err := g.clearTextEffects(); err != nil {
				log.Error("Failed to clear text effects: %v", err)
			}
		case *gametypes.PhaseChangedEvent, *gametypes.PauseToggledEvent:
			log.Trace("Event %T: %+v", event, event)
		default:
			log.Warn("Unknown event type %T", item)
		}
	}

	return nil
}

func (g *GameScene) addTextOverEnemy(enemyID uint32, text string, clr color.Color) error {
	for _, a := range g.snapshot.Actors {
		if a.Kind == gametypes.ActorKindPlayer || a.ID != enemyID {
			continue
		}
		return g.addTextEffect(a, text, clr)
	}
	return nil
}

func (g *GameScene) addTextOverPlayer(text string, clr color.Color) error {
	for _, a := range g.snapshot.Actors {
		if a.Kind != gametypes.ActorKindPlayer {
			continue
		}
		return g.addTextEffect(a, text, clr)
	}
	return nil
}

func (g *GameScene) addTextEffect(a gametypes.ActorView, text string, clr color.Color) error {
	id := uuid.NewString()
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   text,
		X:      a.X + a.Width/2,
		Y:      a.Y - 30,
		Color:  clr,
		Scroll: true,
		TTL:    DamageTextTTL,
	})
	return g.textEffects.AddChild(id, effect)
}

func (g *GameScene) clearTextEffects() error {
	for _, child := range append([]objects.GameObject(nil), g.textEffects.GetChildren()...) {
		if err := g.textEffects.RemoveChild(child.GetID()); err != nil {
			return err
		}
	}
	return nil
}
