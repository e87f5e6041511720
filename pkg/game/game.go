package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/kinematic"
	"github.com/cbodonnell/brawler/pkg/level"
	"github.com/cbodonnell/brawler/pkg/log"
	"github.com/cbodonnell/brawler/pkg/queue"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// World is one play session. It owns every piece of mutable simulation state and is
// only ever touched from the frame loop.
type World struct {
	level        *level.Level
	pendingLevel *level.Level
	rng          types.RandomSource
	eventQueue   queue.Queue
	newEffectID  func() string

	player         *types.Player
	enemies        []*types.Enemy
	pickups        []*types.Pickup
	effects        []*types.Effect
	cameraX        float64
	phase          types.Phase
	paused         bool
	previousInput  types.InputState
	collisionSpace *resolv.Space
}

// NewWorldOptions contains options for creating a new World.
type NewWorldOptions struct {
	// Level is the layout to play. Required.
	Level *level.Level
	// Random drives enemy attack rolls. Defaults to a time-seeded source.
	Random types.RandomSource
	// EventQueue receives gameplay events. Optional.
	EventQueue queue.Queue
	// NewEffectID generates hit effect IDs. Defaults to random UUIDs.
	NewEffectID func() string
}

func NewWorld(opts NewWorldOptions) (*World, error) {
	if opts.Level == nil {
		return nil, fmt.Errorf("level is required")
	}

	rng := opts.Random
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	newEffectID := opts.NewEffectID
	if newEffectID == nil {
		newEffectID = uuid.NewString
	}

	w := &World{
		level:       opts.Level,
		rng:         rng,
		eventQueue:  opts.EventQueue,
		newEffectID: newEffectID,
	}
	w.reset()
	log.Debug("World created for level %q with %d enemies and %d pickups", w.level.Name, len(w.enemies), len(w.pickups))

	return w, nil
}

// Step advances the simulation by deltaTime seconds using the commands held this frame.
// Edge-triggered commands are detected against the previous call's input.
func (w *World) Step(deltaTime float64, input types.InputState) {
	previous := w.previousInput
	w.previousInput = input

	if deltaTime < 0 {
		deltaTime = 0
	}

	if input.Pressed(previous, types.CommandRestart) && w.phase.IsTerminal() {
		w.Restart()
		return
	}

	if input.Pressed(previous, types.CommandPause) && w.phase == types.PhasePlaying {
		w.paused = !w.paused
		log.Debug("Paused: %t", w.paused)
		w.emit(&types.PauseToggledEvent{Paused: w.paused})
	}
	if w.paused {
		return
	}

	if w.checkTerminal() {
		w.settleTimers(deltaTime)
		return
	}

	w.updatePlayer(deltaTime, input, previous)
	w.expireEffects(deltaTime)
	w.updateEnemies(deltaTime)
	w.collectPickups()
}

// updatePlayer moves the player, starts and resolves punches, and advances defeated enemies.
func (w *World) updatePlayer(deltaTime float64, input types.InputState, previous types.InputState) {
	p := w.player

	w.cameraX = CameraOffset(p.Position.X, w.level.Width())

	// later commands win: right over left, down over up
	vx, vy := 0.0, 0.0
	if input.Held(types.CommandMoveLeft) {
		vx = -p.Speed
	}
	if input.Held(types.CommandMoveRight) {
		vx = p.Speed
	}
	if input.Held(types.CommandMoveUp) {
		vy = -p.Speed
	}
	if input.Held(types.CommandMoveDown) {
		vy = p.Speed
	}
	p.Velocity = kinematic.Vector{X: vx, Y: vy}

	if input.Pressed(previous, types.CommandAttack) && p.PunchTimer <= 0 {
		p.PunchTimer = constants.PlayerPunchDuration
		p.PunchHasHit = false
	}

	isMoving := vx != 0 || vy != 0
	if p.PunchTimer > 0 {
		p.Action = types.PlayerActionPunch
	} else if isMoving {
		p.Action = types.PlayerActionWalk
	} else {
		p.Action = types.PlayerActionIdle
	}

	if vx < 0 {
		p.Facing = types.FacingLeft
	} else if vx > 0 {
		p.Facing = types.FacingRight
	}

	p.Position = p.Position.Add(kinematic.Displacement(p.Velocity, deltaTime))
	p.ClampToLevel(w.level.Width())

	// a swing is resolved on its first tick, before its timer can run out
	if p.Action == types.PlayerActionPunch && !p.PunchHasHit {
		p.PunchHasHit = true
		w.applyHits(ResolvePlayerPunch(p, w.punchCandidates()))
	}

	if p.PunchTimer > 0 {
		p.PunchTimer -= deltaTime
		if p.PunchTimer <= 0 {
			p.PunchTimer = 0
			p.Action = types.PlayerActionIdle
		}
	}

	w.advanceDefeated(deltaTime)
}

// advanceDefeated runs defeated flashes down and retires enemies whose flash has finished.
func (w *World) advanceDefeated(deltaTime float64) {
	for _, e := range w.enemies {
		if !e.AdvanceDefeated(deltaTime) {
			continue
		}
		log.Debug("Enemy %d (%s) removed", e.ID, e.CharacterType)
		if e.Object != nil {
			w.collisionSpace.Remove(e.Object)
		}
	}
}

// expireEffects runs hit effect timers down and drops expired effects.
func (w *World) expireEffects(deltaTime float64) {
	active := w.effects[:0]
	for _, effect := range w.effects {
		if effect.Advance(deltaTime) {
			continue
		}
		active = append(active, effect)
	}
	for i := len(active); i < len(w.effects); i++ {
		w.effects[i] = nil
	}
	w.effects = active
}

// collectPickups heals the player for every uncollected pickup at their feet.
func (w *World) collectPickups() {
	p := w.player
	center := p.Center()
	feet := p.Bottom()
	for _, pickup := range w.pickups {
		if pickup.Collected {
			continue
		}
		pc := pickup.Center()
		if abs(center.X-pc.X) >= constants.PickupReachX || abs(feet-pc.Y) >= constants.PickupReachY {
			continue
		}
		pickup.Collected = true
		healed := p.Heal(int(constants.PickupHealFraction * float64(p.MaxHealth)))
		log.Debug("Pickup %d collected, healed %d", pickup.ID, healed)
		w.emit(&types.PickupCollectedEvent{PickupID: pickup.ID, Healed: healed})
	}
}

// emit enqueues an event if an event queue is configured.
func (w *World) emit(event interface{}) {
	if w.eventQueue == nil {
		return
	}
	if err := w.eventQueue.Enqueue(event); err != nil {
		log.Warn("Dropped event %T: %v", event, err)
	}
}

// SetLevel queues a level to be used from the next restart on.
func (w *World) SetLevel(l *level.Level) {
	if l == nil {
		return
	}
	w.pendingLevel = l
}

// Level returns the level currently being played.
func (w *World) Level() *level.Level {
	return w.level
}

// Phase returns the current game phase.
func (w *World) Phase() types.Phase {
	return w.phase
}

// Paused returns true while the simulation is on hold.
func (w *World) Paused() bool {
	return w.paused
}

// CameraX returns the current horizontal camera offset.
func (w *World) CameraX() float64 {
	return w.cameraX
}

// Player returns a copy of the player state.
func (w *World) Player() *types.Player {
	return w.player.Copy()
}

// Enemies returns copies of all enemy states, including dead ones.
func (w *World) Enemies() []*types.Enemy {
	enemies := make([]*types.Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		enemies = append(enemies, e.Copy())
	}
	return enemies
}

// Pickups returns copies of all pickups.
func (w *World) Pickups() []types.Pickup {
	pickups := make([]types.Pickup, 0, len(w.pickups))
	for _, p := range w.pickups {
		pickups = append(pickups, *p)
	}
	return pickups
}

// Effects returns copies of the active hit effects.
func (w *World) Effects() []types.Effect {
	effects := make([]types.Effect, 0, len(w.effects))
	for _, e := range w.effects {
		effects = append(effects, *e)
	}
	return effects
}
