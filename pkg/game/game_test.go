package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/kinematic"
	"github.com/cbodonnell/brawler/pkg/level"
	"github.com/cbodonnell/brawler/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRandom always draws the same value. 0 makes every attack roll succeed, 1 makes every roll fail.
type fixedRandom float64

func (f fixedRandom) Float64() float64 {
	return float64(f)
}

// farBoss keeps the stage from clearing without interfering with the player.
var farBoss = types.EnemyTemplate{CharacterType: types.CharacterTypeBoss, X: 4700, Y: 465}

func testLevel(playerStart kinematic.Vector, enemies []types.EnemyTemplate, pickups []types.PickupTemplate) *level.Level {
	return &level.Level{
		Name:         "test",
		Segments:     4,
		SegmentWidth: constants.SegmentWidth,
		PlayerStart:  playerStart,
		Enemies:      enemies,
		Pickups:      pickups,
	}
}

func newTestWorld(t *testing.T, l *level.Level, rng types.RandomSource) (*World, *queue.InMemoryQueue) {
	t.Helper()
	events := queue.NewInMemoryQueue(1024)
	id := 0
	w, err := NewWorld(NewWorldOptions{
		Level:      l,
		Random:     rng,
		EventQueue: events,
		NewEffectID: func() string {
			id++
			return fmt.Sprintf("effect-%d", id)
		},
	})
	require.NoError(t, err)
	return w, events
}

func drainEvents(t *testing.T, q queue.Queue) []interface{} {
	t.Helper()
	events, err := q.ReadAllMessages()
	require.NoError(t, err)
	return events
}

func countEvents[T any](events []interface{}) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

var (
	noInput   = types.NewInputState()
	moveRight = types.NewInputState(types.CommandMoveRight)
	attack    = types.NewInputState(types.CommandAttack)
	pause     = types.NewInputState(types.CommandPause)
	restart   = types.NewInputState(types.CommandRestart)
)

func TestNewWorld_RequiresLevel(t *testing.T) {
	w, err := NewWorld(NewWorldOptions{})
	assert.Error(t, err)
	assert.Nil(t, w)
}

func TestCameraOffset(t *testing.T) {
	levelWidth := 4 * constants.SegmentWidth
	tests := []struct {
		name       string
		playerX    float64
		levelWidth float64
		want       float64
	}{
		{name: "level start", playerX: 0, levelWidth: levelWidth, want: 0},
		{name: "before half viewport", playerX: 500, levelWidth: levelWidth, want: 0},
		{name: "centred", playerX: 1000, levelWidth: levelWidth, want: 360},
		{name: "near level end", playerX: 5000, levelWidth: levelWidth, want: levelWidth - constants.ViewportWidth},
		{name: "level end", playerX: levelWidth, levelWidth: levelWidth, want: levelWidth - constants.ViewportWidth},
		{name: "single screen level", playerX: 900, levelWidth: constants.ViewportWidth, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CameraOffset(tt.playerX, tt.levelWidth)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, tt.levelWidth-constants.ViewportWidth+0.0)
		})
	}
}

func TestWorld_Step_MoveRight(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 0, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(1.0, moveRight)

	p := w.Player()
	assert.InDelta(t, 290.0, p.Position.X, 1e-9)
	assert.Equal(t, 480.0, p.Position.Y)
	assert.Equal(t, types.PlayerActionWalk, p.Action)
	assert.Equal(t, types.FacingRight, p.Facing)
}

func TestWorld_Step_FacingRetainedWithoutHorizontalInput(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 640, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(0.1, types.NewInputState(types.CommandMoveLeft))
	assert.Equal(t, types.FacingLeft, w.Player().Facing)

	w.Step(0.1, types.NewInputState(types.CommandMoveDown))
	assert.Equal(t, types.FacingLeft, w.Player().Facing)

	w.Step(0.1, noInput)
	assert.Equal(t, types.FacingLeft, w.Player().Facing)
	assert.Equal(t, types.PlayerActionIdle, w.Player().Action)
}

func TestWorld_Step_DiagonalIsNotNormalized(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 640, Y: 458}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(0.1, types.NewInputState(types.CommandMoveRight, types.CommandMoveDown))

	p := w.Player()
	assert.InDelta(t, 669.0, p.Position.X, 1e-9)
	assert.InDelta(t, 487.0, p.Position.Y, 1e-9)
}

func TestWorld_Step_PlayerClampedToLevel(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 10, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(1.0, types.NewInputState(types.CommandMoveLeft, types.CommandMoveUp))
	p := w.Player()
	assert.Equal(t, 0.0, p.Position.X)
	assert.Equal(t, constants.LaneTop, p.Position.Y)

	w.Step(1.0, types.NewInputState(types.CommandMoveDown))
	p = w.Player()
	assert.Equal(t, constants.ViewportHeight-constants.PlayerHeight-constants.GroundMargin, p.Position.Y)
}

func TestWorld_Step_PickupHeals(t *testing.T) {
	// pickup centre sits at the player's feet: (687, 686)
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{farBoss},
		[]types.PickupTemplate{{X: 657, Y: 666}},
	)
	w, events := newTestWorld(t, l, fixedRandom(1))

	w.player.TakeDamage(20)
	assert.Equal(t, 80, w.Player().Health)

	w.Step(0.016, noInput)

	assert.Equal(t, 100, w.Player().Health)
	pickups := w.Pickups()
	require.Len(t, pickups, 1)
	assert.True(t, pickups[0].Collected)

	collected := drainEvents(t, events)
	require.Len(t, collected, 1)
	assert.Equal(t, &types.PickupCollectedEvent{PickupID: 1, Healed: 20}, collected[0])

	// a collected pickup never heals again
	w.player.TakeDamage(30)
	w.Step(0.016, noInput)
	assert.Equal(t, 70, w.Player().Health)
}

func TestWorld_Step_HealthStaysInRange(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 640, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		amount := r.Intn(60)
		if r.Intn(2) == 0 {
			w.player.TakeDamage(amount)
		} else {
			w.player.Heal(amount)
		}
		assert.GreaterOrEqual(t, w.player.Health, 0)
		assert.LessOrEqual(t, w.player.Health, w.player.MaxHealth)
	}
}

func TestResolvePlayerPunch(t *testing.T) {
	// player centre is (687, 583)
	player := types.NewPlayer(640, 480)

	defeated := types.NewEnemy(9, types.CharacterTypeThug, 700, 480)
	defeated.TakeDamage(1)

	tests := []struct {
		name    string
		facing  types.Facing
		enemies []*types.Enemy
		want    []types.Hit
	}{
		{
			name:    "enemy in front",
			facing:  types.FacingRight,
			enemies: []*types.Enemy{types.NewEnemy(1, types.CharacterTypeThug, 740, 480)},
			want:    []types.Hit{{EnemyID: 1, Damage: 1}},
		},
		{
			name:    "enemy behind",
			facing:  types.FacingLeft,
			enemies: []*types.Enemy{types.NewEnemy(1, types.CharacterTypeThug, 740, 480)},
			want:    nil,
		},
		{
			name:    "facing left",
			facing:  types.FacingLeft,
			enemies: []*types.Enemy{types.NewEnemy(1, types.CharacterTypeThug, 540, 480)},
			want:    []types.Hit{{EnemyID: 1, Damage: 1}},
		},
		{
			name:    "edge of reach",
			facing:  types.FacingRight,
			enemies: []*types.Enemy{types.NewEnemy(1, types.CharacterTypeThug, 787, 480)},
			want:    []types.Hit{{EnemyID: 1, Damage: 1}},
		},
		{
			name:    "just out of reach",
			facing:  types.FacingRight,
			enemies: []*types.Enemy{types.NewEnemy(1, types.CharacterTypeThug, 788, 480)},
			want:    nil,
		},
		{
			name:    "too far up the street",
			facing:  types.FacingRight,
			enemies: []*types.Enemy{types.NewEnemy(1, types.CharacterTypeThug, 740, 300)},
			want:    nil,
		},
		{
			name:    "defeated enemy",
			facing:  types.FacingRight,
			enemies: []*types.Enemy{defeated},
			want:    nil,
		},
		{
			name:   "several enemies",
			facing: types.FacingRight,
			enemies: []*types.Enemy{
				types.NewEnemy(1, types.CharacterTypeThug, 720, 480),
				types.NewEnemy(2, types.CharacterTypeThug, 1200, 480),
				types.NewEnemy(3, types.CharacterTypeBoss, 690, 465),
			},
			want: []types.Hit{{EnemyID: 1, Damage: 1}, {EnemyID: 3, Damage: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player.Facing = tt.facing
			got := ResolvePlayerPunch(player, tt.enemies)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorld_punchCandidates_KeepsTouchingEnemies(t *testing.T) {
	// the thug's left edge touches the right edge of the punch window
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 787, Y: 480}, farBoss},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	candidates := w.punchCandidates()
	require.Len(t, candidates, 1)
	assert.Equal(t, uint32(1), candidates[0].ID)
	assert.Len(t, ResolvePlayerPunch(w.player, candidates), 1)
}

func TestWorld_Step_BossAtLevelEndCanBeCleared(t *testing.T) {
	l, err := level.Parse([]byte(`
name: edge
segments: 4
player_start: {x: 5026, y: 480}
enemies:
  - {type: boss, x: 4980, y: 465}
`))
	require.NoError(t, err)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	require.Len(t, w.punchCandidates(), 1)

	for swing := 1; swing <= constants.BossHealth; swing++ {
		w.Step(0.05, attack)
		for i := 0; i < 7; i++ {
			w.Step(0.05, noInput)
		}
		assert.Equal(t, constants.BossHealth-swing, w.Enemies()[0].Health)
	}

	for i := 0; i < 10; i++ {
		w.Step(0.1, noInput)
	}
	assert.Equal(t, types.PhaseStageClear, w.Phase())
}

func TestWorld_CollisionSpaceHoldsOnlyEnemies(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 900, Y: 480}, farBoss},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(0.05, attack)

	objects := w.collisionSpace.Objects()
	require.Len(t, objects, 2)
	for _, obj := range objects {
		assert.True(t, obj.HasTags(types.CollisionSpaceTagEnemy))
	}
}

func TestWorld_Step_SingleHitPerSwing(t *testing.T) {
	// boss centre (760, 585) is well inside the punch window
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeBoss, X: 690, Y: 465}},
		nil,
	)
	w, events := newTestWorld(t, l, fixedRandom(1))

	for i := 0; i < 6; i++ {
		w.Step(0.05, attack)
	}
	boss := w.Enemies()[0]
	assert.Equal(t, 4, boss.Health)

	hitEvents := drainEvents(t, events)
	assert.Equal(t, 1, countEvents[*types.EnemyHitEvent](hitEvents))

	// releasing and pressing again starts a new swing
	w.Step(0.05, noInput)
	w.Step(0.05, noInput)
	assert.Equal(t, types.PlayerActionIdle, w.Player().Action)
	w.Step(0.05, attack)
	assert.Equal(t, 3, w.Enemies()[0].Health)
	assert.Len(t, w.Effects(), 1)
}

func TestWorld_Step_PunchNotRestartedMidSwing(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeBoss, X: 690, Y: 465}},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(0.05, attack)
	w.Step(0.05, noInput)
	w.Step(0.05, attack)

	assert.Equal(t, 4, w.Enemies()[0].Health)
	assert.InDelta(t, 0.15, w.Player().PunchTimer, 1e-9)
}

func TestWorld_Step_DefeatedNotInstant(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 700, Y: 480}, farBoss},
		nil,
	)
	// every attack roll succeeds, so any attack from the defeated thug would show
	w, events := newTestWorld(t, l, fixedRandom(0))

	w.Step(0.1, attack)
	thug := w.Enemies()[0]
	assert.True(t, thug.Alive())
	assert.True(t, thug.IsDefeated())
	assert.Equal(t, 0, thug.Health)

	for i := 0; i < 3; i++ {
		w.Step(0.1, noInput)
	}
	thug = w.Enemies()[0]
	assert.True(t, thug.Alive())
	assert.Equal(t, types.EnemyModeDefeated, thug.Mode)
	assert.Equal(t, 100, w.Player().Health)

	snapshot := w.Snapshot()
	assert.Len(t, snapshot.Actors, 3)

	w.Step(0.1, noInput)
	w.Step(0.1, noInput)
	thug = w.Enemies()[0]
	assert.False(t, thug.Alive())
	assert.Equal(t, types.EnemyModeDead, thug.Mode)
	assert.Equal(t, 100, w.Player().Health)

	snapshot = w.Snapshot()
	require.Len(t, snapshot.Actors, 2)
	for _, a := range snapshot.Actors {
		assert.NotEqual(t, types.ActorKindThug, a.Kind)
	}

	all := drainEvents(t, events)
	assert.Equal(t, 1, countEvents[*types.EnemyHitEvent](all))
	assert.Equal(t, 1, countEvents[*types.EnemyDefeatedEvent](all))
	assert.Equal(t, 0, countEvents[*types.PlayerHitEvent](all))
}

func TestWorld_Step_StageClear(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{
			{CharacterType: types.CharacterTypeThug, X: 2000, Y: 480},
			{CharacterType: types.CharacterTypeThug, X: 2500, Y: 480},
			farBoss,
		},
		nil,
	)
	w, events := newTestWorld(t, l, fixedRandom(1))

	w.enemies[0].Mode = types.EnemyModeDead
	w.enemies[1].Mode = types.EnemyModeDead
	w.Step(0.1, noInput)
	assert.Equal(t, types.PhasePlaying, w.Phase())

	// a boss in its defeated flash is still alive
	w.enemies[2].TakeDamage(constants.BossHealth)
	w.Step(0.1, noInput)
	assert.Equal(t, types.PhasePlaying, w.Phase())

	for i := 0; i < 5; i++ {
		w.Step(0.1, noInput)
	}
	assert.False(t, w.Enemies()[2].Alive())

	w.Step(0.1, noInput)
	assert.Equal(t, types.PhaseStageClear, w.Phase())

	all := drainEvents(t, events)
	assert.Contains(t, all, &types.PhaseChangedEvent{From: types.PhasePlaying, To: types.PhaseStageClear})
}

func TestWorld_Step_GameOverFreezesWorld(t *testing.T) {
	// the thug stands right next to the player and would attack every tick
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 740, Y: 480}, farBoss},
		nil,
	)
	w, events := newTestWorld(t, l, fixedRandom(0))

	w.player.TakeDamage(w.player.MaxHealth)
	w.Step(0.1, noInput)
	assert.Equal(t, types.PhaseGameOver, w.Phase())

	before := w.Enemies()[0]
	for i := 0; i < 10; i++ {
		w.Step(0.1, types.NewInputState(types.CommandMoveRight, types.CommandAttack))
	}
	after := w.Enemies()[0]
	assert.Equal(t, before.Position, after.Position)
	assert.Equal(t, types.EnemyModeIdle, after.Mode)
	assert.Equal(t, 640.0, w.Player().Position.X)
	assert.Equal(t, 0, w.Player().Health)

	all := drainEvents(t, events)
	assert.Equal(t, 0, countEvents[*types.PlayerHitEvent](all))
	assert.Equal(t, 1, countEvents[*types.PhaseChangedEvent](all))
}

func TestWorld_Step_TerminalPhaseSettlesEffects(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeBoss, X: 690, Y: 465}},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.enemies[0].Health = 1
	w.Step(0.05, attack)
	assert.Len(t, w.Effects(), 1)
	assert.True(t, w.Enemies()[0].IsDefeated())

	for i := 0; i < 20; i++ {
		w.Step(0.05, noInput)
	}
	assert.Equal(t, types.PhaseStageClear, w.Phase())
	assert.Empty(t, w.Effects())
	assert.False(t, w.Enemies()[0].Alive())
}

func TestWorld_Step_Pause(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 640, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, events := newTestWorld(t, l, fixedRandom(1))

	w.Step(0.1, pause)
	assert.True(t, w.Paused())

	// holding pause does not toggle again and nothing moves
	w.Step(1.0, pause.With(types.CommandMoveRight))
	assert.True(t, w.Paused())
	assert.Equal(t, 640.0, w.Player().Position.X)

	w.Step(0.1, noInput)
	w.Step(0.1, pause)
	assert.False(t, w.Paused())

	w.Step(0.1, moveRight)
	assert.InDelta(t, 669.0, w.Player().Position.X, 1e-9)

	all := drainEvents(t, events)
	assert.Equal(t, []interface{}{
		&types.PauseToggledEvent{Paused: true},
		&types.PauseToggledEvent{Paused: false},
	}, all)
}

func TestWorld_Step_PauseIgnoredInTerminalPhase(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 640, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.player.TakeDamage(w.player.MaxHealth)
	w.Step(0.1, noInput)
	w.Step(0.1, pause)
	assert.False(t, w.Paused())
	assert.Equal(t, types.PhaseGameOver, w.Phase())
}

func TestWorld_Restart(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{
			{CharacterType: types.CharacterTypeThug, X: 700, Y: 480},
			{CharacterType: types.CharacterTypeThug, X: 1100, Y: 500},
			{CharacterType: types.CharacterTypeBoss, X: 3000, Y: 465},
		},
		[]types.PickupTemplate{{X: 657, Y: 666}},
	)

	tests := []struct {
		name  string
		setup func(w *World)
		want  types.Phase
	}{
		{
			name: "after game over",
			setup: func(w *World) {
				w.Step(0.1, attack)
				w.Step(0.5, moveRight)
				w.player.TakeDamage(w.player.MaxHealth)
				w.Step(0.1, noInput)
			},
			want: types.PhaseGameOver,
		},
		{
			name: "after stage clear",
			setup: func(w *World) {
				w.Step(0.1, types.NewInputState(types.CommandAttack, types.CommandMoveLeft))
				for _, e := range w.enemies {
					e.Mode = types.EnemyModeDead
				}
				w.Step(0.1, noInput)
			},
			want: types.PhaseStageClear,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, events := newTestWorld(t, l, fixedRandom(0))
			initialPlayer := w.Player()
			initialEnemies := w.Enemies()
			initialPickups := w.Pickups()

			// restart does nothing while playing
			assert.False(t, w.Restart())

			tt.setup(w)
			require.Equal(t, tt.want, w.Phase())
			events.ClearQueue()

			w.Step(0.1, restart)

			assert.Equal(t, types.PhasePlaying, w.Phase())
			assert.False(t, w.Paused())
			assert.Equal(t, 0.0, w.CameraX())
			assert.Equal(t, initialPlayer, w.Player())
			assert.Equal(t, initialEnemies, w.Enemies())
			assert.Equal(t, initialPickups, w.Pickups())
			assert.Empty(t, w.Effects())

			all := drainEvents(t, events)
			assert.Equal(t, []interface{}{
				&types.RestartEvent{},
				&types.PhaseChangedEvent{From: tt.want, To: types.PhasePlaying},
			}, all)

			// live entities never share state with the level templates
			w.enemies[0].Position.X = 9999
			assert.Equal(t, 700.0, l.Enemies[0].X)
		})
	}
}

func TestWorld_Restart_UsesPendingLevel(t *testing.T) {
	first := testLevel(kinematic.Vector{X: 640, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	second := testLevel(kinematic.Vector{X: 100, Y: 470}, []types.EnemyTemplate{farBoss, farBoss}, nil)
	second.Name = "second"

	w, _ := newTestWorld(t, first, fixedRandom(1))
	w.SetLevel(second)
	assert.Equal(t, first, w.Level())

	w.player.TakeDamage(w.player.MaxHealth)
	w.Step(0.1, noInput)
	w.Step(0.1, restart)

	assert.Equal(t, second, w.Level())
	assert.Len(t, w.Enemies(), 2)
	assert.Equal(t, kinematic.Vector{X: 100, Y: 470}, w.Player().Position)
}

func TestWorld_Step_RestartRequiresEdge(t *testing.T) {
	l := testLevel(kinematic.Vector{X: 640, Y: 480}, []types.EnemyTemplate{farBoss}, nil)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	// restart held from before the game ended does not fire
	w.Step(0.1, restart)
	w.player.TakeDamage(w.player.MaxHealth)
	w.Step(0.1, restart)
	w.Step(0.1, restart)
	assert.Equal(t, types.PhaseGameOver, w.Phase())

	w.Step(0.1, noInput)
	w.Step(0.1, restart)
	assert.Equal(t, types.PhasePlaying, w.Phase())
}

func TestWorld_Step_EnemyPursues(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 1000, Y: 480}, farBoss},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(0))

	w.Step(0.1, noInput)

	thug := w.Enemies()[0]
	assert.Equal(t, types.EnemyModePursuing, thug.Mode)
	assert.Equal(t, types.FacingLeft, thug.Facing)
	assert.InDelta(t, 988.0, thug.Position.X, 0.01)
	assert.InDelta(t, -120.0, thug.Velocity.X, 0.01)
	assert.Equal(t, 100, w.Player().Health)

	// the boss is off screen and does not move
	boss := w.Enemies()[1]
	assert.Equal(t, kinematic.Vector{X: 4700, Y: 465}, boss.Position)
}

func TestWorld_Step_EnemyAttack(t *testing.T) {
	// thug centre (790, 580) is about 103 from the player centre (687, 583)
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 740, Y: 480}, farBoss},
		nil,
	)
	w, events := newTestWorld(t, l, fixedRandom(0))

	w.Step(0.1, noInput)

	thug := w.Enemies()[0]
	assert.Equal(t, types.EnemyModeAttacking, thug.Mode)
	assert.Equal(t, kinematic.Vector{}, thug.Velocity)
	assert.InDelta(t, constants.ThugAttackCooldown-0.1, thug.AttackCooldown, 1e-9)
	assert.Equal(t, 90, w.Player().Health)

	snapshot := w.Snapshot()
	for _, a := range snapshot.Actors {
		if a.Kind == types.ActorKindThug {
			assert.True(t, a.Flash)
			assert.Equal(t, "thug_attack", a.Sprite)
		}
	}

	// the cooldown keeps the thug from attacking again right away
	for i := 0; i < 5; i++ {
		w.Step(0.1, noInput)
	}
	assert.Equal(t, 90, w.Player().Health)
	assert.Equal(t, types.EnemyModeIdle, w.Enemies()[0].Mode)

	all := drainEvents(t, events)
	assert.Equal(t, []interface{}{
		&types.PlayerHitEvent{EnemyID: 1, Damage: constants.ThugDamage, Remaining: 90},
	}, all)
}

func TestWorld_Step_BossAttack(t *testing.T) {
	// boss centre (790, 585) and thug centre (590, 580) are both within attack range of the
	// player centre (687, 583); a 0.03 roll only beats the boss's attack probability
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{
			{CharacterType: types.CharacterTypeBoss, X: 720, Y: 465},
			{CharacterType: types.CharacterTypeThug, X: 540, Y: 480},
		},
		nil,
	)
	w, events := newTestWorld(t, l, fixedRandom(0.03))

	w.Step(0.1, noInput)

	enemies := w.Enemies()
	boss, thug := enemies[0], enemies[1]
	assert.Equal(t, types.EnemyModeAttacking, boss.Mode)
	assert.InDelta(t, constants.BossAttackCooldown-0.1, boss.AttackCooldown, 1e-9)
	assert.Equal(t, types.EnemyModeIdle, thug.Mode)
	assert.Equal(t, 0.0, thug.AttackCooldown)
	assert.Equal(t, 80, w.Player().Health)

	all := drainEvents(t, events)
	assert.Equal(t, []interface{}{
		&types.PlayerHitEvent{EnemyID: 1, Damage: constants.BossDamage, Remaining: 80},
	}, all)
}

func TestWorld_Step_EnemyAttackRollFails(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{{CharacterType: types.CharacterTypeThug, X: 740, Y: 480}, farBoss},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(constants.ThugAttackProbability))

	for i := 0; i < 20; i++ {
		w.Step(0.1, noInput)
	}
	assert.Equal(t, 100, w.Player().Health)
	assert.Equal(t, types.EnemyModeIdle, w.Enemies()[0].Mode)
}

func TestWorld_Step_SeededRandomIsDeterministic(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{
			{CharacterType: types.CharacterTypeThug, X: 900, Y: 470},
			{CharacterType: types.CharacterTypeThug, X: 400, Y: 500},
			{CharacterType: types.CharacterTypeBoss, X: 1000, Y: 465},
		},
		nil,
	)

	run := func() (int, []*types.Enemy) {
		w, _ := newTestWorld(t, l, rand.New(rand.NewSource(42)))
		for i := 0; i < 300; i++ {
			w.Step(1.0/60, noInput)
		}
		return w.Player().Health, w.Enemies()
	}

	health1, enemies1 := run()
	health2, enemies2 := run()
	assert.Equal(t, health1, health2)
	assert.Equal(t, enemies1, enemies2)
	assert.Less(t, health1, 100)
}

func TestWorld_Snapshot(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 640, Y: 480},
		[]types.EnemyTemplate{
			{CharacterType: types.CharacterTypeThug, X: 900, Y: 500},
			{CharacterType: types.CharacterTypeThug, X: 1000, Y: 460},
			{CharacterType: types.CharacterTypeBoss, X: 1100, Y: 470},
			{CharacterType: types.CharacterTypeThug, X: 3000, Y: 480},
		},
		[]types.PickupTemplate{{X: 1200, Y: 650}},
	)
	w, _ := newTestWorld(t, l, fixedRandom(1))
	w.enemies[3].Mode = types.EnemyModeDead

	snapshot := w.Snapshot()

	assert.Equal(t, 0.0, snapshot.CameraX)
	assert.Equal(t, []types.SegmentView{{Index: 0, X: 0, Width: constants.SegmentWidth}}, snapshot.Segments)

	require.Len(t, snapshot.Actors, 4)
	var order []types.ActorKind
	var ys []float64
	for _, a := range snapshot.Actors {
		order = append(order, a.Kind)
		ys = append(ys, a.Y)
	}
	assert.Equal(t, []types.ActorKind{types.ActorKindThug, types.ActorKindBoss, types.ActorKindPlayer, types.ActorKindThug}, order)
	assert.Equal(t, []float64{460, 470, 480, 500}, ys)

	player := snapshot.Actors[2]
	assert.Equal(t, "player_idle", player.Sprite)
	assert.Equal(t, constants.PlayerWidth, player.DrawWidth)
	assert.False(t, player.FacingLeft)
	assert.Equal(t, "boss_idle", snapshot.Actors[1].Sprite)
	assert.True(t, snapshot.Actors[1].FacingLeft)

	require.Len(t, snapshot.Pickups, 1)
	assert.Equal(t, 1200.0, snapshot.Pickups[0].X)

	assert.Equal(t, types.UIState{
		PlayerHealth:    100,
		PlayerMaxHealth: 100,
		Boss:            &types.BossBar{Health: constants.BossHealth, MaxHealth: constants.BossHealth},
		Phase:           types.PhasePlaying,
	}, snapshot.UI)

	// snapshots do not change the world
	assert.Equal(t, snapshot, w.Snapshot())
}

func TestWorld_Snapshot_ScreenSpace(t *testing.T) {
	l := testLevel(
		kinematic.Vector{X: 2000, Y: 480},
		[]types.EnemyTemplate{farBoss},
		nil,
	)
	w, _ := newTestWorld(t, l, fixedRandom(1))

	w.Step(0.1, moveRight)
	snapshot := w.Snapshot()

	// the camera is computed before the player moves
	assert.Equal(t, 1360.0, snapshot.CameraX)
	// the off-screen boss is still listed, behind the player
	require.Len(t, snapshot.Actors, 2)
	player := snapshot.Actors[1]
	assert.Equal(t, types.ActorKindPlayer, player.Kind)
	assert.InDelta(t, 2029.0-1360.0, player.X, 1e-9)
	assert.Equal(t, "player_walk", player.Sprite)
	assert.Equal(t, constants.PlayerWalkDrawWidth, player.DrawWidth)
	assert.Equal(t, []types.SegmentView{
		{Index: 1, X: 1280 - 1360, Width: constants.SegmentWidth},
		{Index: 2, X: 2560 - 1360, Width: constants.SegmentWidth},
	}, snapshot.Segments)
	assert.Nil(t, snapshot.UI.Boss)
}

func TestFlickerOff(t *testing.T) {
	tests := []struct {
		timer float64
		want  bool
	}{
		{timer: 0.42, want: true},
		{timer: 0.47, want: false},
		{timer: 0.12, want: true},
		{timer: 0.17, want: false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.timer), func(t *testing.T) {
			assert.Equal(t, tt.want, flickerOff(tt.timer))
		})
	}
}
