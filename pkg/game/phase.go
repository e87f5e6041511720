package game

import (
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/log"
)

// checkTerminal moves the session into a terminal phase when the player is dead or no
// boss is left alive. It returns true if the session is (now) in a terminal phase.
func (w *World) checkTerminal() bool {
	if w.phase.IsTerminal() {
		return true
	}
	if w.player.IsDead() {
		w.setPhase(types.PhaseGameOver)
		return true
	}
	if !w.bossAlive() {
		w.setPhase(types.PhaseStageClear)
		return true
	}
	return false
}

func (w *World) bossAlive() bool {
	for _, e := range w.enemies {
		if e.CharacterType == types.CharacterTypeBoss && e.Alive() {
			return true
		}
	}
	return false
}

func (w *World) setPhase(phase types.Phase) {
	if w.phase == phase {
		return
	}
	from := w.phase
	w.phase = phase
	log.Info("Phase changed from %s to %s", from, phase)
	w.emit(&types.PhaseChangedEvent{From: from, To: phase})
}

// settleTimers lets cosmetic timers finish while the world is frozen in a terminal phase.
// Nothing moves and nothing attacks.
func (w *World) settleTimers(deltaTime float64) {
	w.expireEffects(deltaTime)
	w.advanceDefeated(deltaTime)
	for _, e := range w.enemies {
		if !e.IsAttacking() {
			continue
		}
		e.AdvanceAttack(deltaTime)
	}
	if w.player.PunchTimer > 0 {
		w.player.PunchTimer -= deltaTime
		if w.player.PunchTimer <= 0 {
			w.player.PunchTimer = 0
			w.player.Action = types.PlayerActionIdle
		}
	}
}

// Restart starts a fresh session from the level templates. It only has an effect in the
// GameOver and StageClear phases and returns whether the session was restarted.
// A level set with SetLevel takes over here.
func (w *World) Restart() bool {
	if !w.phase.IsTerminal() {
		return false
	}

	if w.pendingLevel != nil {
		log.Info("Switching to level %q", w.pendingLevel.Name)
		w.level = w.pendingLevel
		w.pendingLevel = nil
	}

	from := w.phase
	w.reset()
	log.Info("Restarted level %q after %s", w.level.Name, from)
	w.emit(&types.RestartEvent{})
	w.emit(&types.PhaseChangedEvent{From: from, To: w.phase})
	return true
}

// reset rebuilds all session state from the level. Templates are copied, never shared.
func (w *World) reset() {
	w.collisionSpace = NewCollisionSpace(w.level.Width())

	w.player = types.NewPlayer(w.level.PlayerStart.X, w.level.PlayerStart.Y)

	w.enemies = make([]*types.Enemy, 0, len(w.level.Enemies))
	for i, template := range w.level.Enemies {
		e := template.Spawn(uint32(i + 1))
		w.collisionSpace.Add(e.Object)
		w.enemies = append(w.enemies, e)
	}

	w.pickups = make([]*types.Pickup, 0, len(w.level.Pickups))
	for i, template := range w.level.Pickups {
		w.pickups = append(w.pickups, template.Spawn(uint32(i+1)))
	}

	w.effects = nil
	w.cameraX = 0
	w.phase = types.PhasePlaying
	w.paused = false
}
