package game

import (
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/kinematic"
	"github.com/cbodonnell/brawler/pkg/log"
)

// updateEnemies runs one tick of pursuit and attack behaviour for every active enemy on screen.
func (w *World) updateEnemies(deltaTime float64) {
	for _, e := range w.enemies {
		if !e.IsActive() || !isOnScreen(e.Box, w.cameraX) {
			continue
		}
		w.updateEnemy(e, deltaTime)
	}
}

func (w *World) updateEnemy(e *types.Enemy, deltaTime float64) {
	p := w.player
	profile := e.Profile()
	playerCenter := p.Center()
	enemyCenter := e.Center()

	if playerCenter.X < enemyCenter.X {
		e.Facing = types.FacingLeft
	} else if playerCenter.X > enemyCenter.X {
		e.Facing = types.FacingRight
	}

	direction, distance := kinematic.Toward(enemyCenter, playerCenter)
	if distance > constants.EnemyStopDistance {
		e.Velocity = direction.Scale(profile.Speed)
		if !e.IsAttacking() {
			e.Mode = types.EnemyModePursuing
		}
	} else {
		e.Velocity = kinematic.Vector{}
		if !e.IsAttacking() {
			e.Mode = types.EnemyModeIdle
		}
	}

	e.Position = e.Position.Add(kinematic.Displacement(e.Velocity, deltaTime))
	e.Position.Y = types.ClampToLane(e.Position.Y, e.Height)
	e.SyncObject()

	if distance < constants.EnemyStopDistance+constants.EnemyAttackMargin && !e.IsAttacking() {
		w.tryEnemyAttack(e, profile)
	}

	e.AdvanceAttack(deltaTime)
}

// tryEnemyAttack starts an attack once the cooldown has elapsed and the attack roll succeeds.
// The strike only lands if the player is inside the enemy's reach.
func (w *World) tryEnemyAttack(e *types.Enemy, profile types.EnemyProfile) {
	if e.AttackCooldown > 0 {
		return
	}
	if w.rng.Float64() >= profile.AttackProbability {
		return
	}

	e.StartAttack()
	if !strikeReaches(e, w.player) {
		log.Trace("Enemy %d (%s) swung and missed", e.ID, e.CharacterType)
		return
	}

	w.player.TakeDamage(profile.Damage)
	log.Debug("Enemy %d (%s) hit player for %d, %d left", e.ID, e.CharacterType, profile.Damage, w.player.Health)
	w.emit(&types.PlayerHitEvent{
		EnemyID:   e.ID,
		Damage:    profile.Damage,
		Remaining: w.player.Health,
	})
}

// strikeReaches is the proximity test for enemy strikes, measured centre to centre.
func strikeReaches(e *types.Enemy, p *types.Player) bool {
	ec := e.Center()
	pc := p.Center()
	return abs(ec.X-pc.X) < constants.EnemyAttackReachX && abs(ec.Y-pc.Y) < constants.EnemyAttackReachY
}
