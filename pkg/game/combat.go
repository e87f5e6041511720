package game

import (
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/log"
)

// ResolvePlayerPunch returns the enemies struck by the player's current punch.
//
// An enemy is struck when it is active and its centre lies inside an axis-aligned window in
// front of the player: horizontally within half the punch range plus half the enemy's width
// of the reach point, and vertically within the punch height of the player's centre.
// ResolvePlayerPunch does not mutate anything.
func ResolvePlayerPunch(player *types.Player, enemies []*types.Enemy) []types.Hit {
	reachX, _ := punchWindow(player)
	playerCenter := player.Center()

	var hits []types.Hit
	for _, e := range enemies {
		if !e.IsActive() {
			continue
		}
		center := e.Center()
		if abs(center.X-reachX) > constants.PlayerPunchRange/2+e.Width/2 {
			continue
		}
		if abs(center.Y-playerCenter.Y) > constants.PlayerPunchHeight {
			continue
		}
		hits = append(hits, types.Hit{
			EnemyID: e.ID,
			Damage:  constants.PlayerPunchDamage,
		})
	}
	return hits
}

// applyHits damages struck enemies, spawns hit effects and starts defeated flashes.
func (w *World) applyHits(hits []types.Hit) {
	for _, hit := range hits {
		e := w.enemyByID(hit.EnemyID)
		if e == nil {
			log.Warn("Hit on unknown enemy %d", hit.EnemyID)
			continue
		}

		defeated := e.TakeDamage(hit.Damage)
		w.effects = append(w.effects, types.NewEffect(w.newEffectID(), e.Position))
		log.Trace("Player hit enemy %d (%s) for %d, %d left", e.ID, e.CharacterType, hit.Damage, e.Health)
		w.emit(&types.EnemyHitEvent{
			EnemyID:       e.ID,
			CharacterType: e.CharacterType,
			Damage:        hit.Damage,
			Remaining:     e.Health,
		})

		if !defeated {
			continue
		}
		log.Debug("Player defeated enemy %d (%s)", e.ID, e.CharacterType)
		w.emit(&types.EnemyDefeatedEvent{
			EnemyID:       e.ID,
			CharacterType: e.CharacterType,
		})
	}
}

func (w *World) enemyByID(id uint32) *types.Enemy {
	for _, e := range w.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
