package game

import (
	"math"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/solarlune/resolv"
)

// NewCollisionSpace returns a space covering the whole level.
func NewCollisionSpace(levelWidth float64) *resolv.Space {
	return resolv.NewSpace(
		int(math.Ceil(levelWidth)),
		int(constants.ViewportHeight),
		constants.CollisionCellSize,
		constants.CollisionCellSize,
	)
}

// punchWindow returns the reach point of the player's punch and the area any struck enemy
// must overlap: punch range wide around the reach point and twice the punch height tall
// around the player's centre.
func punchWindow(p *types.Player) (reachX float64, box types.Box) {
	center := p.Center()
	reachX = center.X + p.Facing.Sign()*constants.PlayerPunchReachOffset
	box = types.Box{
		Width:  constants.PlayerPunchRange,
		Height: 2 * constants.PlayerPunchHeight,
	}
	box.Position.X = reachX - constants.PlayerPunchRange/2
	box.Position.Y = center.Y - constants.PlayerPunchHeight
	return reachX, box
}

// punchCandidates returns the enemies whose hurtbox shares a collision cell with the
// player's punch window. Levels keep every enemy inside the collision space, so no enemy
// the exact test would accept is dropped here.
func (w *World) punchCandidates() []*types.Enemy {
	_, window := punchWindow(w.player)

	// resolv excludes the far edge of a rectangle, so grow the hitbox to keep touching boxes
	const pad = 1.0
	attackHitbox := resolv.NewObject(
		window.Position.X-pad,
		window.Position.Y-pad,
		window.Width+2*pad,
		window.Height+2*pad,
		types.CollisionSpaceTagAttack,
	)
	w.collisionSpace.Add(attackHitbox)
	defer w.collisionSpace.Remove(attackHitbox)

	var candidates []*types.Enemy
	for _, e := range w.enemies {
		if !e.IsActive() || e.Object == nil {
			continue
		}
		if !attackHitbox.SharesCells(e.Object) {
			continue
		}
		candidates = append(candidates, e)
	}
	return candidates
}
