package game

import (
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/cbodonnell/brawler/pkg/kinematic"
)

// CameraOffset centres the viewport on playerX, clamped to the level.
func CameraOffset(playerX float64, levelWidth float64) float64 {
	return kinematic.Clamp(playerX-constants.ViewportWidth/2, 0, levelWidth-constants.ViewportWidth)
}

// isOnScreen returns false when the box lies entirely outside the viewport horizontally.
func isOnScreen(b types.Box, cameraX float64) bool {
	return b.Right() >= cameraX && b.Position.X <= cameraX+constants.ViewportWidth
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
