package types

import (
	"fmt"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/kinematic"
)

const (
	CollisionSpaceTagEnemy  string = "enemy"
	CollisionSpaceTagAttack string = "attack"
)

// Phase is the game phase. Pausing is tracked separately and does not change the phase.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseStageClear
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseStageClear:
		return "stage_clear"
	}
	return "unknown"
}

// IsTerminal returns true for phases that only a restart can leave.
func (p Phase) IsTerminal() bool {
	return p == PhaseGameOver || p == PhaseStageClear
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, phase := range []Phase{PhasePlaying, PhaseGameOver, PhaseStageClear} {
		if phase.String() == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Facing is the horizontal direction an actor looks in.
type Facing uint8

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// RandomSource provides the uniform draws used by enemy attack rolls.
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ClampToLane limits y so that an actor of the given height stays inside the walkable street lane.
func ClampToLane(y, height float64) float64 {
	return kinematic.Clamp(y, constants.LaneTop, constants.ViewportHeight-height-constants.GroundMargin)
}

// Box is an axis-aligned rectangle in world space.
type Box struct {
	Position kinematic.Vector `json:"position"`
	Width    float64          `json:"width"`
	Height   float64          `json:"height"`
}

// Center returns the centre of the box.
func (b Box) Center() kinematic.Vector {
	return kinematic.Vector{
		X: b.Position.X + b.Width/2,
		Y: b.Position.Y + b.Height/2,
	}
}

// Right returns the x coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Position.X + b.Width
}

// Bottom returns the y coordinate of the bottom edge, the actor's feet.
func (b Box) Bottom() float64 {
	return b.Position.Y + b.Height
}
