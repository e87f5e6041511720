package types

import (
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/kinematic"
)

// Pickup is a healing item lying in the street.
type Pickup struct {
	Box
	ID        uint32 `json:"id"`
	Collected bool   `json:"collected"`
}

// PickupTemplate is the immutable description of a pickup placed in a level.
type PickupTemplate struct {
	X float64
	Y float64
}

// Spawn builds a fresh, uncollected pickup from the template.
func (t PickupTemplate) Spawn(id uint32) *Pickup {
	return NewPickup(id, t.X, t.Y)
}

func NewPickup(id uint32, positionX float64, positionY float64) *Pickup {
	return &Pickup{
		Box: Box{
			Position: kinematic.Vector{
				X: positionX,
				Y: positionY,
			},
			Width:  constants.PickupWidth,
			Height: constants.PickupHeight,
		},
		ID: id,
	}
}

// Effect is a short-lived hit marker. It has no gameplay effect.
type Effect struct {
	ID       string           `json:"id"`
	Position kinematic.Vector `json:"position"`
	Timer    float64          `json:"timer"`
}

func NewEffect(id string, position kinematic.Vector) *Effect {
	return &Effect{
		ID:       id,
		Position: position,
		Timer:    constants.EffectDuration,
	}
}

// Advance runs the effect's timer down and returns true once it has expired.
func (e *Effect) Advance(deltaTime float64) bool {
	e.Timer -= deltaTime
	return e.Timer <= 0
}
