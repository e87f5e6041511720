package types

import (
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/kinematic"
)

type Player struct {
	Box
	Velocity  kinematic.Vector `json:"velocity"`
	Speed     float64          `json:"speed"`
	Health    int              `json:"health"`
	MaxHealth int              `json:"maxHealth"`
	Action    PlayerAction     `json:"action"`
	Facing    Facing           `json:"facing"`
	// PunchTimer counts down the current swing; a new punch may start once it reaches 0.
	PunchTimer float64 `json:"punchTimer"`
	// PunchHasHit is set once the current swing has been resolved against enemies.
	PunchHasHit bool `json:"punchHasHit"`
}

type PlayerAction uint8

const (
	PlayerActionIdle PlayerAction = iota
	PlayerActionWalk
	PlayerActionPunch
)

func (a PlayerAction) String() string {
	switch a {
	case PlayerActionIdle:
		return "idle"
	case PlayerActionWalk:
		return "walk"
	case PlayerActionPunch:
		return "punch"
	}
	return "unknown"
}

func NewPlayer(positionX float64, positionY float64) *Player {
	return &Player{
		Box: Box{
			Position: kinematic.Vector{
				X: positionX,
				Y: positionY,
			},
			Width:  constants.PlayerWidth,
			Height: constants.PlayerHeight,
		},
		Speed:     constants.PlayerSpeed,
		Health:    constants.PlayerMaxHealth,
		MaxHealth: constants.PlayerMaxHealth,
		Action:    PlayerActionIdle,
		Facing:    FacingRight,
	}
}

// IsDead returns true once the player's health is exhausted.
func (p *Player) IsDead() bool {
	return p.Health <= 0
}

// TakeDamage reduces the player's health, never below 0.
func (p *Player) TakeDamage(damage int) {
	p.Health = clampHealth(p.Health-damage, p.MaxHealth)
}

// Heal restores health, never above MaxHealth. It returns the amount actually restored.
func (p *Player) Heal(amount int) int {
	before := p.Health
	p.Health = clampHealth(p.Health+amount, p.MaxHealth)
	return p.Health - before
}

// ClampToLevel keeps the player inside the level horizontally and inside the street lane vertically.
func (p *Player) ClampToLevel(levelWidth float64) {
	p.Position.X = kinematic.Clamp(p.Position.X, 0, levelWidth-p.Width)
	p.Position.Y = ClampToLane(p.Position.Y, p.Height)
}

// Copy returns a copy of the player state.
func (p *Player) Copy() *Player {
	c := *p
	return &c
}

func clampHealth(health, max int) int {
	if health < 0 {
		return 0
	}
	if health > max {
		return max
	}
	return health
}
