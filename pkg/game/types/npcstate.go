package types

import (
	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/kinematic"
	"github.com/solarlune/resolv"
)

type CharacterType uint8

const (
	CharacterTypeThug CharacterType = iota
	CharacterTypeBoss
)

func (c CharacterType) String() string {
	switch c {
	case CharacterTypeThug:
		return "thug"
	case CharacterTypeBoss:
		return "boss"
	}
	return "unknown"
}

// ParseCharacterType parses a character type name as used in level files.
func ParseCharacterType(name string) (CharacterType, bool) {
	switch name {
	case "thug":
		return CharacterTypeThug, true
	case "boss":
		return CharacterTypeBoss, true
	}
	return 0, false
}

// EnemyProfile holds the per-type tuning of an enemy.
type EnemyProfile struct {
	Width             float64
	Height            float64
	Speed             float64
	MaxHealth         int
	Damage            int
	AttackCooldown    float64
	AttackProbability float64
}

// ProfileFor returns the tuning for a character type. Unknown types get the thug profile.
func ProfileFor(c CharacterType) EnemyProfile {
	if c == CharacterTypeBoss {
		return EnemyProfile{
			Width:             constants.BossWidth,
			Height:            constants.BossHeight,
			Speed:             constants.BossSpeed,
			MaxHealth:         constants.BossHealth,
			Damage:            constants.BossDamage,
			AttackCooldown:    constants.BossAttackCooldown,
			AttackProbability: constants.BossAttackProbability,
		}
	}
	return EnemyProfile{
		Width:             constants.ThugWidth,
		Height:            constants.ThugHeight,
		Speed:             constants.ThugSpeed,
		MaxHealth:         constants.ThugHealth,
		Damage:            constants.ThugDamage,
		AttackCooldown:    constants.ThugAttackCooldown,
		AttackProbability: constants.ThugAttackProbability,
	}
}

// EnemyMode is the behavioural sub-state of an enemy. FlashTimer is only meaningful
// in EnemyModeAttacking and EnemyModeDefeated.
type EnemyMode uint8

const (
	EnemyModeIdle EnemyMode = iota
	EnemyModePursuing
	EnemyModeAttacking
	EnemyModeDefeated
	EnemyModeDead
)

func (m EnemyMode) String() string {
	switch m {
	case EnemyModeIdle:
		return "idle"
	case EnemyModePursuing:
		return "pursuing"
	case EnemyModeAttacking:
		return "attacking"
	case EnemyModeDefeated:
		return "defeated"
	case EnemyModeDead:
		return "dead"
	}
	return "unknown"
}

type Enemy struct {
	Box
	ID             uint32           `json:"id"`
	CharacterType  CharacterType    `json:"characterType"`
	Velocity       kinematic.Vector `json:"velocity"`
	Health         int              `json:"health"`
	MaxHealth      int              `json:"maxHealth"`
	Facing         Facing           `json:"facing"`
	Mode           EnemyMode        `json:"mode"`
	FlashTimer     float64          `json:"flashTimer"`
	AttackCooldown float64          `json:"attackCooldown"`
	Object         *resolv.Object   `json:"-"`
}

// EnemyTemplate is the immutable description of an enemy placed in a level.
type EnemyTemplate struct {
	CharacterType CharacterType
	X             float64
	Y             float64
}

// Spawn builds a fresh live enemy from the template. The returned enemy shares no
// mutable state with the template or with previously spawned enemies.
func (t EnemyTemplate) Spawn(id uint32) *Enemy {
	return NewEnemy(id, t.CharacterType, t.X, t.Y)
}

func NewEnemy(id uint32, characterType CharacterType, positionX float64, positionY float64) *Enemy {
	profile := ProfileFor(characterType)
	return &Enemy{
		Box: Box{
			Position: kinematic.Vector{
				X: positionX,
				Y: positionY,
			},
			Width:  profile.Width,
			Height: profile.Height,
		},
		ID:            id,
		CharacterType: characterType,
		Health:        profile.MaxHealth,
		MaxHealth:     profile.MaxHealth,
		Facing:        FacingLeft,
		Mode:          EnemyModeIdle,
		Object:        resolv.NewObject(positionX, positionY, profile.Width, profile.Height, CollisionSpaceTagEnemy),
	}
}

func (e *Enemy) Profile() EnemyProfile {
	return ProfileFor(e.CharacterType)
}

// Alive returns true until the defeated flash has finished.
func (e *Enemy) Alive() bool {
	return e.Mode != EnemyModeDead
}

func (e *Enemy) IsDefeated() bool {
	return e.Mode == EnemyModeDefeated
}

func (e *Enemy) IsAttacking() bool {
	return e.Mode == EnemyModeAttacking
}

// IsActive returns true for enemies that can still move, attack and be hit.
func (e *Enemy) IsActive() bool {
	return e.Alive() && !e.IsDefeated()
}

// TakeDamage reduces the enemy's health and returns true if this hit defeated it.
func (e *Enemy) TakeDamage(damage int) bool {
	if !e.IsActive() {
		return false
	}
	e.Health -= damage
	if e.Health > 0 {
		return false
	}
	e.Health = 0
	e.Mode = EnemyModeDefeated
	e.FlashTimer = constants.EnemyDefeatedFlashDuration
	e.Velocity = kinematic.Vector{}
	return true
}

// AdvanceDefeated runs the defeated flash down and returns true when the enemy has just died.
func (e *Enemy) AdvanceDefeated(deltaTime float64) bool {
	if e.Mode != EnemyModeDefeated {
		return false
	}
	e.FlashTimer -= deltaTime
	if e.FlashTimer > 0 {
		return false
	}
	e.FlashTimer = 0
	e.Mode = EnemyModeDead
	return true
}

// StartAttack puts the enemy into its attacking pose and restarts its cooldown.
func (e *Enemy) StartAttack() {
	e.Mode = EnemyModeAttacking
	e.FlashTimer = constants.EnemyAttackFlashDuration
	e.AttackCooldown = e.Profile().AttackCooldown
}

// AdvanceAttack runs the attack cooldown and the attack flash down.
func (e *Enemy) AdvanceAttack(deltaTime float64) {
	e.AttackCooldown -= deltaTime
	if e.AttackCooldown < 0 {
		e.AttackCooldown = 0
	}
	if e.Mode != EnemyModeAttacking {
		return
	}
	e.FlashTimer -= deltaTime
	if e.FlashTimer <= 0 {
		e.FlashTimer = 0
		e.Mode = EnemyModeIdle
	}
}

// SyncObject moves the collision object to the enemy's position.
func (e *Enemy) SyncObject() {
	if e.Object == nil {
		return
	}
	e.Object.Position.X = e.Position.X
	e.Object.Position.Y = e.Position.Y
	e.Object.Update()
}

// Copy returns a copy of the enemy state with an empty object reference
func (e *Enemy) Copy() *Enemy {
	c := *e
	c.Object = nil
	return &c
}
