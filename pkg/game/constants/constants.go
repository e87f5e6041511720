package constants

const (
	// ViewportWidth is the width of the visible window into the level
	ViewportWidth float64 = 1280.0
	// ViewportHeight is the height of the visible window into the level
	ViewportHeight float64 = 720.0
	// LaneTop is the smallest y an actor may occupy
	LaneTop float64 = 458.0
	// GroundMargin is the gap kept between an actor's feet and the bottom of the viewport
	GroundMargin float64 = 10.0
	// SegmentWidth is the width of one background segment
	SegmentWidth float64 = 1280.0
	// MaxFrameDelta caps the wall-clock delta fed to a single step
	MaxFrameDelta float64 = 0.25 // seconds

	// PlayerSpeed is the speed at which the player walks
	PlayerSpeed float64 = 290.0
	// Player Width
	PlayerWidth float64 = 94.0
	// Player Height
	PlayerHeight float64 = 206.0
	// Player Starting X
	PlayerStartingX float64 = 640.0
	// Player Starting Y
	PlayerStartingY float64 = 480.0
	// PlayerMaxHealth is the health the player starts with
	PlayerMaxHealth int = 100

	// Draw sizes per player action; the hurtbox stays PlayerWidth x PlayerHeight.
	PlayerWalkDrawWidth   float64 = 129.0
	PlayerWalkDrawHeight  float64 = 201.0
	PlayerPunchDrawWidth  float64 = 143.0
	PlayerPunchDrawHeight float64 = 205.0

	// PlayerPunchDuration is the punch swing time, which is also its cooldown
	PlayerPunchDuration float64 = 0.3 // seconds
	// PlayerPunchRange is the width of the punch window
	PlayerPunchRange float64 = 80.0
	// PlayerPunchHeight is the vertical tolerance of the punch window from the player's centre
	PlayerPunchHeight float64 = 60.0
	// PlayerPunchReachOffset is the distance from the player's centre to the centre of the punch window
	PlayerPunchReachOffset float64 = 60.0
	// PlayerPunchDamage is the health an enemy loses per punch
	PlayerPunchDamage int = 1

	// EnemyDefeatedFlashDuration is how long a defeated enemy flickers before it is removed
	EnemyDefeatedFlashDuration float64 = 0.5 // seconds
	// EnemyAttackFlashDuration is how long an enemy stays in its attacking pose
	EnemyAttackFlashDuration float64 = 0.3 // seconds
	// EnemyStopDistance is the pursuit distance below which enemies hold position
	EnemyStopDistance float64 = 110.0
	// EnemyAttackMargin is added to EnemyStopDistance to get the range in which enemies attack
	EnemyAttackMargin float64 = 20.0
	// EnemyAttackReachX is the horizontal centre-to-centre reach of an enemy strike
	EnemyAttackReachX float64 = 150.0
	// EnemyAttackReachY is the vertical centre-to-centre reach of an enemy strike
	EnemyAttackReachY float64 = 60.0
	// EnemyFlickerRate is the number of visibility toggles per second while defeated
	EnemyFlickerRate float64 = 10.0

	// Thug profile
	ThugWidth             float64 = 100.0
	ThugHeight            float64 = 200.0
	ThugSpeed             float64 = 120.0
	ThugHealth            int     = 1
	ThugDamage            int     = 10
	ThugAttackCooldown    float64 = 1.5 // seconds
	ThugAttackProbability float64 = 0.02

	// Boss profile
	BossWidth             float64 = 140.0
	BossHeight            float64 = 240.0
	BossSpeed             float64 = 90.0
	BossHealth            int     = 5
	BossDamage            int     = 20
	BossAttackCooldown    float64 = 1.0 // seconds
	BossAttackProbability float64 = 0.05

	// Pickup Width
	PickupWidth float64 = 60.0
	// Pickup Height
	PickupHeight float64 = 40.0
	// PickupReachX is the horizontal tolerance between player and pickup centres
	PickupReachX float64 = 60.0
	// PickupReachY is the vertical tolerance between the player's feet and the pickup centre
	PickupReachY float64 = 30.0
	// PickupHealFraction is the fraction of max health restored by a pickup
	PickupHealFraction float64 = 0.5

	// EffectDuration is how long a hit effect is shown
	EffectDuration float64 = 0.3 // seconds

	// CollisionCellSize is the cell size of the collision space
	CollisionCellSize int = 64
)
