package types

// Events are emitted by the simulation for consumers such as the client's damage text
// and the logs. They never feed back into the simulation.

type EnemyHitEvent struct {
	EnemyID       uint32
	CharacterType CharacterType
	Damage        int
	Remaining     int
}

type EnemyDefeatedEvent struct {
	EnemyID       uint32
	CharacterType CharacterType
}

type PlayerHitEvent struct {
	EnemyID   uint32
	Damage    int
	Remaining int
}

type PickupCollectedEvent struct {
	PickupID uint32
	Healed   int
}

type PhaseChangedEvent struct {
	From Phase
	To   Phase
}

type PauseToggledEvent struct {
	Paused bool
}

type RestartEvent struct{}

// Hit is one enemy struck by a punch.
type Hit struct {
	EnemyID uint32
	Damage  int
}
