package types

// ActorKind identifies what an actor view represents.
type ActorKind string

const (
	ActorKindPlayer ActorKind = "player"
	ActorKindThug   ActorKind = "thug"
	ActorKindBoss   ActorKind = "boss"
)

// ActorView is the read-only render data for one actor. Positions are in screen space.
type ActorView struct {
	Kind       ActorKind `json:"kind"`
	ID         uint32    `json:"id"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	DrawWidth  float64   `json:"drawWidth"`
	DrawHeight float64   `json:"drawHeight"`
	Sprite     string    `json:"sprite"`
	FacingLeft bool      `json:"facingLeft"`
	// Flash is set while an enemy is in its attacking pose.
	Flash bool `json:"flash"`
	// Hidden is set on the off beats of a defeated enemy's flicker.
	Hidden    bool `json:"hidden"`
	Health    int  `json:"health"`
	MaxHealth int  `json:"maxHealth"`
}

type PickupView struct {
	ID     uint32  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type EffectView struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Timer float64 `json:"timer"`
}

// SegmentView is one background segment that is at least partially on screen.
type SegmentView struct {
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

type BossBar struct {
	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`
}

// UIState is the scalar state used for the status bar and overlays.
type UIState struct {
	PlayerHealth    int      `json:"playerHealth"`
	PlayerMaxHealth int      `json:"playerMaxHealth"`
	Boss            *BossBar `json:"boss,omitempty"`
	Phase           Phase    `json:"phase"`
	Paused          bool     `json:"paused"`
}

// Snapshot is everything the renderer needs to draw one frame.
type Snapshot struct {
	CameraX  float64       `json:"cameraX"`
	Segments []SegmentView `json:"segments"`
	Actors   []ActorView   `json:"actors"`
	Pickups  []PickupView  `json:"pickups"`
	Effects  []EffectView  `json:"effects"`
	UI       UIState       `json:"ui"`
}

// Copy returns a deep copy of the snapshot.
func (s Snapshot) Copy() Snapshot {
	c := s
	c.Segments = append([]SegmentView(nil), s.Segments...)
	c.Actors = append([]ActorView(nil), s.Actors...)
	c.Pickups = append([]PickupView(nil), s.Pickups...)
	c.Effects = append([]EffectView(nil), s.Effects...)
	if s.UI.Boss != nil {
		boss := *s.UI.Boss
		c.UI.Boss = &boss
	}
	return c
}
