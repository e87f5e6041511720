package game

import (
	"math"
	"sort"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	"github.com/cbodonnell/brawler/pkg/game/types"
)

// Snapshot returns the render data for the current state. It does not mutate the world.
func (w *World) Snapshot() types.Snapshot {
	return types.Snapshot{
		CameraX:  w.cameraX,
		Segments: w.segmentViews(),
		Actors:   w.actorViews(),
		Pickups:  w.pickupViews(),
		Effects:  w.effectViews(),
		UI:       w.UIState(),
	}
}

// UIState returns the scalar state for the status bar and overlays.
func (w *World) UIState() types.UIState {
	ui := types.UIState{
		PlayerHealth:    w.player.Health,
		PlayerMaxHealth: w.player.MaxHealth,
		Phase:           w.phase,
		Paused:          w.paused,
	}
	for _, e := range w.enemies {
		if e.CharacterType != types.CharacterTypeBoss || !e.Alive() || !isOnScreen(e.Box, w.cameraX) {
			continue
		}
		ui.Boss = &types.BossBar{
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
		}
		break
	}
	return ui
}

func (w *World) segmentViews() []types.SegmentView {
	var segments []types.SegmentView
	for i := 0; i < w.level.Segments; i++ {
		x := float64(i)*w.level.SegmentWidth - w.cameraX
		if x+w.level.SegmentWidth <= 0 || x >= constants.ViewportWidth {
			continue
		}
		segments = append(segments, types.SegmentView{
			Index: i,
			X:     x,
			Width: w.level.SegmentWidth,
		})
	}
	return segments
}

// actorViews returns the alive enemies and the player ordered back to front.
func (w *World) actorViews() []types.ActorView {
	actors := make([]types.ActorView, 0, len(w.enemies)+1)
	for _, e := range w.enemies {
		if !e.Alive() {
			continue
		}
		actors = append(actors, w.enemyView(e))
	}
	actors = append(actors, w.playerView())

	// lower on screen draws on top
	sort.SliceStable(actors, func(i, j int) bool {
		return actors[i].Y < actors[j].Y
	})
	return actors
}

func (w *World) playerView() types.ActorView {
	p := w.player
	drawWidth, drawHeight := p.Width, p.Height
	switch p.Action {
	case types.PlayerActionWalk:
		drawWidth, drawHeight = constants.PlayerWalkDrawWidth, constants.PlayerWalkDrawHeight
	case types.PlayerActionPunch:
		drawWidth, drawHeight = constants.PlayerPunchDrawWidth, constants.PlayerPunchDrawHeight
	}
	return types.ActorView{
		Kind:       types.ActorKindPlayer,
		X:          p.Position.X - w.cameraX,
		Y:          p.Position.Y,
		Width:      p.Width,
		Height:     p.Height,
		DrawWidth:  drawWidth,
		DrawHeight: drawHeight,
		Sprite:     "player_" + p.Action.String(),
		FacingLeft: p.Facing == types.FacingLeft,
		Health:     p.Health,
		MaxHealth:  p.MaxHealth,
	}
}

func (w *World) enemyView(e *types.Enemy) types.ActorView {
	kind := types.ActorKindThug
	if e.CharacterType == types.CharacterTypeBoss {
		kind = types.ActorKindBoss
	}
	return types.ActorView{
		Kind:       kind,
		ID:         e.ID,
		X:          e.Position.X - w.cameraX,
		Y:          e.Position.Y,
		Width:      e.Width,
		Height:     e.Height,
		DrawWidth:  e.Width,
		DrawHeight: e.Height,
		Sprite:     string(kind) + "_" + enemyPose(e),
		FacingLeft: e.Facing == types.FacingLeft,
		Flash:      e.IsAttacking(),
		Hidden:     e.IsDefeated() && flickerOff(e.FlashTimer),
		Health:     e.Health,
		MaxHealth:  e.MaxHealth,
	}
}

func enemyPose(e *types.Enemy) string {
	switch e.Mode {
	case types.EnemyModePursuing:
		return "walk"
	case types.EnemyModeAttacking:
		return "attack"
	case types.EnemyModeDefeated:
		return "defeated"
	}
	return "idle"
}

// flickerOff returns true on the hidden half of each flicker period.
func flickerOff(timer float64) bool {
	_, frac := math.Modf(timer * constants.EnemyFlickerRate)
	return frac < 0.5
}

func (w *World) pickupViews() []types.PickupView {
	var pickups []types.PickupView
	for _, p := range w.pickups {
		if p.Collected {
			continue
		}
		pickups = append(pickups, types.PickupView{
			ID:     p.ID,
			X:      p.Position.X - w.cameraX,
			Y:      p.Position.Y,
			Width:  p.Width,
			Height: p.Height,
		})
	}
	return pickups
}

func (w *World) effectViews() []types.EffectView {
	var effects []types.EffectView
	for _, e := range w.effects {
		effects = append(effects, types.EffectView{
			ID:    e.ID,
			X:     e.Position.X - w.cameraX,
			Y:     e.Position.Y,
			Timer: e.Timer,
		})
	}
	return effects
}
