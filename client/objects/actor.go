package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/brawler/client/animations"
	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	attackTint      = color.RGBA{R: 255, G: 90, B: 90, A: 255}
	healthBarBack   = color.RGBA{R: 40, G: 40, B: 40, A: 200}
	healthBarFill   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	debugHurtboxClr = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// ActorObject draws one actor from the most recent snapshot.
type ActorObject struct {
	*BaseObject

	view       gametypes.ActorView
	animations map[string]*animations.Animation
	sprite     string
	debug      bool
}

type NewActorObjectOptions struct {
	// View is the initial render state of the actor.
	View gametypes.ActorView
	// Debug draws the hurtbox outline.
	Debug bool
	// ZIndex is the draw order among the other actors.
	ZIndex int
}

func NewActorObject(id string, opts NewActorObjectOptions) *ActorObject {
	return &ActorObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		view:       opts.View,
		animations: animations.NewActorAnimations(string(opts.View.Kind)),
		sprite:     opts.View.Sprite,
		debug:      opts.Debug,
	}
}

func (o *ActorObject) SetView(view gametypes.ActorView) {
	o.view = view
}

func (o *ActorObject) Update() error {
	if o.view.Sprite != o.sprite {
		o.sprite = o.view.Sprite
		if anim, ok := o.animations[o.sprite]; ok {
			anim.Reset()
		}
	}
	if anim, ok := o.animations[o.sprite]; ok {
		anim.Update()
	}
	return nil
}

func (o *ActorObject) Draw(screen *ebiten.Image) {
	v := o.view
	if v.Hidden {
		return
	}

	// feet stay on the hurtbox bottom when the draw size differs from it
	x := v.X - (v.DrawWidth-v.Width)/2
	y := v.Y + v.Height - v.DrawHeight
	if anim, ok := o.animations[o.sprite]; ok {
		var tint color.Color
		if v.Flash {
			tint = attackTint
		}
		anim.Draw(screen, x, y, v.DrawWidth, v.DrawHeight, v.FacingLeft, tint)
	}

	if v.Kind != gametypes.ActorKindPlayer && v.MaxHealth > 1 {
		o.drawHealthBar(screen)
	}
	if o.debug {
		vector.StrokeRect(screen, float32(v.X), float32(v.Y), float32(v.Width), float32(v.Height), 1, debugHurtboxClr, false)
	}
}

func (o *ActorObject) drawHealthBar(screen *ebiten.Image) {
	v := o.view
	const barHeight = 6
	fill := float32(v.Width) * float32(v.Health) / float32(v.MaxHealth)
	vector.DrawFilledRect(screen, float32(v.X), float32(v.Y)-barHeight-4, float32(v.Width), barHeight, healthBarBack, false)
	vector.DrawFilledRect(screen, float32(v.X), float32(v.Y)-barHeight-4, fill, barHeight, healthBarFill, false)
}

// ActorsObject keeps one ActorObject per actor in the snapshot, ordered back to front.
type ActorsObject struct {
	*SortedZIndexObject

	debug bool
}

func NewActorsObject(id string, debug bool) *ActorsObject {
	return &ActorsObject{
		SortedZIndexObject: NewSortedZIndexObject(id, nil),
		debug:              debug,
	}
}

// Sync adds, updates and removes actors to match the snapshot. The snapshot order is the draw order.
func (o *ActorsObject) Sync(views []gametypes.ActorView) error {
	seen := make(map[string]struct{}, len(views))
	for i, v := range views {
		id := actorObjectID(v)
		seen[id] = struct{}{}

		child, ok := o.GetChild(id).(*ActorObject)
		if !ok {
			child = NewActorObject(id, NewActorObjectOptions{
				View:   v,
				Debug:  o.debug,
				ZIndex: i,
			})
			if err := o.AddChild(id, child); err != nil {
				return fmt.Errorf("failed to add actor %s: %w", id, err)
			}
			continue
		}
		child.SetView(v)
		if err := o.SetChildZIndex(id, i); err != nil {
			return fmt.Errorf("failed to reorder actor %s: %w", id, err)
		}
	}

	for _, child := range snapshotChildren(o) {
		if _, ok := seen[child.GetID()]; ok {
			continue
		}
		if err := o.RemoveChild(child.GetID()); err != nil {
			return fmt.Errorf("failed to remove actor %s: %w", child.GetID(), err)
		}
	}
	return nil
}

func actorObjectID(v gametypes.ActorView) string {
	if v.Kind == gametypes.ActorKindPlayer {
		return string(v.Kind)
	}
	return fmt.Sprintf("%s-%d", v.Kind, v.ID)
}
