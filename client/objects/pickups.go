package objects

import (
	"image/color"

	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pickupColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	crossColor  = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// PickupsObject draws the uncollected health pickups.
type PickupsObject struct {
	*BaseObject

	pickups []gametypes.PickupView
}

func NewPickupsObject(id string) *PickupsObject {
	return &PickupsObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *PickupsObject) SetPickups(pickups []gametypes.PickupView) {
	o.pickups = pickups
}

func (o *PickupsObject) Draw(screen *ebiten.Image) {
	for _, p := range o.pickups {
		x, y, w, h := float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height)
		vector.DrawFilledRect(screen, x, y, w, h, pickupColor, false)
		vector.DrawFilledRect(screen, x+w/2-4, y+6, 8, h-12, crossColor, false)
		vector.DrawFilledRect(screen, x+w/2-14, y+h/2-4, 28, 8, crossColor, false)
	}
}
