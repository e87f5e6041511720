package objects

import (
	"image/color"

	"github.com/cbodonnell/brawler/client/fonts"
	"github.com/cbodonnell/brawler/pkg/game/constants"
	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

var powColor = color.RGBA{R: 255, G: 220, B: 0, A: 255}

// EffectsObject draws a POW marker for every active hit effect. Markers fade as their timer runs out.
type EffectsObject struct {
	*BaseObject

	effects []gametypes.EffectView
}

func NewEffectsObject(id string) *EffectsObject {
	return &EffectsObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *EffectsObject) SetEffects(effects []gametypes.EffectView) {
	o.effects = effects
}

func (o *EffectsObject) Draw(screen *ebiten.Image) {
	const t = "POW!"
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, t)
	for _, e := range o.effects {
		alpha := float32(e.Timer / constants.EffectDuration)
		if alpha > 1 {
			alpha = 1
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(e.X-float64(bounds.Max.X>>6)/2, e.Y)
		op.ColorScale.ScaleWithColor(powColor)
		op.ColorScale.ScaleAlpha(alpha)
		text.DrawWithOptions(screen, t, f, op)
	}
}
