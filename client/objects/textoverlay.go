package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/brawler/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var overlayShade = color.RGBA{A: 140}

// TextOverlayObject dims the screen and shows a centred title with an optional hint below it.
// Nothing is drawn while the title is empty.
type TextOverlayObject struct {
	*BaseObject

	title string
	hint  string
}

func NewTextOverlayObject(id string) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *TextOverlayObject) SetText(title, hint string) {
	o.title = title
	o.hint = hint
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if o.title == "" {
		return
	}
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh), overlayShade, false)

	drawCentred(screen, strings.ToUpper(o.title), fonts.TTFLargeFont, sw/2, sh/2)
	if o.hint != "" {
		drawCentred(screen, o.hint, fonts.TTFNormalFont, sw/2, sh/2+60)
	}
}

func drawCentred(screen *ebiten.Image, t string, f font.Face, cx, cy float64) {
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(bounds.Max.X>>6)/2, cy-float64(bounds.Max.Y>>6)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
