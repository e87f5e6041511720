package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/brawler/client/fonts"
	"github.com/cbodonnell/brawler/pkg/game/constants"
	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	playerBarColor = color.RGBA{R: 60, G: 200, B: 80, A: 255}
	bossBarColor   = color.RGBA{R: 170, G: 40, B: 200, A: 255}
)

const (
	hudMargin    = 20
	hudBarWidth  = 300
	hudBarHeight = 20
)

// HUDObject draws the player's health bar and, while the boss is on screen, the boss bar.
type HUDObject struct {
	*BaseObject

	ui gametypes.UIState
}

func NewHUDObject(id string) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *HUDObject) SetUIState(ui gametypes.UIState) {
	o.ui = ui
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	drawBar(screen, hudMargin, hudMargin, o.ui.PlayerHealth, o.ui.PlayerMaxHealth, playerBarColor)
	drawLabel(screen, hudMargin, hudMargin+hudBarHeight+22, fmt.Sprintf("HP %d/%d", o.ui.PlayerHealth, o.ui.PlayerMaxHealth))

	if o.ui.Boss == nil {
		return
	}
	x := float32(constants.ViewportWidth) - hudMargin - hudBarWidth
	drawBar(screen, x, hudMargin, o.ui.Boss.Health, o.ui.Boss.MaxHealth, bossBarColor)
	drawLabel(screen, x, hudMargin+hudBarHeight+22, "BOSS")
}

func drawBar(screen *ebiten.Image, x, y float32, value, max int, clr color.Color) {
	vector.DrawFilledRect(screen, x, y, hudBarWidth, hudBarHeight, healthBarBack, false)
	if max > 0 && value > 0 {
		vector.DrawFilledRect(screen, x, y, hudBarWidth*float32(value)/float32(max), hudBarHeight, clr, false)
	}
	vector.StrokeRect(screen, x, y, hudBarWidth, hudBarHeight, 2, color.White, false)
}

func drawLabel(screen *ebiten.Image, x, y float32, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, label, fonts.TTFSmallFont, op)
}
