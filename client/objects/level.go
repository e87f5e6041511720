package objects

import (
	"image/color"

	"github.com/cbodonnell/brawler/pkg/game/constants"
	gametypes "github.com/cbodonnell/brawler/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor      = color.RGBA{R: 40, G: 44, B: 70, A: 255}
	sidewalkColor = color.RGBA{R: 110, G: 110, B: 115, A: 255}
	curbColor     = color.RGBA{R: 70, G: 70, B: 75, A: 255}
	windowColor   = color.RGBA{R: 230, G: 210, B: 120, A: 255}
)

var buildingColors = []color.RGBA{
	{R: 120, G: 70, B: 60, A: 255},
	{R: 80, G: 90, B: 110, A: 255},
	{R: 100, G: 100, B: 70, A: 255},
}

// StreetObject draws the background segments that are on screen and the walkable lane.
type StreetObject struct {
	*BaseObject

	segments []gametypes.SegmentView
}

func NewStreetObject(id string) *StreetObject {
	return &StreetObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *StreetObject) SetSegments(segments []gametypes.SegmentView) {
	o.segments = segments
}

func (o *StreetObject) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	laneTop := float32(constants.LaneTop)
	for _, s := range o.segments {
		o.drawSegment(screen, s, laneTop)
	}

	vector.DrawFilledRect(screen, 0, laneTop, float32(constants.ViewportWidth), float32(constants.ViewportHeight)-laneTop, sidewalkColor, false)
	vector.DrawFilledRect(screen, 0, laneTop-6, float32(constants.ViewportWidth), 6, curbColor, false)
}

// drawSegment draws a row of buildings. Segment indices pick the facade so neighbours differ.
func (o *StreetObject) drawSegment(screen *ebiten.Image, s gametypes.SegmentView, laneTop float32) {
	const buildingsPerSegment = 4
	width := float32(s.Width) / buildingsPerSegment
	for b := 0; b < buildingsPerSegment; b++ {
		clr := buildingColors[(s.Index*buildingsPerSegment+b)%len(buildingColors)]
		height := float32(220 + 40*((s.Index+b)%3))
		x := float32(s.X) + float32(b)*width
		vector.DrawFilledRect(screen, x+4, laneTop-height, width-8, height, clr, false)
		for row := float32(0); row < height-60; row += 50 {
			vector.DrawFilledRect(screen, x+24, laneTop-height+20+row, 30, 24, windowColor, false)
			vector.DrawFilledRect(screen, x+width-58, laneTop-height+20+row, 30, 24, windowColor, false)
		}
	}
}
