package animations

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type Animation struct {
	// image is the image containing the animation frames.
	image *ebiten.Image
	// frameOX is the x offset of the first frame in the animation.
	frameOX int
	// frameOY is the y offset of the first frame in the animation.
	frameOY int
	// frameWidth is the width of each frame in the animation.
	frameWidth int
	// frameHeight is the height of each frame in the animation.
	frameHeight int
	// frameCount is the number of frames in the animation.
	frameCount int
	// frameSpeed is the number of updates before the frame index is incremented.
	frameSpeed int
	// isLooping is a boolean value indicating whether the animation restarts after the last frame.
	isLooping bool

	// updateCount is the number of times the animation has been updated.
	updateCount int
	// frameIndex is the current frame index.
	frameIndex int
}

type NewAnimationOptions struct {
	Image       *ebiten.Image
	FrameOX     int
	FrameOY     int
	FrameWidth  int
	FrameHeight int
	FrameCount  int
	FrameSpeed  int
	IsLooping   bool
}

func NewAnimation(opts NewAnimationOptions) *Animation {
	frameSpeed := opts.FrameSpeed
	if frameSpeed < 1 {
		frameSpeed = 1
	}
	frameCount := opts.FrameCount
	if frameCount < 1 {
		frameCount = 1
	}
	return &Animation{
		image:       opts.Image,
		frameOX:     opts.FrameOX,
		frameOY:     opts.FrameOY,
		frameWidth:  opts.FrameWidth,
		frameHeight: opts.FrameHeight,
		frameCount:  frameCount,
		frameSpeed:  frameSpeed,
		isLooping:   opts.IsLooping,
	}
}

func (a *Animation) Update() {
	a.updateCount++
	frame := a.updateCount / a.frameSpeed
	if !a.isLooping && frame >= a.frameCount {
		a.frameIndex = a.frameCount - 1
		return
	}
	a.frameIndex = frame % a.frameCount
}

func (a *Animation) Reset() {
	a.updateCount = 0
	a.frameIndex = 0
}

func (a *Animation) DefaultOptions() *ebiten.DrawImageOptions {
	return &ebiten.DrawImageOptions{
		Filter: ebiten.FilterNearest,
	}
}

func (a *Animation) CurrentImage() *ebiten.Image {
	sx, sy := a.frameOX+a.frameIndex*a.frameWidth, a.frameOY
	return a.image.SubImage(image.Rect(sx, sy, sx+a.frameWidth, sy+a.frameHeight)).(*ebiten.Image)
}

func (a *Animation) Size() (int, int) {
	return a.frameWidth, a.frameHeight
}

// Draw draws the current frame stretched to w x h with its top left corner at (x, y).
// The frame is mirrored when flipH is set and tinted with clr when it is not nil.
func (a *Animation) Draw(screen *ebiten.Image, x, y, w, h float64, flipH bool, clr color.Color) {
	fw, fh := a.Size()
	op := a.DefaultOptions()
	sx, sy := w/float64(fw), h/float64(fh)
	if flipH {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(w, 0)
	} else {
		op.GeoM.Scale(sx, sy)
	}
	op.GeoM.Translate(x, y)
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}
	screen.DrawImage(a.CurrentImage(), op)
}
