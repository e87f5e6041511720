package animations

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Frame size of the generated sheets. Frames are stretched to the actor's draw size.
const (
	sheetFrameWidth  = 32
	sheetFrameHeight = 64
)

type pose int

const (
	poseIdle pose = iota
	poseWalk
	poseStrike
	poseDown
)

type sheetSpec struct {
	pose       pose
	frameCount int
	frameSpeed int
	looping    bool
}

// actorSheets lists the sprite keys an actor kind can show, without the kind prefix.
var actorSheets = map[string]sheetSpec{
	"idle":     {pose: poseIdle, frameCount: 2, frameSpeed: 30, looping: true},
	"walk":     {pose: poseWalk, frameCount: 4, frameSpeed: 8, looping: true},
	"punch":    {pose: poseStrike, frameCount: 3, frameSpeed: 6, looping: false},
	"attack":   {pose: poseStrike, frameCount: 3, frameSpeed: 6, looping: false},
	"defeated": {pose: poseDown, frameCount: 3, frameSpeed: 10, looping: false},
}

var kindColors = map[string]color.RGBA{
	"player": {R: 60, G: 120, B: 220, A: 255},
	"thug":   {R: 220, G: 130, B: 40, A: 255},
	"boss":   {R: 150, G: 40, B: 170, A: 255},
}

// kindSheets lists the poses each kind has: players punch, enemies attack and go down.
var kindSheets = map[string][]string{
	"player": {"idle", "walk", "punch"},
	"thug":   {"idle", "walk", "attack", "defeated"},
	"boss":   {"idle", "walk", "attack", "defeated"},
}

var (
	sheetsOnce sync.Once
	sheets     map[string]*ebiten.Image
)

// NewActorAnimations returns a fresh set of animations for an actor kind, keyed by
// sprite key (for example "thug_walk"). Sheets are shared, frame counters are not.
func NewActorAnimations(kind string) map[string]*Animation {
	sheetsOnce.Do(buildSheets)

	anims := make(map[string]*Animation)
	for name, spec := range actorSheets {
		key := kind + "_" + name
		img, ok := sheets[key]
		if !ok {
			continue
		}
		anims[key] = NewAnimation(NewAnimationOptions{
			Image:       img,
			FrameWidth:  sheetFrameWidth,
			FrameHeight: sheetFrameHeight,
			FrameCount:  spec.frameCount,
			FrameSpeed:  spec.frameSpeed,
			IsLooping:   spec.looping,
		})
	}
	return anims
}

func buildSheets() {
	sheets = make(map[string]*ebiten.Image)
	for kind, names := range kindSheets {
		for _, name := range names {
			sheets[kind+"_"+name] = newSheet(actorSheets[name], kindColors[kind])
		}
	}
}

// newSheet draws a simple figure for every frame of a pose.
func newSheet(spec sheetSpec, body color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(sheetFrameWidth*spec.frameCount, sheetFrameHeight)
	skin := color.RGBA{R: 240, G: 200, B: 160, A: 255}
	legs := color.RGBA{R: body.R / 2, G: body.G / 2, B: body.B / 2, A: 255}

	for i := 0; i < spec.frameCount; i++ {
		ox := float32(i * sheetFrameWidth)
		switch spec.pose {
		case poseDown:
			// the figure sinks a little further every frame
			sink := float32(i * 12)
			vector.DrawFilledRect(img, ox+4, 20+sink, 24, 28-sink/2, body, false)
			vector.DrawFilledRect(img, ox+10, 8+sink, 12, 12, skin, false)
		default:
			bob := float32(0)
			if spec.pose == poseIdle && i%2 == 1 {
				bob = 1
			}
			vector.DrawFilledRect(img, ox+10, 2+bob, 12, 12, skin, false)
			vector.DrawFilledRect(img, ox+6, 14+bob, 20, 26, body, false)

			stride := float32(0)
			if spec.pose == poseWalk {
				stride = float32((i%2)*2-1) * 3
			}
			vector.DrawFilledRect(img, ox+7+stride, 40, 7, 24, legs, false)
			vector.DrawFilledRect(img, ox+18-stride, 40, 7, 24, legs, false)

			if spec.pose == poseStrike {
				// the arm extends towards the facing side, which is to the right in the sheet
				reach := float32(4 + i*4)
				vector.DrawFilledRect(img, ox+20, 18, reach, 6, skin, false)
			}
		}
	}
	return img
}
