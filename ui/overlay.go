package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// fpsOverlay tracks a rolling frames-per-second estimate and stamps it onto
// the top-left corner of a copy of the console's framebuffer, the way the
// interactive binary's status line is drawn without needing a second fyne
// canvas object per frame.
type fpsOverlay struct {
	lastTick  time.Time
	lastCount int
	fps       float64
}

func newFPSOverlay() *fpsOverlay {
	return &fpsOverlay{lastTick: time.Now()}
}

func (o *fpsOverlay) tick() {
	o.lastCount++
	if elapsed := time.Since(o.lastTick); elapsed >= time.Second {
		o.fps = float64(o.lastCount) / elapsed.Seconds()
		o.lastCount = 0
		o.lastTick = time.Now()
	}
}

func (o *fpsOverlay) draw(frame *image.RGBA) {
	label := fmt.Sprintf("%.0f fps", o.fps)
	d := &font.Drawer{
		Dst:  frame,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(2, 11),
	}
	d.DrawString(label)
}
