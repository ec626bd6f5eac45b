// Package ui hosts the interactive presentation layer: a fyne window that
// blits the console's framebuffer, maps keyboard events to controller 1,
// and drives a portaudio stream from the console's drained audio samples.
package ui

import (
	"image"
	"log"
	"time"

	"fyne.io/fyne"
	"fyne.io/fyne/app"
	"fyne.io/fyne/canvas"
	"fyne.io/fyne/driver/desktop"

	"github.com/nes-core/fc-emu/nes"
)

func keyParse(ev *fyne.KeyEvent) int {
	switch ev.Name {
	case "J":
		return nes.ButtonA
	case "K":
		return nes.ButtonB
	case "U":
		return nes.ButtonSelect
	case "I":
		return nes.ButtonStart
	case "W":
		return nes.ButtonUp
	case "S":
		return nes.ButtonDown
	case "A":
		return nes.ButtonLeft
	case "D":
		return nes.ButtonRight
	default:
		return -1
	}
}

var ctrl1 [8]bool

// OpenWindow opens an interactive window over console, runs it in real
// time on a background goroutine, and blocks until the window closes.
func OpenWindow(console *nes.Console) {
	myApp := app.New()
	w := myApp.NewWindow("fc-emu")
	w.Resize(fyne.NewSize(256, 240))
	myCanvas := w.Canvas()

	audio := NewAudio()
	if err := audio.RunAudio(console); err != nil {
		log.Printf("ui: audio disabled: %v", err)
	}

	go RunView(console)

	if deskCanvas, ok := w.Canvas().(desktop.Canvas); ok {
		deskCanvas.SetOnKeyDown(func(ev *fyne.KeyEvent) {
			if index := keyParse(ev); index >= 0 {
				ctrl1[index] = true
				console.SetButtons(1, ctrl1)
			}
		})
		deskCanvas.SetOnKeyUp(func(ev *fyne.KeyEvent) {
			if index := keyParse(ev); index >= 0 {
				ctrl1[index] = false
				console.SetButtons(1, ctrl1)
			}
		})
	}

	go changeContent(myCanvas, console)

	w.ShowAndRun()
	Stop()
	audio.Stop()
}

func changeContent(can fyne.Canvas, console *nes.Console) {
	overlay := newFPSOverlay()
	for {
		time.Sleep(time.Millisecond * 16)
		frame := copyFrame(console.Buffer())
		overlay.tick()
		overlay.draw(frame)
		can.SetContent(canvas.NewImageFromImage(frame))
	}
}

func copyFrame(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
