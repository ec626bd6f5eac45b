package ui

import (
	"log"
	"time"

	"github.com/nes-core/fc-emu/nes"
)

var stop = false

func floatSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) * 1e-9
}

// RunView drives console in real time, stepping it by however much
// wall-clock time elapsed since the previous iteration, until Stop is
// called.
func RunView(console *nes.Console) {
	last := floatSeconds(time.Now())
	for !stop {
		now := floatSeconds(time.Now())
		if err := console.StepSeconds(now - last); err != nil {
			log.Printf("ui: %v", err)
			return
		}
		last = now
	}
}

// Stop ends the RunView loop for the current process without os.Exit; the
// teacher's simulator never exposed one, since its window close handler
// just exited the process directly. OpenWindow calls it once the window
// closes.
func Stop() {
	stop = true
}
