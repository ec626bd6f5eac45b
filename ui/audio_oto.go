package ui

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/ebitengine/oto/v3"
)

// StreamOto plays samples through the default output device using oto
// rather than portaudio, for headless callers (cmd/nesrun's --listen flag)
// that want to hear a run. Package ui also imports portaudio and fyne, so
// a caller of StreamOto still links both. It blocks until playback finishes.
func StreamOto(samples []float32, sampleRate int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return err
	}
	<-ready

	buf := new(bytes.Buffer)
	buf.Grow(len(samples) * 4)
	for _, s := range samples {
		if err := binary.Write(buf, binary.LittleEndian, s); err != nil {
			return err
		}
	}

	player := ctx.NewPlayer(buf)
	defer player.Close()
	player.Play()

	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}
