package ui

import (
	"time"

	"github.com/gordonklaus/portaudio"

	"github.com/nes-core/fc-emu/nes"
)

// Audio drains samples from a Console on a timer and feeds them to a
// portaudio output stream through a channel, so the portaudio callback
// never blocks on the emulation goroutine.
type Audio struct {
	stream         *portaudio.Stream
	sampleRate     float64
	outputChannels int
	channel        chan float32
	done           chan struct{}
}

func NewAudio() *Audio {
	return &Audio{
		channel: make(chan float32, 8192),
		done:    make(chan struct{}),
	}
}

// RunAudio opens the default output device, starts draining console's
// audio ring buffer into the portaudio stream, and returns once the stream
// has started.
func (a *Audio) RunAudio(console *nes.Console) error {
	api, err := portaudio.DefaultHostApi()
	if err != nil {
		return err
	}

	parameters := portaudio.HighLatencyParameters(nil, api.DefaultOutputDevice)
	stream, err := portaudio.OpenStream(parameters, a.callback)
	if err != nil {
		return err
	}

	a.stream = stream
	a.sampleRate = parameters.SampleRate
	a.outputChannels = parameters.Output.Channels

	go a.drain(console)

	return stream.Start()
}

func (a *Audio) drain(console *nes.Console) {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			for _, sample := range console.DrainAudio() {
				select {
				case a.channel <- sample:
				default:
					// Buffer full: drop the sample rather than block the
					// emulation goroutine on a full-speed frame.
				}
			}
		}
	}
}

func (a *Audio) callback(out []float32) {
	var output float32
	for i := range out {
		if i%a.outputChannels == 0 {
			select {
			case sample := <-a.channel:
				output = sample
			default:
				output = 0
			}
		}
		out[i] = output
	}
}

// Stop closes the audio stream and its drain goroutine.
func (a *Audio) Stop() error {
	if a.stream == nil {
		return nil
	}
	close(a.done)
	return a.stream.Close()
}
