package nes

import (
	"image"

	"github.com/nes-core/fc-emu/ines"
)

// Console is the coordinator that ties CPU, PPU, APU, Bus and Mapper
// together and drives them in lockstep: one CPU step, three PPU dots per
// CPU cycle consumed, one APU tick per CPU cycle. It is the only type
// outward-facing callers (ui, cmd/nes, cmd/nesrun) construct directly.
type Console struct {
	CPU         *CPU
	PPU         *PPU
	APU         *APU
	Card        *Cartridge
	Controller1 *Controller
	Controller2 *Controller
	Mapper      Mapper

	audioBuf []float32
}

const defaultSampleRate = 44100.0

// NewConsole loads romPath as an iNES ROM and wires up a fresh console
// ready to Reset and Step.
func NewConsole(romPath string) (*Console, error) {
	rom, err := ines.Load(romPath)
	if err != nil {
		return nil, err
	}
	return newConsoleFromROM(rom)
}

// NewConsoleFromBytes builds a console from an already-loaded iNES image,
// for callers (tests, embedders) that don't have a filesystem path.
func NewConsoleFromBytes(data []byte) (*Console, error) {
	rom, err := ines.Parse(data)
	if err != nil {
		return nil, err
	}
	return newConsoleFromROM(rom)
}

func mirrorFromINES(m ines.Mirroring) Mirroring {
	switch m {
	case ines.MirrorVertical:
		return MirrorVertical
	case ines.MirrorFour:
		return MirrorFour
	default:
		return MirrorHorizontal
	}
}

func newConsoleFromROM(rom *ines.ROM) (*Console, error) {
	card := NewCartridge(rom.PRG, rom.CHR, rom.Mapper, mirrorFromINES(rom.Mirror), rom.Battery)

	console := &Console{
		Card:        card,
		Controller1: NewController(),
		Controller2: NewController(),
	}

	mapper, err := NewMapper(card)
	if err != nil {
		return nil, err
	}
	console.Mapper = mapper
	console.CPU = NewCPU(console)
	console.PPU = NewPPU(console)
	console.APU = NewAPU(console)
	console.APU.sampleRate = float64(CPUFrequency) / defaultSampleRate
	console.APU.outputWork = console.pushAudioSample

	return console, nil
}

// Reset re-runs the CPU's power-on/reset sequence only; PPU, APU (including
// the frame sequencer) and mapper state are left as they are.
func (console *Console) Reset() {
	console.CPU.Reset()
}

// Step advances the console by one CPU instruction (or one stalled cycle),
// ticking the PPU three times and the APU once per CPU cycle consumed, and
// polling the mapper's and the APU frame sequencer's IRQ lines afterward the
// way real wired-OR IRQ hardware would: both are level-sensitive, so a line
// held high re-asserts TriggerIRQ every step until whatever raised it clears
// it, rather than firing once and being lost if I was set at the time. It
// returns the number of CPU cycles consumed, and a *HaltedError once the CPU
// has executed a KIL/JAM opcode.
func (console *Console) Step() (int64, error) {
	if console.CPU.halted {
		return 0, &HaltedError{}
	}
	cpuCycles := console.CPU.Step()
	for i := int64(0); i < cpuCycles*3; i++ {
		console.PPU.Step()
	}
	for i := int64(0); i < cpuCycles; i++ {
		console.APU.Step()
	}
	if console.Mapper.IRQPending() || console.APU.IRQPending() {
		console.CPU.TriggerIRQ()
	}
	return cpuCycles, nil
}

// RunFrame steps the console until the PPU completes one full frame, or the
// CPU halts.
func (console *Console) RunFrame() error {
	frame := console.PPU.Frame
	for console.PPU.Frame == frame {
		if _, err := console.Step(); err != nil {
			return err
		}
	}
	return nil
}

// StepSeconds advances the console by approximately the given wall-clock
// duration, at the NTSC CPU clock rate, or until the CPU halts.
func (console *Console) StepSeconds(seconds float64) error {
	cycles := int64(CPUFrequency * seconds)
	for cycles > 0 {
		n, err := console.Step()
		if err != nil {
			return err
		}
		cycles -= n
	}
	return nil
}

// SetButtons latches the given button snapshot into controller 1 or 2 (port
// 1 or 2); port must be 1 or 2.
func (console *Console) SetButtons(port int, buttons [8]bool) {
	switch port {
	case 1:
		console.Controller1.SetButtons(buttons)
	case 2:
		console.Controller2.SetButtons(buttons)
	}
}

// Buffer returns the completed framebuffer for the most recently finished
// frame; the PPU double-buffers so this is safe to read while the next
// frame is being rendered.
func (console *Console) Buffer() *image.RGBA {
	return console.PPU.front
}

// PeekRAM reads internal work RAM at addr for diagnostics, bypassing the
// normal dispatch table.
func (console *Console) PeekRAM(addr uint16) byte {
	return console.CPU.PeekRAM(addr)
}

func (console *Console) pushAudioSample(sample float32) {
	console.audioBuf = append(console.audioBuf, sample)
}

// DrainAudio returns every sample accumulated since the last call and
// clears the internal buffer; callers (ui's portaudio stream, cmd/nesrun's
// WAV/oto sinks) are expected to call it once per output buffer period.
func (console *Console) DrainAudio() []float32 {
	drained := console.audioBuf
	console.audioBuf = nil
	return drained
}
