package nes

import "testing"

func TestConsoleStepReturnsHaltedErrorAfterKIL(t *testing.T) {
	console := newTestConsole(t)
	console.CPU.halted = true

	_, err := console.Step()
	if err == nil {
		t.Fatal("expected a HaltedError once the CPU has halted")
	}
	if _, ok := err.(*HaltedError); !ok {
		t.Errorf("err = %T, want *HaltedError", err)
	}
}

func TestConsoleRunFrameStopsOnHalt(t *testing.T) {
	console := newTestConsole(t)
	console.CPU.halted = true

	if err := console.RunFrame(); err == nil {
		t.Fatal("RunFrame should propagate the halted error instead of looping forever")
	}
}

func TestConsoleSetButtonsRoutesToCorrectPort(t *testing.T) {
	console := newTestConsole(t)
	console.SetButtons(1, [8]bool{true})
	console.SetButtons(2, [8]bool{false, false, true})

	if got := console.Controller1.Read(); got != 1 {
		t.Errorf("controller1 bit0 = %d, want 1", got)
	}
	if got := console.Controller2.Read(); got != 0 {
		t.Errorf("controller2 bit0 = %d, want 0", got)
	}
}

func TestConsoleDrainAudioClearsBuffer(t *testing.T) {
	console := newTestConsole(t)
	console.pushAudioSample(0.5)
	console.pushAudioSample(-0.5)

	drained := console.DrainAudio()
	if len(drained) != 2 {
		t.Fatalf("drained len = %d, want 2", len(drained))
	}
	if len(console.DrainAudio()) != 0 {
		t.Error("a second drain should return nothing until more samples are pushed")
	}
}
