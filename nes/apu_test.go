package nes

import "testing"

func TestAPUWriteStatusEnablesAndDisablesChannels(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU

	apu.writeStatus(0x0F) // enable all four channels
	if !apu.pulse1.enabled || !apu.pulse2.enabled || !apu.triangle.enabled || !apu.noise.enabled {
		t.Fatal("writeStatus(0x0F) should enable pulse1, pulse2, triangle, and noise")
	}

	apu.pulse1.lengthValue = 5
	apu.writeStatus(0x00) // disable everything
	if apu.pulse1.enabled {
		t.Error("writeStatus(0x00) should disable pulse1")
	}
	if apu.pulse1.lengthValue != 0 {
		t.Error("disabling a channel should zero its length counter")
	}
}

func TestAPUReadStatusReportsNonzeroLengthCounters(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU

	apu.pulse1.lengthValue = 1
	apu.noise.lengthValue = 1
	if got := apu.readStatus(0x4015); got&0x01 == 0 {
		t.Error("readStatus should report bit 0 set when pulse1's length counter is nonzero")
	}
	if got := apu.readStatus(0x4015); got&0x08 == 0 {
		t.Error("readStatus should report bit 3 set when noise's length counter is nonzero")
	}
}

func TestAPUWriteLengthLooksUpTable(t *testing.T) {
	p := &Pulse{}
	p.writeLength(0x08) // index (0x08>>3)&0x1f = 1
	if p.lengthValue != lengthTable[1] {
		t.Errorf("lengthValue = %d, want lengthTable[1] = %d", p.lengthValue, lengthTable[1])
	}
}

func TestAPUPulseTimerHighResetsDutyAndStartsEnvelope(t *testing.T) {
	p := &Pulse{dutyValue: 5}
	p.writeTimerHigh(0x03)
	if p.dutyValue != 0 {
		t.Errorf("dutyValue = %d, want 0 after writeTimerHigh", p.dutyValue)
	}
	if !p.envelopeStart {
		t.Error("writeTimerHigh should set envelopeStart")
	}
	if p.timerPeriod&0x700 != 0x300 {
		t.Errorf("timerPeriod high bits = %#x, want 0x300", p.timerPeriod&0x700)
	}
}

func TestAPUPulseOutputSilencedByLengthCounter(t *testing.T) {
	p := &Pulse{enabled: true, dutyMode: 2, timerPeriod: 100}
	p.lengthValue = 0
	if got := p.output(); got != 0 {
		t.Errorf("output() = %d, want 0 when lengthValue is 0", got)
	}
}

func TestAPUPulseOutputSilencedByTimerOutOfRange(t *testing.T) {
	p := &Pulse{enabled: true, lengthValue: 1, dutyMode: 2, dutyValue: 1}
	p.timerPeriod = 4 // below the 8-period mute threshold
	if got := p.output(); got != 0 {
		t.Errorf("output() = %d, want 0 when timerPeriod < 8", got)
	}
	p.timerPeriod = 0x900 // above the 0x800 mute threshold
	if got := p.output(); got != 0 {
		t.Errorf("output() = %d, want 0 when timerPeriod > 0x800", got)
	}
}

func TestAPUWriteFrameCounterSelectsMode(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU
	apu.writeFrameCounter(0x80) // bit 7 set: 5-step mode
	if apu.frameMode != 1 {
		t.Errorf("frameMode = %d, want 1", apu.frameMode)
	}
	if apu.frameForbidIRQ != 0 {
		t.Errorf("frameForbidIRQ = %d, want 0", apu.frameForbidIRQ)
	}
}

func TestAPUTriggerIRQRespectsForbidFlag(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU

	apu.frameForbidIRQ = 1
	apu.triggerIRQ()
	if apu.IRQPending() {
		t.Error("triggerIRQ should not latch frameIRQ while frameForbidIRQ is set")
	}

	apu.frameForbidIRQ = 0
	apu.triggerIRQ()
	if !apu.IRQPending() {
		t.Error("triggerIRQ should latch frameIRQ when not forbidden")
	}
}

func TestAPUReadStatusClearsFrameIRQ(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU

	apu.triggerIRQ()
	if status := apu.readStatus(0x4015); status&0x40 == 0 {
		t.Fatal("readStatus should report bit 6 set while a frame IRQ is pending")
	}
	if apu.IRQPending() {
		t.Error("readStatus should clear the frame IRQ flag as a side effect of the read")
	}
	if status := apu.readStatus(0x4015); status&0x40 != 0 {
		t.Error("a second readStatus should no longer report the frame IRQ bit")
	}
}

func TestAPUFrameIRQIsLevelSensitiveAcrossConsoleSteps(t *testing.T) {
	console := newTestConsole(t)
	console.CPU.I = 1 // mask IRQs, as if the CPU were mid-handler

	console.APU.triggerIRQ()
	if _, err := console.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if console.CPU.interrupt == interruptIRQ {
		t.Fatal("TriggerIRQ should still be masked while I is set")
	}
	if !console.APU.IRQPending() {
		t.Fatal("the frame IRQ flag should still be held pending, not dropped, while masked")
	}

	console.CPU.Write(console.CPU.PC, 0xEA) // NOP, so the next instruction does not set I itself
	console.CPU.I = 0
	if _, err := console.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if console.CPU.interrupt != interruptIRQ {
		t.Error("once I clears, Console.Step should re-assert the still-pending frame IRQ")
	}
}

func TestAPUWriteFrameCounterFiveStepClocksLinearCounter(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU

	apu.triangle.linearReloadValue = 20
	apu.triangle.lengthReload = true
	apu.writeFrameCounter(0x80) // bit 7 set: 5-step mode, immediate clock

	if apu.triangle.linearValue != 20 {
		t.Errorf("triangle.linearValue = %d, want 20 (stepLinear should run on the immediate 5-step clock)", apu.triangle.linearValue)
	}
}

func TestAPUSendSampleCallsOutputWork(t *testing.T) {
	console := newTestConsole(t)
	apu := console.APU
	apu.pulse1.enabled = true
	apu.pulse1.lengthValue = 1
	apu.pulse1.dutyMode = 2
	apu.pulse1.dutyValue = 1
	apu.pulse1.timerPeriod = 100
	apu.pulse1.constVolume = 10

	before := len(console.audioBuf)
	apu.sendSample()
	if len(console.audioBuf) != before+1 {
		t.Errorf("audioBuf grew by %d samples, want 1", len(console.audioBuf)-before)
	}
}
