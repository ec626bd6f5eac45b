package nes

import "testing"

func TestCPUResetVector(t *testing.T) {
	console := newTestConsole(t)
	console.Card.PRG[0x7ffc] = 0x34
	console.Card.PRG[0x7ffd] = 0x12
	console.CPU.Reset()

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"PC", console.CPU.PC, uint16(0x1234)},
		{"SP", console.CPU.SP, byte(0xfd)},
		{"I", console.CPU.I, byte(1)},
		{"U", console.CPU.U, byte(1)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestCPUStackPushPull(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.push(0x42)
	cpu.push16(0xBEEF)

	got16 := cpu.pull16()
	got8 := cpu.pull()

	if got16 != 0xBEEF {
		t.Errorf("pull16() = 0x%04X, want 0xBEEF", got16)
	}
	if got8 != 0x42 {
		t.Errorf("pull() = 0x%02X, want 0x42", got8)
	}
}

func TestCPUAdcSetsCarryAndOverflow(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.A = 0x50
	cpu.C = 0
	console.Card.SRAM[0] = 0x50 // $6000

	cpu.adc(&stepInfo{address: 0x6000})

	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"A", cpu.A, byte(0xA0)},
		{"V", cpu.V, byte(1)}, // signed overflow: pos + pos = neg
		{"C", cpu.C, byte(0)},
		{"N", cpu.N, byte(1)},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("%s: got %v, want %v", test.name, test.got, test.want)
		}
	}
}

func TestCPUSbcBorrow(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.A = 0x10
	cpu.C = 1 // no borrow
	console.Card.SRAM[0] = 0x20

	cpu.sbc(&stepInfo{address: 0x6000})

	if cpu.A != 0xF0 {
		t.Errorf("A = 0x%02X, want 0xF0", cpu.A)
	}
	if cpu.C != 0 {
		t.Errorf("C = %d, want 0 (result underflowed)", cpu.C)
	}
}

func TestCPUBranchAddsExtraCycleOnPageCross(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU

	before := cpu.Cycles
	cpu.addBranchCycles(&stepInfo{pc: 0x00FF, address: 0x0105})
	if cpu.Cycles-before != 2 {
		t.Errorf("cycles added = %d, want 2 for a taken cross-page branch", cpu.Cycles-before)
	}

	before = cpu.Cycles
	cpu.addBranchCycles(&stepInfo{pc: 0x0010, address: 0x0020})
	if cpu.Cycles-before != 1 {
		t.Errorf("cycles added = %d, want 1 for a taken same-page branch", cpu.Cycles-before)
	}
}

func TestCPUBrkSetsBFlagOnlyOnStack(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	console.Card.PRG[0x7ffe] = 0x00
	console.Card.PRG[0x7fff] = 0x80

	cpu.brk(&stepInfo{})

	pushed := cpu.Read(0x100 | uint16(cpu.SP+1))
	if pushed&0x10 == 0 {
		t.Error("BRK should push status with the B flag set")
	}
	if cpu.B != 0 {
		t.Error("B is not a persistent register; it must stay 0 outside the pushed byte")
	}
}

func TestCPUIrqDoesNotSetBFlagOnStack(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	console.Card.PRG[0x7ffe] = 0x00
	console.Card.PRG[0x7fff] = 0x80

	cpu.irq()

	pushed := cpu.Read(0x100 | uint16(cpu.SP+1))
	if pushed&0x10 != 0 {
		t.Error("hardware IRQ must not set the B flag on the pushed status byte")
	}
}

func TestCPUKilHalts(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.kil(&stepInfo{})
	if !cpu.halted {
		t.Fatal("kil should set halted")
	}
	if cycles := cpu.Step(); cycles != 1 {
		t.Errorf("Step() after halt = %d, want 1", cycles)
	}
	if cpu.PC != 0 {
		t.Error("Step() after halt must not advance PC")
	}
}

func TestCPUIllegalSlo(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.A = 0x01
	console.Card.SRAM[0] = 0x80 // $6000, top bit set

	cpu.slo(&stepInfo{address: 0x6000})

	if cpu.C != 1 {
		t.Errorf("C = %d, want 1 (old bit 7 of shifted value)", cpu.C)
	}
	if got := cpu.Read(0x6000); got != 0x00 {
		t.Errorf("memory = 0x%02X, want 0x00 (0x80 shifted left)", got)
	}
	if cpu.A != 0x01 {
		t.Errorf("A = 0x%02X, want 0x01 (0x01 | 0x00)", cpu.A)
	}
}

func TestCPUIllegalDcp(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.A = 0x10
	console.Card.SRAM[0] = 0x06 // $6000

	cpu.dcp(&stepInfo{address: 0x6000})

	if got := cpu.Read(0x6000); got != 0x05 {
		t.Errorf("memory = 0x%02X, want 0x05", got)
	}
	if cpu.C != 1 {
		t.Error("C should be set: A (0x10) >= decremented value (0x05)")
	}
}

func TestCPUIllegalAxs(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.A = 0xFF
	cpu.X = 0x0F
	console.Card.SRAM[0] = 0x05 // $6000

	cpu.axs(&stepInfo{address: 0x6000})

	if cpu.X != 0x0A {
		t.Errorf("X = 0x%02X, want 0x0A ((0xFF & 0x0F) - 0x05)", cpu.X)
	}
	if cpu.C != 1 {
		t.Error("C should be set: no borrow occurred")
	}
}
