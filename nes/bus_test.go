package nes

import "testing"

func TestBusRAMMirroring(t *testing.T) {
	console := newTestConsole(t)
	bus := console.CPU.Bus

	bus.Write(0x0000, 0x42)

	tests := []struct {
		addr uint16
		want byte
	}{
		{0x0000, 0x42},
		{0x0800, 0x42}, // first mirror
		{0x1000, 0x42}, // second mirror
		{0x1800, 0x42}, // third mirror
	}
	for _, test := range tests {
		if got := bus.Read(test.addr); got != test.want {
			t.Errorf("Read(0x%04X) = 0x%02X, want 0x%02X", test.addr, got, test.want)
		}
	}
}

func TestBusOpenBusLatch(t *testing.T) {
	console := newTestConsole(t)
	bus := console.CPU.Bus

	bus.Read(0x4018) // unmapped, returns whatever was last on the bus (0)
	bus.Write(0x0000, 0x99)
	bus.Read(0x0000) // refresh the latch to a known value

	got := bus.Read(0x4018)
	if got != 0x99 {
		t.Errorf("Read(0x4018) = 0x%02X, want 0x99 (last value seen on the bus)", got)
	}
}

func TestBusControllerStrobeWritesBothPorts(t *testing.T) {
	console := newTestConsole(t)
	console.SetButtons(1, [8]bool{true})
	console.SetButtons(2, [8]bool{false, true})

	console.CPU.Write(0x4016, 1)
	console.CPU.Write(0x4016, 0)

	if got := console.CPU.Read(0x4016); got != 1 {
		t.Errorf("controller 1 first bit = %d, want 1 (A pressed)", got)
	}
	if got := console.CPU.Read(0x4017); got != 0 {
		t.Errorf("controller 2 first bit = %d, want 0 (A not pressed)", got)
	}
}

func TestBusOAMDMAStallsCPU(t *testing.T) {
	console := newTestConsole(t)
	cpu := console.CPU
	cpu.Cycles = 0

	cpu.Write(0x4014, 0x00)

	if cpu.stall != 513 {
		t.Errorf("stall = %d, want 513 on an even starting cycle", cpu.stall)
	}
}

func TestBusOAMDMACopiesPage(t *testing.T) {
	console := newTestConsole(t)
	for i := 0; i < 256; i++ {
		console.CPU.Bus.ram[i] = byte(i)
	}

	console.CPU.Write(0x4014, 0x00) // page 0, which is work RAM

	for i := 0; i < 256; i++ {
		if got := console.PPU.oamData[i]; got != byte(i) {
			t.Fatalf("oamData[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestPPUBusNametableMirroring(t *testing.T) {
	console := newTestConsole(t)
	console.Card.Mirror = MirrorVertical
	ppuBus := console.PPU.PPUBus

	ppuBus.Write(0x2000, 0x7A)

	if got := ppuBus.Read(0x2800); got != 0x7A {
		t.Errorf("Read(0x2800) = 0x%02X, want 0x7A (vertical mirroring maps $2800 to $2000's nametable)", got)
	}
}
