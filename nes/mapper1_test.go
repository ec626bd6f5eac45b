package nes

import "testing"

// newTestMapper1 builds a 4-bank (64KB) PRG / 2-bank (8KB) CHR cartridge
// wired through Mapper1, large enough to exercise bank switching in both
// PRG modes.
func newTestMapper1() *Mapper1 {
	card := NewCartridge(make([]byte, 0x4000*4), make([]byte, 0x1000*2), 1, MirrorHorizontal, false)
	return NewMapper1(card).(*Mapper1)
}

// writeMMC1 feeds value through the 5-bit shift register one bit at a
// time, the way real MMC1 hardware is programmed: 5 consecutive writes to
// addr, LSB first.
func writeMMC1(m *Mapper1, addr uint16, value byte) {
	for i := 0; i < 5; i++ {
		m.CPUWrite(addr, (value>>i)&1)
	}
}

func TestMapper1ResetForcesPRGMode3(t *testing.T) {
	m := newTestMapper1()
	if m.prgOffsets[1] != m.prgOffset(-1) {
		t.Errorf("initial prgOffsets[1] should fix the last bank")
	}
}

func TestMapper1ShiftRegisterResetsOnHighBit(t *testing.T) {
	m := newTestMapper1()
	m.CPUWrite(0x8000, 1)
	m.CPUWrite(0x8000, 0x80) // bit 7 set mid-sequence: reset + force PRG mode 3
	if m.shiftRegister != 0x10 {
		t.Errorf("shiftRegister = %#x, want reset to 0x10", m.shiftRegister)
	}
	if m.prgMode != 3 {
		t.Errorf("prgMode = %d, want 3 after a bit-7 reset write", m.prgMode)
	}
}

func TestMapper1PRGMode3FixesLastBank(t *testing.T) {
	m := newTestMapper1()
	m.card.PRG[3*0x4000] = 0xAB // first byte of bank 3 (the last of 4 banks)
	writeMMC1(m, 0x8000, 0x0C)  // control: CHR mode 0, PRG mode 3
	writeMMC1(m, 0xE000, 0x00)  // select PRG bank 0 for the switchable window

	if got := m.CPURead(0xC000); got != 0xAB {
		t.Errorf("CPURead(0xC000) = %#x, want 0xAB (last bank fixed)", got)
	}
}

func TestMapper1PRGMode0Selects32KBPair(t *testing.T) {
	m := newTestMapper1()
	m.card.PRG[2*0x4000] = 0x11 // first byte of bank 2
	m.card.PRG[3*0x4000] = 0x22 // first byte of bank 3
	writeMMC1(m, 0x8000, 0x00)  // control: PRG mode 0 (32KB, bank&0xFE / |0x01)
	writeMMC1(m, 0xE000, 0x02)  // select bank pair starting at bank 2

	if got := m.CPURead(0x8000); got != 0x11 {
		t.Errorf("CPURead(0x8000) = %#x, want 0x11", got)
	}
	if got := m.CPURead(0xC000); got != 0x22 {
		t.Errorf("CPURead(0xC000) = %#x, want 0x22", got)
	}
}

func TestMapper1MirroringControlBits(t *testing.T) {
	cases := []struct {
		bits byte
		want Mirroring
	}{
		{0, MirrorSingle0},
		{1, MirrorSingle1},
		{2, MirrorVertical},
		{3, MirrorHorizontal},
	}
	for _, c := range cases {
		m := newTestMapper1()
		writeMMC1(m, 0x8000, 0x0C|c.bits)
		if got := m.Mirror(); got != c.want {
			t.Errorf("control bits %#x -> mirror %v, want %v", c.bits, got, c.want)
		}
	}
}

func TestMapper1NeverReportsIRQ(t *testing.T) {
	m := newTestMapper1()
	m.TickScanline()
	if m.IRQPending() {
		t.Error("MMC1 has no IRQ line; IRQPending must always be false")
	}
}
