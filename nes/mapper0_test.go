package nes

import "testing"

func TestMapper0MirrorsA16KBCartToBothHalves(t *testing.T) {
	prg := make([]byte, 0x4000)
	prg[0] = 0xAA
	card := NewCartridge(prg, nil, 0, MirrorHorizontal, false)
	m := NewMapper0(card)

	if got := m.CPURead(0x8000); got != 0xAA {
		t.Errorf("CPURead(0x8000) = 0x%02X, want 0xAA", got)
	}
	if got := m.CPURead(0xC000); got != 0xAA {
		t.Errorf("CPURead(0xC000) = 0x%02X, want 0xAA (16KB PRG mirrors into the upper half)", got)
	}
}

func TestMapper0SRAMReadWrite(t *testing.T) {
	card := NewCartridge(make([]byte, 0x4000), nil, 0, MirrorHorizontal, false)
	m := NewMapper0(card)

	m.CPUWrite(0x6123, 0x55)
	if got := m.CPURead(0x6123); got != 0x55 {
		t.Errorf("CPURead(0x6123) = 0x%02X, want 0x55", got)
	}
}

func TestMapper0PRGWritesAreNoOps(t *testing.T) {
	prg := make([]byte, 0x4000)
	card := NewCartridge(prg, nil, 0, MirrorHorizontal, false)
	m := NewMapper0(card)

	m.CPUWrite(0x8000, 0xFF)
	if got := m.CPURead(0x8000); got != 0x00 {
		t.Errorf("CPURead(0x8000) = 0x%02X, want 0x00 (writes to PRG ROM are ignored)", got)
	}
}

func TestMapper0CHRRAMIsWritable(t *testing.T) {
	card := NewCartridge(make([]byte, 0x4000), nil, 0, MirrorHorizontal, false)
	m := NewMapper0(card)

	m.PPUWrite(0x0010, 0x99)
	if got := m.PPURead(0x0010); got != 0x99 {
		t.Errorf("PPURead(0x0010) = 0x%02X, want 0x99 (CHR RAM should be writable)", got)
	}
}

func TestMapper0NeverReportsIRQ(t *testing.T) {
	card := NewCartridge(make([]byte, 0x4000), nil, 0, MirrorHorizontal, false)
	m := NewMapper0(card)
	m.TickScanline()
	if m.IRQPending() {
		t.Error("NROM never asserts an IRQ")
	}
}
