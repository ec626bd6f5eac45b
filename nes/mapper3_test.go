package nes

import "testing"

func newTestMapper3() *Mapper3 {
	card := NewCartridge(make([]byte, 0x4000*2), make([]byte, 0x2000*4), 3, MirrorHorizontal, false)
	return NewMapper3(card).(*Mapper3)
}

func TestMapper3PRGMapsLike32KBNROM(t *testing.T) {
	m := newTestMapper3()
	m.card.PRG[0] = 0x40
	m.card.PRG[0x4000] = 0x41
	if got := m.CPURead(0x8000); got != 0x40 {
		t.Errorf("CPURead(0x8000) = %#x, want 0x40", got)
	}
	if got := m.CPURead(0xC000); got != 0x41 {
		t.Errorf("CPURead(0xC000) = %#x, want 0x41", got)
	}
}

func TestMapper3CHRBankSwitch(t *testing.T) {
	m := newTestMapper3()
	m.card.CHR[2*0x2000] = 0x99
	m.CPUWrite(0x8000, 2)
	if got := m.PPURead(0x0000); got != 0x99 {
		t.Errorf("PPURead(0x0000) = %#x, want 0x99 from CHR bank 2", got)
	}
}

func TestMapper3CHRBankSelectWraps(t *testing.T) {
	m := newTestMapper3()
	m.CPUWrite(0x8000, 5) // 5 % 4 banks == 1
	if m.chrBank != 1 {
		t.Errorf("chrBank = %d, want 1 (5 mod 4 banks)", m.chrBank)
	}
}

func TestMapper3CHRROMNotWritable(t *testing.T) {
	card := NewCartridge(make([]byte, 0x4000), make([]byte, 0x2000), 3, MirrorHorizontal, false)
	m := NewMapper3(card).(*Mapper3)
	m.PPUWrite(0x0000, 0xFF)
	if got := m.PPURead(0x0000); got != 0 {
		t.Errorf("PPURead(0x0000) = %#x, want 0 (CHR ROM should ignore writes)", got)
	}
}

func TestMapper3NeverReportsIRQ(t *testing.T) {
	m := newTestMapper3()
	if m.IRQPending() {
		t.Error("CNROM has no IRQ line; IRQPending must always be false")
	}
}
