package nes

import "testing"

func newTestMapper2() *Mapper2 {
	card := NewCartridge(make([]byte, 0x4000*4), nil, 2, MirrorVertical, false)
	return NewMapper2(card).(*Mapper2)
}

func TestMapper2LastBankFixedAtC000(t *testing.T) {
	m := newTestMapper2()
	m.card.PRG[3*0x4000] = 0x7E // first byte of bank 3, the last of 4
	if got := m.CPURead(0xC000); got != 0x7E {
		t.Errorf("CPURead(0xC000) = %#x, want 0x7E regardless of the selected bank", got)
	}
	m.CPUWrite(0x8000, 1) // switch the low window; C000 should be unaffected
	if got := m.CPURead(0xC000); got != 0x7E {
		t.Errorf("CPURead(0xC000) changed after selecting a different bank, want fixed 0x7E")
	}
}

func TestMapper2BankSwitchAt8000(t *testing.T) {
	m := newTestMapper2()
	m.card.PRG[2*0x4000] = 0x33
	m.CPUWrite(0x8000, 2)
	if got := m.CPURead(0x8000); got != 0x33 {
		t.Errorf("CPURead(0x8000) = %#x, want 0x33 from bank 2", got)
	}
}

func TestMapper2BankSelectWraps(t *testing.T) {
	m := newTestMapper2()
	m.CPUWrite(0x8000, 7) // 7 % 4 banks == 3
	if m.prgBank != 3 {
		t.Errorf("prgBank = %d, want 3 (7 mod 4 banks)", m.prgBank)
	}
}

func TestMapper2CHRIsRAM(t *testing.T) {
	m := newTestMapper2()
	m.PPUWrite(0x0100, 0x5A)
	if got := m.PPURead(0x0100); got != 0x5A {
		t.Errorf("CHR RAM read-after-write = %#x, want 0x5A", got)
	}
}

func TestMapper2NeverReportsIRQ(t *testing.T) {
	m := newTestMapper2()
	if m.IRQPending() {
		t.Error("UxROM has no IRQ line; IRQPending must always be false")
	}
}
