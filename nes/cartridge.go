// Package nes implements the NES emulation core: CPU, PPU, APU, cartridge
// mappers, the shared bus, and the coordinator that ticks them in lockstep.
package nes

// Mirroring selects how the PPU's two physical 1KB nametables are mapped
// onto its four logical 1KB nametable slots.
type Mirroring byte

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
	MirrorSingle0
	MirrorSingle1
	MirrorFour
)

// mirrorLookup maps (mode, logical nametable index) -> physical nametable index.
var mirrorLookup = [...][4]uint16{
	{0, 0, 1, 1}, // horizontal
	{0, 1, 0, 1}, // vertical
	{0, 0, 0, 0}, // single-screen A
	{1, 1, 1, 1}, // single-screen B
	{0, 1, 2, 3}, // four-screen
}

// MirrorAddress folds a $2000-$2FFF PPU address down into a 2KB-relative
// nametable offset according to mode.
func MirrorAddress(mode Mirroring, address uint16) uint16 {
	address = (address - 0x2000) % 0x1000
	table := address / 0x0400
	offset := address % 0x0400
	return mirrorLookup[mode][table]*0x0400 + offset
}

// Cartridge holds the PRG/CHR store and mapper-independent cartridge state.
// Mapper-specific bank/IRQ state lives on the Mapper implementation, not
// here, so Cartridge stays a plain data holder shared by every mapper.
type Cartridge struct {
	PRG       []byte
	CHR       []byte
	hasCHRRAM bool
	SRAM      []byte
	Mirror    Mirroring
	Battery   bool
	MapperID  byte
}

// NewCartridge builds a Cartridge from parsed iNES fields. chr may be empty,
// in which case 8KB of CHR RAM is allocated (the iNES convention for a
// CHR-ROM-size field of 0).
func NewCartridge(prg, chr []byte, mapperID byte, mirror Mirroring, battery bool) *Cartridge {
	hasCHRRAM := len(chr) == 0
	if hasCHRRAM {
		chr = make([]byte, 0x2000)
	}
	return &Cartridge{
		PRG:       prg,
		CHR:       chr,
		hasCHRRAM: hasCHRRAM,
		SRAM:      make([]byte, 0x2000),
		Mirror:    mirror,
		Battery:   battery,
		MapperID:  mapperID,
	}
}
