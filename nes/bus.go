package nes

// Bus is the CPU's view of the address space: 2KB of internal work RAM
// mirrored through $1FFF, the PPU's eight registers mirrored every 8 bytes
// through $3FFF, the APU register window, the two controller ports, and the
// cartridge (via the mapper) from $4020 up. Reads to unmapped addresses
// return the last byte that moved on the bus, matching open-bus behavior on
// real hardware.
type Bus struct {
	console *Console
	ram     [0x0800]byte
	openBus byte
}

func NewBus(console *Console) *Bus {
	return &Bus{console: console}
}

// PeekRAM reads internal work RAM without going through the dispatch table
// or disturbing the open-bus latch, for diagnostics and test-ROM result
// harnesses that inspect a fixed RAM address after running for a while.
func (b *Bus) PeekRAM(addr uint16) byte {
	return b.ram[addr%0x0800]
}

func (b *Bus) Read(addr uint16) byte {
	var value byte
	switch {
	case addr < 0x2000:
		value = b.ram[addr%0x0800]
	case addr < 0x4000:
		value = b.console.PPU.readRegister(0x2000 + addr%8)
	case addr == 0x4015:
		value = b.console.APU.ReadRegister(addr)
	case addr == 0x4016:
		value = b.console.Controller1.Read()
	case addr == 0x4017:
		value = b.console.Controller2.Read()
	case addr < 0x4020:
		value = b.openBus
	default:
		value = b.console.Mapper.CPURead(addr)
	}
	b.openBus = value
	return value
}

func (b *Bus) Write(addr uint16, value byte) {
	b.openBus = value
	switch {
	case addr < 0x2000:
		b.ram[addr%0x0800] = value
	case addr < 0x4000:
		b.console.PPU.writeRegister(0x2000+addr%8, value)
	case addr == 0x4014:
		b.triggerOAMDMA(value)
	case addr < 0x4015:
		b.console.APU.writeRegister(addr, value)
	case addr == 0x4015:
		b.console.APU.writeRegister(addr, value)
	case addr == 0x4016:
		b.console.Controller1.Write(value)
		b.console.Controller2.Write(value)
	case addr == 0x4017:
		b.console.APU.writeRegister(addr, value)
	case addr < 0x4020:
		// APU/IO test registers, not implemented: no effect.
	default:
		b.console.Mapper.CPUWrite(addr, value)
	}
}

// triggerOAMDMA copies 256 bytes starting at page<<8 into PPU OAM through
// the $2004 write path (so OAMADDR wraps exactly as it would for CPU-driven
// writes), then stalls the CPU 513 cycles, or 514 if triggered on an odd
// CPU cycle, per the documented OAMDMA timing.
func (b *Bus) triggerOAMDMA(page byte) {
	cpu := b.console.CPU
	addr := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.console.PPU.writeOAMData(b.Read(addr))
		addr++
	}
	if cpu.Cycles%2 == 1 {
		cpu.stall += 514
	} else {
		cpu.stall += 513
	}
}

// PPUBus is the PPU's own 14-bit address space: pattern tables served by
// the mapper, four logical 1KB nametables folded onto two physical ones per
// the cartridge's mirroring mode, and the 32-byte palette RAM.
type PPUBus struct {
	console *Console
}

func NewPPUBus(console *Console) *PPUBus {
	return &PPUBus{console: console}
}

func (m *PPUBus) Read(addr uint16) byte {
	addr = addr % 0x4000
	switch {
	case addr < 0x2000:
		return m.console.Mapper.PPURead(addr)
	case addr < 0x3f00:
		mode := m.console.Card.Mirror
		return m.console.PPU.NameTable[MirrorAddress(mode, addr)%2048]
	default:
		return m.console.PPU.ReadPalette(addr % 32)
	}
}

func (m *PPUBus) Write(addr uint16, value byte) {
	addr = addr % 0x4000
	switch {
	case addr < 0x2000:
		m.console.Mapper.PPUWrite(addr, value)
	case addr < 0x3f00:
		mode := m.console.Card.Mirror
		m.console.PPU.NameTable[MirrorAddress(mode, addr)%2048] = value
	default:
		m.console.PPU.WritePalette(addr%32, value)
	}
}
