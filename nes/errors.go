package nes

import "fmt"

// CartridgeBoundsError reports an out-of-range PRG/CHR access a mapper
// couldn't resolve. In a build tagged "debug" this is panicked by
// checkBounds so a bad mapper implementation fails loudly during
// development; release builds never see it, since checkBounds clamps
// instead.
type CartridgeBoundsError struct {
	Addr   uint16
	Length int
}

func (e *CartridgeBoundsError) Error() string {
	return fmt.Sprintf("nes: address 0x%04X out of bounds for a %d-byte bank", e.Addr, e.Length)
}

// HaltedError is returned by Console.Step once the CPU has executed a
// KIL/JAM opcode; the 6502 locks up on real hardware and only a Reset
// clears it.
type HaltedError struct{}

func (e *HaltedError) Error() string {
	return "nes: cpu halted (KIL/JAM)"
}
