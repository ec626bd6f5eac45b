// Package ines parses the iNES 1.0 ROM container into the raw PRG/CHR
// banks and cartridge metadata the nes package's Cartridge needs.
package ines

import "fmt"

// RomFormatError reports a structurally invalid or unsupported ROM file:
// bad magic bytes, an NES 2.0 header, or a body shorter than the header
// declares.
type RomFormatError struct {
	Reason string
}

func (e *RomFormatError) Error() string {
	return fmt.Sprintf("ines: %s", e.Reason)
}

func newFormatError(reason string, args ...interface{}) error {
	return &RomFormatError{Reason: fmt.Sprintf(reason, args...)}
}
