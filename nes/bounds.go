//go:build !debug

package nes

// checkBounds resolves addr into an index within a length-byte bank,
// wrapping out-of-range addresses rather than failing, the way real
// bank-select hardware silently wraps on an undersized cartridge dump.
func checkBounds(addr uint16, length int) int {
	return int(addr) % length
}
