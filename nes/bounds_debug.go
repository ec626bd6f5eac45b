//go:build debug

package nes

// checkBounds panics with a CartridgeBoundsError instead of wrapping, so a
// debug build surfaces a mapper bug (or a truncated ROM dump) immediately
// rather than silently reading the wrong byte.
func checkBounds(addr uint16, length int) int {
	idx := int(addr)
	if idx >= length {
		panic(&CartridgeBoundsError{Addr: addr, Length: length})
	}
	return idx
}
