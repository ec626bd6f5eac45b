package nes

import "testing"

// newTestConsole builds a minimal 32KB NROM console for tests that need a
// full Bus/PPU/APU wiring rather than a bare CPU.
func newTestConsole(t *testing.T) *Console {
	t.Helper()
	data := make([]byte, 16+0x8000+0x2000)
	copy(data[:4], []byte{'N', 'E', 'S', 0x1A})
	data[4] = 2 // 32KB PRG
	data[5] = 1 // 8KB CHR
	console, err := NewConsoleFromBytes(data)
	if err != nil {
		t.Fatalf("newTestConsole: %v", err)
	}
	return console
}
