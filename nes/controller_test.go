package nes

import "testing"

func TestControllerShiftsOutButtonsInOrder(t *testing.T) {
	c := NewController()
	c.SetButtons([8]bool{true, false, true, false, false, false, false, true})

	c.Write(1) // strobe high: continuously latch, index held at 0
	c.Write(0) // strobe low: each read now shifts one bit out

	want := []byte{1, 0, 1, 0, 0, 0, 0, 1}
	for i, w := range want {
		if got := c.Read(); got != w {
			t.Errorf("bit %d: got %d, want %d", i, got, w)
		}
	}
}

func TestControllerReadsPastEighthReturnOne(t *testing.T) {
	c := NewController()
	c.Write(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	for i := 0; i < 3; i++ {
		if got := c.Read(); got != 1 {
			t.Errorf("read %d past the 8th: got %d, want 1", i, got)
		}
	}
}

func TestControllerStrobeHighKeepsRelatching(t *testing.T) {
	c := NewController()
	c.SetButtons([8]bool{true})
	c.Write(1)

	first := c.Read()
	second := c.Read()

	if first != 1 || second != 1 {
		t.Errorf("got %d, %d, want 1, 1 (strobe high keeps re-latching bit 0)", first, second)
	}
}
