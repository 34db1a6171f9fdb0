package nes

import "testing"

func readN(c *Controller, n int) []byte {
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = c.Read()
	}
	return bits
}

func equalBits(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestControllerInitialState(t *testing.T) {
	c := NewController()
	if got := readN(c, 16); !equalBits(got, make([]byte, 16)) {
		t.Errorf("reads: got=%v, want all 0", got)
	}
	c.Write(true)
	c.Write(false)
	if got := readN(c, 16); !equalBits(got, make([]byte, 16)) {
		t.Errorf("reads after strobe: got=%v, want all 0", got)
	}
}

func TestControllerStrobeHeld(t *testing.T) {
	c := NewController()
	c.Press(ButtonA)
	c.Press(ButtonStart)
	c.Write(true)
	for i := 0; i < 20; i++ {
		if got := c.Read(); got != 1 {
			t.Fatalf("read %d while strobe is on: got=%d, want=1", i, got)
		}
	}
}

func TestControllerSequence(t *testing.T) {
	c := NewController()
	c.Press(0)
	c.Press(3)
	c.Write(true)
	c.Write(false)
	want := []byte{1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}
	if got := readN(c, len(want)); !equalBits(got, want) {
		t.Errorf("reads: got=%v, want=%v", got, want)
	}
}

func TestControllerSaturatesToZero(t *testing.T) {
	c := NewController()
	for b := ButtonA; b <= ButtonRight; b++ {
		c.Press(b)
	}
	c.Write(true)
	c.Write(false)
	want := []byte{1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0}
	if got := readN(c, len(want)); !equalBits(got, want) {
		t.Errorf("reads: got=%v, want=%v", got, want)
	}
	if c.index != 8 {
		t.Errorf("index: got=%d, want=8", c.index)
	}
}

func TestControllerChangesNeedStrobe(t *testing.T) {
	c := NewController()
	c.Press(ButtonA)
	c.Write(true)
	c.Write(false)
	if got := c.Read(); got != 1 {
		t.Fatalf("A: got=%d, want=1", got)
	}
	// the shift register keeps the old state until the next strobe.
	c.Release(ButtonA)
	c.Press(ButtonB)
	if got := c.Read(); got != 0 {
		t.Errorf("B before strobe: got=%d, want=0", got)
	}
	c.Write(true)
	c.Write(false)
	want := []byte{0, 1, 0, 0, 0, 0, 0, 0}
	if got := readN(c, len(want)); !equalBits(got, want) {
		t.Errorf("reads after strobe: got=%v, want=%v", got, want)
	}
}

func TestControllerPressWhileStrobeOn(t *testing.T) {
	c := NewController()
	c.Write(true)
	if got := c.Read(); got != 0 {
		t.Errorf("before press: got=%d, want=0", got)
	}
	c.Press(ButtonA)
	if got := c.Read(); got != 1 {
		t.Errorf("after press: got=%d, want=1", got)
	}
}

func TestControllerPressKeepsIndex(t *testing.T) {
	c := NewController()
	c.Write(true)
	c.Write(false)
	readN(c, 3)
	c.Press(ButtonRight)
	if c.index != 3 || c.strobe {
		t.Errorf("got index=%d strobe=%t, want index=3 strobe=false", c.index, c.strobe)
	}
}

func TestControllerSet(t *testing.T) {
	c := NewController()
	c.Set([8]bool{ButtonB: true, ButtonRight: true})
	c.Write(true)
	c.Write(false)
	want := []byte{0, 1, 0, 0, 0, 0, 0, 1}
	if got := readN(c, len(want)); !equalBits(got, want) {
		t.Errorf("reads: got=%v, want=%v", got, want)
	}
}

func TestControllerInvalidButton(t *testing.T) {
	c := NewController()
	f := expectFault(t, InvalidButton, func() { c.Press(8) })
	if f.Address != 8 {
		t.Errorf("fault index: got=%d, want=8", f.Address)
	}
	expectFault(t, InvalidButton, func() { c.Release(255) })
	if c.buttons != 0 {
		t.Errorf("buttons: got=0b%08b, want=0", c.buttons)
	}
}

func TestShiftBit(t *testing.T) {
	for n := byte(0); n < 16; n++ {
		want := byte(0)
		if n < 8 {
			want = 1
		}
		if got := shiftBit(0xFF, n); got != want {
			t.Errorf("shiftBit(0xff, %d): got=%d, want=%d", n, got, want)
		}
	}
}
