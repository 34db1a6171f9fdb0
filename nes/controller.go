package nes

import "github.com/golang/glog"

// Reference:
//   http://hp.vector.co.jp/authors/VA042397/nes/joypad.html (In Japanese)
//   https://www.nesdev.org/wiki/Controller_reading
//   https://www.nesdev.org/wiki/Standard_controller

// Button is an index into the controller's shift register.
type Button byte

// Controller bit assignments, 1 means pressed otherwise 0.
// bit    7     6    5    4  3     2      1 0
// button Right Left Down Up Start Select B A
const (
	ButtonA Button = iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is the standard controller, an 8 bit parallel-in serial-out
// shift register. The button state is loaded into the register while strobe
// is on and when it is turned off, so presses in the middle of a read
// sequence show up only after the next strobe.
type Controller struct {
	buttons byte // current button state, bit n is Button(n)
	latched byte // state being shifted out
	index   byte // next bit to shift out, saturates at 8
	strobe  bool
}

// NewController creates a controller with nothing pressed and strobe off.
func NewController() *Controller {
	return &Controller{}
}

// Read shifts out the next button bit. After 8 reads it returns 0.
// While strobe is on it keeps returning button A.
func (c *Controller) Read() byte {
	if c.strobe {
		c.latched = c.buttons
	}
	ret := shiftBit(c.latched, c.index)
	if c.index < 8 {
		c.index++
	}
	if c.strobe {
		c.index = 0
	}
	glog.V(3).Infof("Controller read: bit=%d, index=%d", ret, c.index)
	return ret
}

// shiftBit returns bit n of x, shifting a byte by 8 or more yields 0.
func shiftBit(x byte, n byte) byte {
	if n >= 8 {
		return 0
	}
	return (x >> n) & 1
}

// Write writes strobe.
// https://bugzmanov.github.io/nes_ebook/chapter_7.html
// - strobe bit on - controller reports only status of the button A on every read
// - strobe bit off - controller cycles through all buttons
func (c *Controller) Write(on bool) {
	if c.strobe || on {
		c.latched = c.buttons
	}
	c.strobe = on
	if c.strobe {
		c.index = 0
	}
}

// Press sets the button state, it doesn't touch the read position.
func (c *Controller) Press(b Button) {
	checkButton(b)
	c.buttons |= 1 << b
}

// Release clears the button state.
func (c *Controller) Release(b Button) {
	checkButton(b)
	c.buttons &^= 1 << b
}

// Set replaces the whole button state.
func (c *Controller) Set(buttons [8]bool) {
	for i, pressed := range buttons {
		if pressed {
			c.Press(Button(i))
		} else {
			c.Release(Button(i))
		}
	}
}

func checkButton(b Button) {
	if b > ButtonRight {
		raise(InvalidButton, uint16(b), "button index must be 0-7")
	}
}
