package nes

import "github.com/golang/glog"

// CPU holds the registers of the NES CPU, a custom 6502 made by RICOH, and
// its memory port. Instructions are not executed here.
// References:
//   https://en.wikipedia.org/wiki/MOS_Technology_6502
//   https://www.nesdev.org/wiki/CPU_power_up_state

const (
	// joypad1 is the controller port, it is wired to the CPU and not to the bus.
	joypad1 uint16 = 0x4016
	// resetVector holds the address the CPU starts from.
	resetVector uint16 = 0xFFFC
)

type CPU struct {
	a  byte   // Accumulator register
	x  byte   // Index register
	y  byte   // Index register
	pc uint16 // Program counter
	s  byte   // Stack pointer
	p  byte   // Processor status flag bits

	bus        *CPUBus
	controller *Controller
}

// NewCPU creates a CPU, it has to be connected to a bus before Reset.
func NewCPU(controller *Controller) *CPU {
	return &CPU{controller: controller}
}

// connect attaches the bus. The bus is built after the CPU because it
// references the CPU's registry slot.
func (c *CPU) connect(bus *CPUBus) {
	c.bus = bus
}

// Reset loads the program counter from the reset vector.
func (c *CPU) Reset() {
	c.pc = c.read16(resetVector)
	c.s = 0xFD
	c.p = 0x24
	glog.Infof("CPU reset: PC=0x%04x", c.pc)
}

// read is for wrapping c.bus.Read, because the controller port is not on the bus.
func (c *CPU) read(address uint16) byte {
	if address == joypad1 {
		return c.controller.Read()
	}
	return c.bus.Read(address)
}

// read16 reads 2 bytes, little endian.
func (c *CPU) read16(address uint16) uint16 {
	if address == joypad1 || address+1 == joypad1 {
		l := c.read(address)
		h := c.read(address + 1)
		return uint16(h)<<8 | uint16(l)
	}
	return c.bus.Read16(address)
}

// write is for wrapping c.bus.Write, writing $4016 sets the controller strobe.
func (c *CPU) write(address uint16, data byte) {
	if address == joypad1 {
		c.controller.Write(data&1 == 1)
		return
	}
	c.bus.Write(address, data)
}
