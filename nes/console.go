package nes

import (
	"image/color"

	"github.com/golang/glog"
)

var (
	_ Processor   = (*CPU)(nil)
	_ PictureUnit = (*PPU)(nil)
)

// Console is the top level machine. It owns the CPU, the PPU and the mapper
// through a Registry and hands the CPU bus weak handles only. Every method
// runs under Guard, so a fault comes back as an error and the caller has to
// stop using the console.
type Console struct {
	registry   *Registry
	cpu        *Owned[*CPU]
	ppu        *Owned[*PPU]
	mapper     *Owned[Mapper]
	bus        *CPUBus
	controller *Controller
	cartridge  *Cartridge
	closed     bool
}

// NewConsole creates a console from an INES image and resets it.
func NewConsole(buf []byte) (*Console, error) {
	cartridge, err := NewCartridge(buf)
	if err != nil {
		return nil, err
	}
	mapper, err := NewMapper(cartridge)
	if err != nil {
		return nil, err
	}
	glog.Infof("Loaded cartridge: mapper=%d, prg=%dKB, chr=%dKB, mirroring=%s",
		cartridge.mapper, len(cartridge.prgROM)/1024, len(cartridge.chr)/1024, cartridge.getTableMirrorMode())
	controller := NewController()
	registry := NewRegistry()
	c := &Console{
		registry:   registry,
		cpu:        Register(registry, "CPU", NewCPU(controller)),
		ppu:        Register(registry, "PPU", NewPPU(NewPPUBus(NewRAM(), cartridge))),
		mapper:     Register(registry, "mapper", mapper),
		controller: controller,
		cartridge:  cartridge,
	}
	c.bus = NewCPUBus(
		Downgrade[Processor](c.cpu),
		Downgrade[PictureUnit](c.ppu),
		Downgrade[Mapper](c.mapper),
	)
	if err := Guard(func() {
		cpu, done := c.cpu.Borrow()
		defer done()
		cpu.connect(c.bus)
	}); err != nil {
		return nil, err
	}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Bus returns the CPU bus.
func (c *Console) Bus() *CPUBus {
	return c.bus
}

// Controller returns the controller plugged into port 1.
func (c *Console) Controller() *Controller {
	return c.controller
}

// withCPU runs f with the CPU held.
func (c *Console) withCPU(f func(cpu *CPU)) error {
	return Guard(func() {
		cpu, done := c.cpu.Borrow()
		defer done()
		f(cpu)
	})
}

// withPPU runs f with the PPU held.
func (c *Console) withPPU(f func(ppu *PPU)) error {
	return Guard(func() {
		ppu, done := c.ppu.Borrow()
		defer done()
		f(ppu)
	})
}

// Reset resets the CPU and the PPU.
func (c *Console) Reset() error {
	if err := c.withPPU(func(ppu *PPU) { ppu.Reset() }); err != nil {
		return err
	}
	return c.withCPU(func(cpu *CPU) { cpu.Reset() })
}

// Read reads a byte as the CPU does.
func (c *Console) Read(address uint16) (byte, error) {
	var data byte
	err := c.withCPU(func(cpu *CPU) {
		data = cpu.read(address)
	})
	return data, err
}

// Read16 reads 2 bytes as the CPU does.
func (c *Console) Read16(address uint16) (uint16, error) {
	var data uint16
	err := c.withCPU(func(cpu *CPU) {
		data = cpu.read16(address)
	})
	return data, err
}

// Write writes a byte as the CPU does.
func (c *Console) Write(address uint16, data byte) error {
	return c.withCPU(func(cpu *CPU) {
		cpu.write(address, data)
	})
}

// Press presses a button on the controller.
func (c *Console) Press(b Button) error {
	return Guard(func() { c.controller.Press(b) })
}

// Release releases a button on the controller.
func (c *Console) Release(b Button) error {
	return Guard(func() { c.controller.Release(b) })
}

// Backdrop returns the color the screen is cleared with.
func (c *Console) Backdrop() (color.RGBA, error) {
	var rgba color.RGBA
	err := c.withPPU(func(ppu *PPU) {
		rgba = ppu.Backdrop()
	})
	return rgba, err
}

// Close destroys the components, the bus must not be used afterwards.
func (c *Console) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.cpu.Release()
	c.ppu.Release()
	c.mapper.Release()
	glog.Infof("Console closed")
}
