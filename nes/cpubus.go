package nes

import "github.com/golang/glog"

// Processor is the CPU as seen by the bus. The bus never calls it, it only
// keeps the CPU's slot referenced so a destroyed CPU is detected.
type Processor interface {
	Reset()
}

// PictureUnit is the PPU register window, reg is in 0-7.
type PictureUnit interface {
	ReadRegister(reg byte) byte
	WriteRegister(reg byte, data byte)
}

// Mapper decodes the cartridge space, it receives CPU addresses unmodified.
type Mapper interface {
	ReadFromCPU(address uint16) byte
	WriteFromCPU(address uint16, data byte)
}

// CPUBus routes CPU addresses to the work RAM, the PPU registers or the
// cartridge mapper. It owns the work RAM and only weakly references the other
// components, those are owned by the Console.
type CPUBus struct {
	wram   RAM
	cpu    Ref[Processor]
	ppu    Ref[PictureUnit]
	mapper Ref[Mapper]
}

// NewCPUBus creates a new Bus for CPU.
// CPU memory map
// 0x0000 - 0x07FF	WRAM
// 0x0800 - 0x1FFF	WRAM Mirror
// 0x2000 - 0x2007	PPU Registers
// 0x2008 - 0x3FFF	PPU Registers Mirror
// 0x4000 - 0x4017	APU and I/O registers (not implemented)
// 0x4018 - 0x401F	CPU test mode (not implemented)
// 0x4020 - 0xFFFE	Cartridge, decoded by the mapper
// 0xFFFF		Invalid
func NewCPUBus(cpu Ref[Processor], ppu Ref[PictureUnit], mapper Ref[Mapper]) *CPUBus {
	return &CPUBus{cpu: cpu, ppu: ppu, mapper: mapper}
}

// Attached reports whether every component the bus references is still alive.
func (b *CPUBus) Attached() bool {
	return b.cpu.Alive() && b.ppu.Alive() && b.mapper.Alive()
}

// Read reads a byte.
func (b *CPUBus) Read(address uint16) byte {
	glog.V(4).Infof("CPU bus read: address=0x%04x", address)
	switch {
	case address <= 0x1FFF:
		return b.wram.read(address % ramSize)
	case address <= 0x3FFF:
		ppu, done := b.ppu.Borrow(address)
		defer done()
		return ppu.ReadRegister(byte((address - 0x2000) % 8))
	case address <= 0x4017:
		raise(UnimplementedRegion, address, "APU and I/O registers not implemented")
	case address <= 0x401F:
		raise(UnimplementedRegion, address, "CPU test mode not implemented")
	case address <= 0xFFFE:
		mapper, done := b.mapper.Borrow(address)
		defer done()
		return mapper.ReadFromCPU(address)
	default:
		raise(InvalidAddress, address, "invalid memory address")
	}
	return 0
}

// Read16 reads 2 bytes, little endian. Each byte is routed on its own, so a
// word straddling two regions reads from both.
func (b *CPUBus) Read16(address uint16) uint16 {
	l := b.Read(address)
	h := b.Read(address + 1)
	return uint16(h)<<8 | uint16(l)
}

// Write writes a byte.
func (b *CPUBus) Write(address uint16, data byte) {
	glog.V(4).Infof("CPU bus write: address=0x%04x, data=0x%02x", address, data)
	switch {
	case address <= 0x1FFF:
		b.wram.write(address%ramSize, data)
	case address <= 0x3FFF:
		ppu, done := b.ppu.Borrow(address)
		defer done()
		ppu.WriteRegister(byte((address-0x2000)%8), data)
	case address <= 0x4017:
		raise(UnimplementedRegion, address, "APU and I/O registers not implemented")
	case address <= 0x401F:
		raise(UnimplementedRegion, address, "CPU test mode not implemented")
	case address <= 0xFFFE:
		mapper, done := b.mapper.Borrow(address)
		defer done()
		mapper.WriteFromCPU(address, data)
	default:
		raise(InvalidAddress, address, "invalid memory address")
	}
}
