package nes

import (
	"image/color"

	"github.com/golang/glog"
)

// Palatte colors borrowed from "RGB".
// Reference: https://emulation.gametechwiki.com/index.php/Famicom_color_palette
var colors = [64]color.RGBA{
	{0x6D, 0x6D, 0x6D, 255}, {0x00, 0x24, 0x92, 255}, {0x00, 0x00, 0xDB, 255}, {0x6D, 0x49, 0xDB, 255},
	{0x92, 0x00, 0x6D, 255}, {0xB6, 0x00, 0x6D, 255}, {0xB6, 0x24, 0x00, 255}, {0x92, 0x49, 0x00, 255},
	{0x6D, 0x49, 0x00, 255}, {0x24, 0x49, 0x00, 255}, {0x00, 0x6D, 0x24, 255}, {0x00, 0x92, 0x00, 255},
	{0x00, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xB6, 0xB6, 0xB6, 255}, {0x00, 0x6D, 0xDB, 255}, {0x00, 0x49, 0xFF, 255}, {0x92, 0x00, 0xFF, 255},
	{0xB6, 0x00, 0xFF, 255}, {0xFF, 0x00, 0x92, 255}, {0xFF, 0x00, 0x00, 255}, {0xDB, 0x6D, 0x00, 255},
	{0x92, 0x6D, 0x00, 255}, {0x24, 0x92, 0x00, 255}, {0x00, 0x92, 0x00, 255}, {0x00, 0xB6, 0x6D, 255},
	{0x00, 0x92, 0x92, 255}, {0x24, 0x24, 0x24, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0x6D, 0xB6, 0xFF, 255}, {0x92, 0x92, 0xFF, 255}, {0xDB, 0x6D, 0xFF, 255},
	{0xFF, 0x00, 0xFF, 255}, {0xFF, 0x6D, 0xFF, 255}, {0xFF, 0x92, 0x00, 255}, {0xFF, 0xB6, 0x00, 255},
	{0xDB, 0xDB, 0x00, 255}, {0x6D, 0xDB, 0x00, 255}, {0x00, 0xFF, 0x00, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x00, 0xFF, 0xFF, 255}, {0x49, 0x49, 0x49, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
	{0xFF, 0xFF, 0xFF, 255}, {0xB6, 0xDB, 0xFF, 255}, {0xDB, 0xB6, 0xFF, 255}, {0xFF, 0xB6, 0xFF, 255},
	{0xFF, 0x92, 0xFF, 255}, {0xFF, 0xB6, 0xB6, 255}, {0xFF, 0xDB, 0x92, 255}, {0xFF, 0xFF, 0x49, 255},
	{0xFF, 0xFF, 0x6D, 255}, {0xB6, 0xFF, 0x49, 255}, {0x92, 0xFF, 0x6D, 255}, {0x49, 0xFF, 0xDB, 255},
	{0x92, 0xDB, 0xFF, 255}, {0x92, 0x92, 0x92, 255}, {0x00, 0x00, 0x00, 255}, {0x00, 0x00, 0x00, 255},
}

// PPU register indexes, relative to $2000.
// Reference: https://www.nesdev.org/wiki/PPU_registers
const (
	ppuCtrl   byte = iota // $2000 write
	ppuMask               // $2001 write
	ppuStatus             // $2002 read
	oamAddr               // $2003 write
	oamData               // $2004 read/write
	ppuScroll             // $2005 write x2
	ppuAddr               // $2006 write x2
	ppuData               // $2007 read/write
)

// PPU stands for Picture Processing Unit. This one only has the register
// window and the PPU bus behind it, nothing is rendered.
// References:
//   https://www.nesdev.org/wiki/PPU
//   https://pgate1.at-ninja.jp/NES_on_FPGA/nes_ppu.htm (In Japanese)
type PPU struct {
	bus *PPUBus

	ctrl   byte
	mask   byte
	status byte

	oamAddress byte
	oamData    [256]byte

	// Current VRAM address (15bit), for PPUADDR $2006
	v uint16
	// Temporary VRAM address, holds the scroll and the first PPUADDR write.
	t uint16
	// Fine X scroll (3bit)
	x byte
	// w indicates whether the current access is for high or low, for PPUADDR $2006
	w bool
	// buffer for PPUDATA $2007
	buffer byte
	// latch is the value last written to any register, write-only registers read it back.
	latch byte
}

// NewPPU creates a PPU.
func NewPPU(bus *PPUBus) *PPU {
	p := &PPU{bus: bus}
	p.Reset()
	return p
}

// Reset resets the registers, VRAM and palette are kept.
func (p *PPU) Reset() {
	p.ctrl = 0
	p.mask = 0
	p.status = 0
	p.w = false
	p.buffer = 0
	p.latch = 0
}

// SetVBlank sets or clears the vblank flag of PPUSTATUS.
func (p *PPU) SetVBlank(on bool) {
	if on {
		p.status |= 0x80
	} else {
		p.status &^= 0x80
	}
}

// Backdrop returns the universal background color, palette entry $3F00.
func (p *PPU) Backdrop() color.RGBA {
	return colors[p.bus.read(0x3F00)&0x3F]
}

func checkRegister(reg byte) {
	if reg > ppuData {
		raise(InvalidRegister, uint16(reg), "PPU register index must be 0-7")
	}
}

// ReadRegister reads a register.
func (p *PPU) ReadRegister(reg byte) byte {
	checkRegister(reg)
	switch reg {
	case ppuStatus:
		return p.readPPUSTATUS()
	case oamData:
		return p.readOAMDATA()
	case ppuData:
		return p.readPPUDATA()
	default:
		glog.V(2).Infof("Reading write-only PPU register: reg=%d", reg)
		return p.latch
	}
}

// WriteRegister writes a register.
func (p *PPU) WriteRegister(reg byte, data byte) {
	checkRegister(reg)
	p.latch = data
	switch reg {
	case ppuCtrl:
		p.writePPUCTRL(data)
	case ppuMask:
		p.mask = data
	case ppuStatus:
		glog.V(2).Infof("Writing read-only PPUSTATUS ignored: data=0x%02x", data)
	case oamAddr:
		p.oamAddress = data
	case oamData:
		p.writeOAMDATA(data)
	case ppuScroll:
		p.writePPUSCROLL(data)
	case ppuAddr:
		p.writePPUADDR(data)
	case ppuData:
		p.writePPUDATA(data)
	}
}

// writePPUCTRL writes PPUCTRL ($2000), bits 0-1 select the base nametable.
func (p *PPU) writePPUCTRL(data byte) {
	p.ctrl = data
	p.t = p.t&0xF3FF | uint16(data&0x03)<<10
}

// readPPUSTATUS reads PPUSTATUS ($2002), reading clears vblank and w.
func (p *PPU) readPPUSTATUS() byte {
	data := p.status&0xE0 | p.latch&0x1F
	p.SetVBlank(false)
	p.w = false
	return data
}

func (p *PPU) readOAMDATA() byte {
	return p.oamData[p.oamAddress]
}

func (p *PPU) writeOAMDATA(data byte) {
	p.oamData[p.oamAddress] = data
	p.oamAddress++
}

// writePPUSCROLL writes PPUSCROLL ($2005), x first then y.
func (p *PPU) writePPUSCROLL(data byte) {
	if p.w { // y
		p.t = p.t&0x8C1F | uint16(data&0x07)<<12 | uint16(data&0xF8)<<2
		p.w = false
	} else { // x
		p.t = p.t&0xFFE0 | uint16(data)>>3
		p.x = data & 0x07
		p.w = true
	}
}

// writePPUADDR writes PPUADDR ($2006), high first then low.
func (p *PPU) writePPUADDR(data byte) {
	if p.w { // low
		p.t = p.t&0xFF00 | uint16(data)
		p.v = p.t
		p.w = false
	} else { // high
		p.t = p.t&0x00FF | uint16(data&0x3F)<<8
		p.w = true
	}
}

// increment returns the VRAM address step selected by PPUCTRL bit 2.
func (p *PPU) increment() uint16 {
	if p.ctrl&0x04 != 0 {
		return 32
	}
	return 1
}

// writePPUDATA writes PPUDATA ($2007).
func (p *PPU) writePPUDATA(data byte) {
	p.bus.write(p.v, data)
	p.v = (p.v + p.increment()) & 0x3FFF
}

// readPPUDATA reads PPUDATA ($2007).
func (p *PPU) readPPUDATA() byte {
	data := p.bus.read(p.v)
	// Here buffers if the address is not paletteRAM.
	if p.v&0x3FFF < 0x3F00 {
		buffered := p.buffer
		p.buffer = data
		data = buffered
	} else {
		// the buffer gets the nametable byte underneath the palette.
		p.buffer = p.bus.read(p.v - 0x1000)
	}
	p.v = (p.v + p.increment()) & 0x3FFF
	return data
}
