package nes

import "github.com/golang/glog"

type PPUBus struct {
	vram      *RAM
	cartridge *Cartridge
	// PPU has an internal RAM for palette data.
	paletteRAM [32]byte
}

// NewPPUBus creates a new Bus for PPU
func NewPPUBus(vram *RAM, cartridge *Cartridge) *PPUBus {
	return &PPUBus{vram: vram, cartridge: cartridge}
}

// nametableIndex maps $2000-$3EFF to the 2KB nametable RAM.
// Horizontal: $2000=$2400, $2800=$2C00. Vertical: $2000=$2800, $2400=$2C00.
// Reference: https://www.nesdev.org/wiki/Mirroring#Nametable_Mirroring
func (b *PPUBus) nametableIndex(address uint16) uint16 {
	a := (address - 0x2000) % 0x1000
	table, offset := a/0x0400, a%0x0400
	if b.cartridge.getTableMirrorMode() == vertical {
		return (table%2)*0x0400 + offset
	}
	return (table/2)*0x0400 + offset
}

// paletteIndex maps $3F00-$3FFF to the palette RAM, $3F10/$3F14/$3F18/$3F1C
// are mirrors of $3F00/$3F04/$3F08/$3F0C.
func paletteIndex(address uint16) uint16 {
	i := (address - 0x3F00) % 32
	if i >= 16 && i%4 == 0 {
		i -= 16
	}
	return i
}

// read reads data.
// Address        Size	  Description
// -------------------------------------
// $0000-$0FFF	  $1000	  Pattern table 0
// $1000-$1FFF	  $1000	  Pattern table 1
// $2000-$23FF	  $0400	  Nametable 0
// $2400-$27FF	  $0400	  Nametable 1
// $2800-$2BFF	  $0400	  Nametable 2
// $2C00-$2FFF	  $0400	  Nametable 3
// $3000-$3EFF	  $0F00	  Mirrors of $2000-$2EFF
// $3F00-$3F1F	  $0020	  Palette RAM indexes
// $3F20-$3FFF	  $00E0	  Mirrors of $3F00-$3F1F
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) read(address uint16) byte {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		return b.cartridge.readCHR(address)
	case address < 0x3F00:
		return b.vram.read(b.nametableIndex(address))
	default:
		return b.paletteRAM[paletteIndex(address)]
	}
}

// write writes data.
// Reference: https://www.nesdev.org/wiki/PPU_memory_map
func (b *PPUBus) write(address uint16, data byte) {
	address &= 0x3FFF
	switch {
	case address < 0x2000:
		if !b.cartridge.writeCHR(address, data) {
			glog.Warningf("Writing data to pattern tables ignored, address=0x%04x, data=0x%02x", address, data)
		}
	case address < 0x3F00:
		b.vram.write(b.nametableIndex(address), data)
	default:
		b.paletteRAM[paletteIndex(address)] = data
	}
}
