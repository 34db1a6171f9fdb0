package nes

import "fmt"

const (
	chrROMSizeUnit      int  = 0x2000 // 8KB
	prgROMSizeUnit      int  = 0x4000 // 16KB
	prgRAMSize          int  = 0x2000 // 8KB
	inesHeaderSizeBytes int  = 16     // The valid INES header has 16 bytes
	trainerSizeBytes    int  = 512
	msDOSEOF            byte = 0x1A
)

type tableMirrorMode int

const (
	horizontal tableMirrorMode = iota
	vertical
)

func (m tableMirrorMode) String() string {
	if m == vertical {
		return "vertical"
	}
	return "horizontal"
}

// https://www.nesdev.org/wiki/INES
type Cartridge struct {
	prgROM []byte
	prgRAM []byte
	chr    []byte
	// chrRAM is set when the cartridge has no CHR ROM, chr is writable then.
	chrRAM bool
	mapper byte
	flags6 byte // https://www.nesdev.org/wiki/INES#Flags_6
	flags7 byte // https://www.nesdev.org/wiki/INES#Flags_7
}

// isValid checks whether the data has an INES header.
func isValid(data []byte) bool {
	return len(data) >= inesHeaderSizeBytes &&
		data[0] == byte('N') &&
		data[1] == byte('E') &&
		data[2] == byte('S') &&
		data[3] == msDOSEOF
}

// NewCartridge creates a cartridge.
func NewCartridge(data []byte) (*Cartridge, error) {
	if !isValid(data) {
		return nil, fmt.Errorf("The buffer is not a valid NES format.")
	}
	c := &Cartridge{
		flags6: data[6],
		flags7: data[7],
		prgRAM: make([]byte, prgRAMSize),
	}
	c.mapper = c.flags7&0xF0 | c.flags6>>4
	l := inesHeaderSizeBytes
	if c.flags6&0x04 != 0 {
		l += trainerSizeBytes
	}
	prgSize := int(data[4]) * prgROMSizeUnit
	chrSize := int(data[5]) * chrROMSizeUnit
	if prgSize == 0 {
		return nil, fmt.Errorf("The cartridge has no PRG ROM.")
	}
	if len(data) < l+prgSize+chrSize {
		return nil, fmt.Errorf("The cartridge is truncated: got=%d bytes, want=%d bytes", len(data), l+prgSize+chrSize)
	}
	c.prgROM = data[l : l+prgSize]
	if chrSize == 0 {
		c.chr = make([]byte, chrROMSizeUnit)
		c.chrRAM = true
	} else {
		c.chr = data[l+prgSize : l+prgSize+chrSize]
	}
	return c, nil
}

func (c *Cartridge) getTableMirrorMode() tableMirrorMode {
	if c.flags6&1 == 1 {
		return vertical
	} else {
		return horizontal
	}
}

// readCHR reads the pattern tables.
func (c *Cartridge) readCHR(address uint16) byte {
	return c.chr[int(address)%len(c.chr)]
}

// writeCHR writes the pattern tables, it returns false for CHR ROM.
func (c *Cartridge) writeCHR(address uint16, data byte) bool {
	if !c.chrRAM {
		return false
	}
	c.chr[int(address)%len(c.chr)] = data
	return true
}
