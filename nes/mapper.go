package nes

import (
	"fmt"

	"github.com/golang/glog"
)

// NewMapper creates the mapper for the cartridge.
func NewMapper(c *Cartridge) (Mapper, error) {
	switch c.mapper {
	case 0:
		return &mapper0{c}, nil
	case 2:
		return NewMapper2(c), nil
	}
	return nil, fmt.Errorf("Mapper %d is not supported", c.mapper)
}

// readPRGRAM reads the cartridge space below PRG ROM, shared by every mapper.
// CPU $4020-$5FFF: expansion, nothing is connected.
// CPU $6000-$7FFF: PRG RAM.
func readPRGRAM(c *Cartridge, address uint16) byte {
	if address < 0x6000 {
		glog.Warningf("Reading unmapped cartridge space: address=0x%04x", address)
		return 0
	}
	return c.prgRAM[address-0x6000]
}

func writePRGRAM(c *Cartridge, address uint16, data byte) {
	if address < 0x6000 {
		glog.Warningf("Writing unmapped cartridge space: address=0x%04x, data=0x%02x", address, data)
		return
	}
	c.prgRAM[address-0x6000] = data
}
