package nes

import "github.com/golang/glog"

type mapper0 struct {
	cartridge *Cartridge
}

// Mapper0: https://www.nesdev.org/wiki/NROM

func (m *mapper0) ReadFromCPU(address uint16) byte {
	if 0x8000 <= address {
		// CPU $C000-$FFFF: Last 16 KB of ROM (NROM-256) or mirror of $8000-$BFFF (NROM-128).
		return m.cartridge.prgROM[int(address-0x8000)%len(m.cartridge.prgROM)]
	}
	return readPRGRAM(m.cartridge, address)
}

func (m *mapper0) WriteFromCPU(address uint16, data byte) {
	if 0x8000 <= address {
		glog.Warningf("Writing data to PrgROM ignored: address=0x%04x, data=0x%02x", address, data)
		return
	}
	writePRGRAM(m.cartridge, address, data)
}
