package nes

type mapper2 struct {
	cartridge   *Cartridge
	banks       int
	currentBank int
}

// Mapper2: https://www.nesdev.org/wiki/UxROM

func NewMapper2(c *Cartridge) *mapper2 {
	return &mapper2{cartridge: c, banks: len(c.prgROM) / prgROMSizeUnit}
}

func (m *mapper2) ReadFromCPU(address uint16) byte {
	switch {
	case address < 0x8000:
		return readPRGRAM(m.cartridge, address)
	case address < 0xC000:
		// CPU $8000-$BFFF: 16 KB switchable PRG ROM bank
		i := m.currentBank*prgROMSizeUnit + int(address-0x8000)
		return m.cartridge.prgROM[i]
	default:
		// CPU $C000-$FFFF: 16 KB PRG ROM bank, fixed to the last bank
		i := (m.banks-1)*prgROMSizeUnit + int(address-0xC000)
		return m.cartridge.prgROM[i]
	}
}

func (m *mapper2) WriteFromCPU(address uint16, data byte) {
	if 0x8000 <= address {
		m.currentBank = int(data) % m.banks
		return
	}
	writePRGRAM(m.cartridge, address, data)
}
