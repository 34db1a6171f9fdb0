package nes

// ramSize is the capacity of both the CPU work RAM and the PPU nametable RAM.
const ramSize = 0x0800

type RAM struct {
	data [ramSize]byte
}

// NewRAM creates a RAM for both PPU and CPU.
func NewRAM() *RAM {
	return &RAM{}
}

// read reads data, the caller has to mirror the address into the RAM.
func (r *RAM) read(address uint16) byte {
	if address >= ramSize {
		raise(OutOfBounds, address, "RAM read past 0x%04x", ramSize)
	}
	return r.data[address]
}

// write writes data, the caller has to mirror the address into the RAM.
func (r *RAM) write(address uint16, x byte) {
	if address >= ramSize {
		raise(OutOfBounds, address, "RAM write past 0x%04x", ramSize)
	}
	r.data[address] = x
}
