package nes

import "testing"

type fakeCPU struct {
	resets int
}

func (c *fakeCPU) Reset() {
	c.resets++
}

// fakePPU records which registers were accessed.
type fakePPU struct {
	regs   [8]byte
	reads  []byte
	writes []byte
}

func (p *fakePPU) ReadRegister(reg byte) byte {
	p.reads = append(p.reads, reg)
	return p.regs[reg]
}

func (p *fakePPU) WriteRegister(reg byte, data byte) {
	p.writes = append(p.writes, reg)
	p.regs[reg] = data
}

// fakeMapper is a flat 64KB memory recording the addresses it receives.
type fakeMapper struct {
	mem       [0x10000]byte
	addresses []uint16
	onRead    func(address uint16)
}

func (m *fakeMapper) ReadFromCPU(address uint16) byte {
	m.addresses = append(m.addresses, address)
	if m.onRead != nil {
		m.onRead(address)
	}
	return m.mem[address]
}

func (m *fakeMapper) WriteFromCPU(address uint16, data byte) {
	m.addresses = append(m.addresses, address)
	m.mem[address] = data
}

type testMachine struct {
	registry *Registry
	cpu      *Owned[*fakeCPU]
	ppu      *Owned[*fakePPU]
	mapper   *Owned[*fakeMapper]
	fakePPU  *fakePPU
	fakeMap  *fakeMapper
	bus      *CPUBus
}

func newTestMachine() *testMachine {
	m := &testMachine{registry: NewRegistry(), fakePPU: &fakePPU{}, fakeMap: &fakeMapper{}}
	m.cpu = Register(m.registry, "CPU", &fakeCPU{})
	m.ppu = Register(m.registry, "PPU", m.fakePPU)
	m.mapper = Register(m.registry, "mapper", m.fakeMap)
	m.bus = NewCPUBus(
		Downgrade[Processor](m.cpu),
		Downgrade[PictureUnit](m.ppu),
		Downgrade[Mapper](m.mapper),
	)
	return m
}

// expectFault runs f and fails the test unless it raises a fault of kind.
func expectFault(t *testing.T, kind FaultKind, f func()) *Fault {
	t.Helper()
	err := Guard(f)
	fault, ok := err.(*Fault)
	if !ok {
		t.Fatalf("got=%v, want a %s fault", err, kind)
	}
	if fault.Kind != kind {
		t.Fatalf("fault kind: got=%s, want=%s (%v)", fault.Kind, kind, fault)
	}
	return fault
}

// expectNoFault runs f and fails the test if it raises a fault.
func expectNoFault(t *testing.T, f func()) {
	t.Helper()
	if err := Guard(f); err != nil {
		t.Fatalf("unexpected fault: %v", err)
	}
}

// buildROM assembles an INES image. PRG bank n is filled with n and the reset
// vector at the end of the last bank points to $C000.
func buildROM(mapper byte, flags6 byte, prgBanks, chrBanks int) []byte {
	header := []byte{'N', 'E', 'S', msDOSEOF, byte(prgBanks), byte(chrBanks), flags6 | mapper<<4, mapper & 0xF0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]byte, prgBanks*prgROMSizeUnit)
	for i := range prg {
		prg[i] = byte(i / prgROMSizeUnit)
	}
	if len(prg) > 0 {
		prg[len(prg)-4] = 0x00
		prg[len(prg)-3] = 0xC0
	}
	chr := make([]byte, chrBanks*chrROMSizeUnit)
	for i := range chr {
		chr[i] = byte(i)
	}
	rom := append(header, prg...)
	return append(rom, chr...)
}
