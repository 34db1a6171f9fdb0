package nes

import "testing"

func TestNewCartridge(t *testing.T) {
	c, err := NewCartridge(buildROM(2, 1, 4, 0))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.mapper != 2 {
		t.Errorf("mapper: got=%d, want=2", c.mapper)
	}
	if len(c.prgROM) != 4*prgROMSizeUnit {
		t.Errorf("PRG ROM size: got=%d, want=%d", len(c.prgROM), 4*prgROMSizeUnit)
	}
	if !c.chrRAM || len(c.chr) != chrROMSizeUnit {
		t.Errorf("CHR: got ram=%t size=%d, want ram=true size=%d", c.chrRAM, len(c.chr), chrROMSizeUnit)
	}
	if c.getTableMirrorMode() != vertical {
		t.Errorf("mirroring: got=%s, want=vertical", c.getTableMirrorMode())
	}
}

func TestNewCartridgeMapperHighNibble(t *testing.T) {
	c, err := NewCartridge(buildROM(0x42, 0, 1, 1))
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if c.mapper != 0x42 {
		t.Errorf("mapper: got=0x%02x, want=0x42", c.mapper)
	}
}

func TestNewCartridgeTrainer(t *testing.T) {
	rom := buildROM(0, 0x04, 1, 1)
	withTrainer := append(append(append([]byte{}, rom[:inesHeaderSizeBytes]...), make([]byte, trainerSizeBytes)...), rom[inesHeaderSizeBytes:]...)
	c, err := NewCartridge(withTrainer)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if got := c.prgROM[len(c.prgROM)-3]; got != 0xC0 {
		t.Errorf("reset vector high byte: got=0x%02x, want=0xc0", got)
	}
}

func TestNewCartridgeErrors(t *testing.T) {
	for _, test := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", append([]byte("NES!"), make([]byte, 12)...)},
		{"no PRG", buildROM(0, 0, 0, 0)},
		{"truncated", buildROM(0, 0, 2, 1)[:inesHeaderSizeBytes+prgROMSizeUnit]},
	} {
		if _, err := NewCartridge(test.data); err == nil {
			t.Errorf("%s: got no error", test.name)
		}
	}
}
