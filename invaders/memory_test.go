package invaders

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomWritesDropped(t *testing.T) {
	m := NewMemory()
	m.LoadROMBytes([]byte{0xAA, 0xBB, 0xCC})

	var diag bytes.Buffer
	m.Logger = log.New(&diag, "", 0)

	m.Write(0x0001, 0xFF)

	assert.Equal(t, byte(0xBB), m.Read(0x0001), "ROM byte must not change")
	assert.Contains(t, diag.String(), "0x0001", "dropped write should be reported")
}

func TestRamWrites(t *testing.T) {
	m := NewMemory()

	m.Write(0x2000, 0x42)
	m.Write(0x3FFF, 0x24)

	assert.Equal(t, byte(0x42), m.Read(0x2000))
	assert.Equal(t, byte(0x24), m.Read(0x3FFF))
}

func TestRamMirroring(t *testing.T) {
	m := NewMemory()

	// Addresses above 0x4000 fold back into the 8KB RAM+VRAM region.
	m.Write(0x4000, 0x11)
	assert.Equal(t, byte(0x11), m.Read(0x2000))

	m.Write(0x2401, 0x22)
	assert.Equal(t, byte(0x22), m.Read(0x4401))
	assert.Equal(t, byte(0x22), m.Read(0xC401))
}

func TestSnapshotVRAM(t *testing.T) {
	m := NewMemory()
	m.Write(0x2400, 0xDE)
	m.Write(0x3FFF, 0xAD)

	vram := m.SnapshotVRAM()

	assert.Len(t, vram, VramSize)
	assert.Equal(t, byte(0xDE), vram[0])
	assert.Equal(t, byte(0xAD), vram[VramSize-1])

	// The snapshot is an independent copy in both directions.
	vram[0] = 0x00
	assert.Equal(t, byte(0xDE), m.Read(0x2400))

	m.Write(0x2400, 0x55)
	assert.Equal(t, byte(0x00), vram[0])
}

func TestLoadROMBytesLatchesProtection(t *testing.T) {
	m := NewMemory()

	// Before a program is loaded the low region is writable, so tests and
	// tools can stage images by hand.
	m.Write(0x0100, 0x42)
	assert.Equal(t, byte(0x42), m.Read(0x0100))

	m.LoadROMBytes(make([]byte, 0x2000))
	m.Write(0x0100, 0x99)
	assert.Equal(t, byte(0x00), m.Read(0x0100))
}
