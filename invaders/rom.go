package invaders

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
)

// The cabinet program ships either as a single 8KB image or as the four
// 2KB segments found on the original board, mapped h/g/f/e from address 0.
var romSegments = []struct {
	name   string
	offset uint16
}{
	{"invaders.h", 0x0000},
	{"invaders.g", 0x0800},
	{"invaders.f", 0x1000},
	{"invaders.e", 0x1800},
}

// LoadROM loads the program image at the given path into the ROM region.
// The path may name a single image file or a directory holding the four
// invaders.h/g/f/e segments.
func (m *Memory) LoadROM(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("unable to open ROM %v: %v", path, err)
	}

	if info.IsDir() {
		return m.loadSegmented(path)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read ROM %v: %v", path, err)
	}
	if len(data) > int(romLimit) {
		return fmt.Errorf("ROM image %v is %d bytes, limit is %d", path, len(data), romLimit)
	}

	m.LoadROMBytes(data)

	return nil
}

func (m *Memory) loadSegmented(dir string) error {
	for _, seg := range romSegments {
		data, err := ioutil.ReadFile(filepath.Join(dir, seg.name))
		if err != nil {
			return fmt.Errorf("unable to read ROM segment %v: %v", seg.name, err)
		}
		if len(data) > 0x800 {
			return fmt.Errorf("ROM segment %v is %d bytes, expected at most 2048", seg.name, len(data))
		}
		copy(m.ram[seg.offset:], data)
	}
	m.romLoaded = true

	return nil
}

// LoadROMBytes places a program image at address 0 and latches the ROM
// write protection.
func (m *Memory) LoadROMBytes(image []byte) {
	copy(m.ram[:romLimit], image)
	m.romLoaded = true
}
