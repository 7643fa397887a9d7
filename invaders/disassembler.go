package invaders

import (
	"bytes"
	"errors"
	"fmt"
)

// Disassemble the loaded 8080 program into human-readable CPU instructions
// mapped to their respective memory address. Used by the debug panel.
func (cpu *Cpu8080) Disassemble(startAddr, endAddr uint16) map[uint16]string {
	// Current CPU instruction, disassembled
	var lineDiss bytes.Buffer

	// this needs to be bigger than uint16, to determine when larger than endAddr
	var addr uint32 = uint32(startAddr)

	disassembly := make(map[uint16]string)

	for addr <= uint32(endAddr) {
		// Instruction memory address
		lineAddr := uint16(addr)
		lineDiss.WriteString(fmt.Sprintf("$%04X: ", lineAddr))

		// Readable instruction name
		opcode := cpu.read(uint16(addr))
		addr++
		inst := cpu.InstLookup[opcode]
		lineDiss.WriteString(inst.Name)

		// Operand bytes follow the opcode, low byte first.
		switch inst.Size {
		case 2:
			value := cpu.read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf(" #$%02X", value))
		case 3:
			lo := cpu.read(uint16(addr))
			addr++
			hi := cpu.read(uint16(addr))
			addr++
			lineDiss.WriteString(fmt.Sprintf(" $%04X", uint16(hi)<<8|uint16(lo)))
		}

		// Add to map
		disassembly[lineAddr] = lineDiss.String()
		lineDiss.Reset()
	}

	cpu.disassembly = disassembly

	return disassembly
}

// Items are stored by memory address, not all memory addresses are filled.
// This function returns the next item at or after the given memory address.
func getNextIdx(m map[uint16]string, addr uint16) (uint16, error) {
	for _, ok := m[addr]; !ok; _, ok = m[addr] {
		if addr >= 0xFFFF {
			return 0, errors.New("End of map")
		}
		addr++
	}

	return addr, nil
}
