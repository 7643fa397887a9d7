package invaders

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// DrawDebugPanel refreshes the text areas of the debug panel with the
// current CPU, disassembly, and port state.
func (m *Machine) DrawDebugPanel() {
	m.Disp.WriteRegDebugString(m.getCpuDebugString())
	m.Disp.WriteInstDebugString(m.getDisassemblyLines())
	m.Disp.WritePortDebugString(m.getPortDebugString())
}

func (m *Machine) getCpuDebugString() string {
	var buf bytes.Buffer

	cpu := m.Cpu
	buf.WriteString(fmt.Sprintf("Flags: %08b\n", cpu.Status))
	buf.WriteString(fmt.Sprintf("PC: %#04X\n", cpu.Pc))
	buf.WriteString(fmt.Sprintf("SP: %#04X\n", cpu.Sp))
	buf.WriteString(fmt.Sprintf("A: %#02X\n", cpu.A))
	buf.WriteString(fmt.Sprintf("B: %#02X C: %#02X\n", cpu.B, cpu.C))
	buf.WriteString(fmt.Sprintf("D: %#02X E: %#02X\n", cpu.D, cpu.E))
	buf.WriteString(fmt.Sprintf("H: %#02X L: %#02X\n\n", cpu.H, cpu.L))

	// Cycles
	buf.WriteString(fmt.Sprintf("Cycle Count: %d\n\n", cpu.CycleCount))

	// Current instruction record
	buf.WriteString(spew.Sdump(cpu.InstLookup[cpu.read(cpu.Pc)]))

	return buf.String()
}

func (m *Machine) getDisassemblyLines() string {
	var buf bytes.Buffer

	if m.Cpu.disassembly == nil {
		return ""
	}

	idx := m.Cpu.Pc
	for i := 0; i < 10; i++ {
		next, err := getNextIdx(m.Cpu.disassembly, idx)
		if err != nil {
			// End of the map
			break
		}
		buf.WriteString(m.Cpu.disassembly[next])
		buf.WriteByte('\n')
		idx = next + 1
	}

	return buf.String()
}

func (m *Machine) getPortDebugString() string {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("IN:  %02X %02X %02X %02X\n",
		m.InputPort0, m.InputPort1, m.InputPort2, m.InputPort3))
	buf.WriteString(fmt.Sprintf("OUT: %02X %02X %02X %02X %02X\n",
		m.OutputPort2, m.OutputPort3, m.OutputPort4, m.OutputPort5, m.OutputPort6))
	buf.WriteString(fmt.Sprintf("Shift: %04X >> %d\n", m.shiftRegister, m.shiftOffset))

	return buf.String()
}
