package invaders

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMachine() *Machine {
	return NewMachine(false, false)
}

////////////////////////////////////////////////////////////////
// Shift register

func TestShiftRegisterReadback(t *testing.T) {
	m := newTestMachine()
	m.Mem.LoadROMBytes([]byte{
		0x3E, 0xAB, // MVI A, 0xAB
		0xD3, 0x04, // OUT 4
		0x3E, 0xCD, // MVI A, 0xCD
		0xD3, 0x04, // OUT 4
		0x3E, 0x04, // MVI A, 0x04
		0xD3, 0x02, // OUT 2
		0xDB, 0x03, // IN 3
	})

	for i := 0; i < 7; i++ {
		m.Cpu.Step()
	}

	assert.Equal(t, byte(0xDA), m.Cpu.A)
}

func TestShiftRegisterWindow(t *testing.T) {
	m := newTestMachine()

	// Two pushes leave the register holding 0xCDAB.
	m.PortWrite(4, 0xAB)
	m.PortWrite(4, 0xCD)
	assert.Equal(t, uint16(0xCDAB), m.shiftRegister)

	for s := byte(0); s <= 7; s++ {
		m.PortWrite(2, s)
		want := byte(uint16(0xCDAB) >> (8 - s))
		assert.Equal(t, want, m.Cpu.Input[3], "shift offset %d", s)
		assert.Equal(t, want, m.InputPort3, "shift offset %d", s)
	}
}

func TestShiftRegisterPushReplacesHighHalf(t *testing.T) {
	m := newTestMachine()

	m.PortWrite(4, 0x11)
	m.PortWrite(4, 0x22)
	m.PortWrite(4, 0x33)

	// The oldest byte has been shifted out entirely.
	assert.Equal(t, uint16(0x3322), m.shiftRegister)
}

////////////////////////////////////////////////////////////////
// Interrupts

func TestInterruptDispatch(t *testing.T) {
	m := newTestMachine()
	cpu := m.Cpu
	cpu.Sp = 0x2400
	cpu.Pc = 0x1234
	cpu.InterruptsEnabled = true
	cyclesBefore := cpu.CycleCount

	cpu.GenerateInterrupt(1)

	assert.Equal(t, uint16(0x0008), cpu.Pc)
	assert.Equal(t, uint16(0x23FE), cpu.Sp)
	assert.Equal(t, uint16(0x1234), cpu.readWord(0x23FE), "pushed PC, not PC+1")
	assert.False(t, cpu.InterruptsEnabled, "dispatch disables interrupts")
	assert.Equal(t, cyclesBefore+11, cpu.CycleCount)
}

func TestInterruptMasking(t *testing.T) {
	m := newTestMachine()
	cpu := m.Cpu
	cpu.Sp = 0x2400
	cpu.Pc = 0x1234
	stackBefore := cpu.readWord(0x23FE)

	cpu.GenerateInterrupt(1)

	assert.Equal(t, uint16(0x1234), cpu.Pc, "masked interrupt must not dispatch")
	assert.Equal(t, uint16(0x2400), cpu.Sp)
	assert.Equal(t, stackBefore, cpu.readWord(0x23FE), "masked interrupt must not write memory")
}

func TestInvalidInterrupt(t *testing.T) {
	m := newTestMachine()
	cpu := m.Cpu
	cpu.Sp = 0x2400
	cpu.Pc = 0x1234
	cpu.InterruptsEnabled = true

	cpu.GenerateInterrupt(8)

	assert.Equal(t, uint16(0x1234), cpu.Pc)
	assert.Equal(t, uint16(0x2400), cpu.Sp)
	assert.True(t, cpu.InterruptsEnabled)
}

func TestMidFrameInterruptDelivery(t *testing.T) {
	rom := make([]byte, 0x2000)
	copy(rom[0x0008:], []byte{0xFB, 0xC9}) // RST 1 vector: EI; RET
	copy(rom[0x0010:], []byte{0xFB, 0xC9}) // RST 2 vector: EI; RET
	rom[0x0100] = 0x76                     // HLT
	copy(rom[0x0101:], []byte{0xC3, 0x00, 0x01}) // JMP 0x0100

	m := newTestMachine()
	m.Mem.LoadROMBytes(rom)
	m.Cpu.Pc = 0x0100
	m.Cpu.Sp = 0x2400
	m.Cpu.InterruptsEnabled = true

	// The CPU parks on the HLT until the mid-screen interrupt.
	m.runForCycles(100)
	assert.True(t, m.Cpu.Halted)
	assert.Equal(t, uint16(0x0101), m.Cpu.Pc)

	m.Cpu.GenerateInterrupt(midscreenInterrupt)
	assert.Equal(t, uint16(0x0008), m.Cpu.Pc)

	// The handler returns to the halt loop and parks again.
	m.runForCycles(50)
	assert.True(t, m.Cpu.Halted)
	assert.Equal(t, uint16(0x0101), m.Cpu.Pc)
	assert.Equal(t, uint16(0x2400), m.Cpu.Sp)
	assert.True(t, m.Cpu.InterruptsEnabled)

	m.Cpu.GenerateInterrupt(vblankInterrupt)
	assert.Equal(t, uint16(0x0010), m.Cpu.Pc)

	m.runForCycles(50)
	assert.True(t, m.Cpu.Halted)
	assert.Equal(t, uint16(0x0101), m.Cpu.Pc)
	assert.Equal(t, uint16(0x2400), m.Cpu.Sp)
}

func TestFrameInterruptOrdering(t *testing.T) {
	rom := make([]byte, 0x2000)
	copy(rom[0x0000:], []byte{0xFB, 0xC3, 0x01, 0x00}) // EI; JMP 0x0001
	// RST 1 vector: MVI A, 1; STA 0x2000; EI; RET
	copy(rom[0x0008:], []byte{0x3E, 0x01, 0x32, 0x00, 0x20, 0xFB, 0xC9})
	// RST 2 vector: LDA 0x2000; STA 0x2001; EI; RET
	copy(rom[0x0010:], []byte{0x3A, 0x00, 0x20, 0x32, 0x01, 0x20, 0xFB, 0xC9})

	m := newTestMachine()
	m.Mem.LoadROMBytes(rom)
	m.Cpu.Sp = 0x2400

	m.RunFrame()

	// The vertical-blank interrupt is delivered at the very end of the
	// frame; give its handler a few instructions to run.
	m.runForCycles(100)

	// The mid-screen handler ran before the vertical-blank handler saw
	// its marker.
	assert.Equal(t, byte(0x01), m.Mem.Read(0x2000))
	assert.Equal(t, byte(0x01), m.Mem.Read(0x2001))
}

////////////////////////////////////////////////////////////////
// Frame scheduler

func TestFrameCycleBudget(t *testing.T) {
	// An all-NOP ROM with interrupts masked: the frame cost is the cycle
	// budget plus at most one instruction of overshoot per run segment.
	m := newTestMachine()
	m.Mem.LoadROMBytes(make([]byte, 0x2000))

	start := m.Cpu.CycleCount
	m.RunFrame()
	elapsed := m.Cpu.CycleCount - start

	assert.GreaterOrEqual(t, elapsed, uint64(cyclesPerFrame))
	assert.LessOrEqual(t, elapsed, uint64(cyclesPerFrame+2*17))
}

func TestSynchronizeIOPullups(t *testing.T) {
	m := newTestMachine()
	m.InputPort0 = 0
	m.InputPort1 = 0

	m.SynchronizeIO()

	assert.Equal(t, port0Pullups, m.Cpu.Input[0]&port0Pullups, "port 0 bits 1-3 wired high")
	assert.Equal(t, port1Pullups, m.Cpu.Input[1]&port1Pullups, "port 1 bit 3 wired high")
}

func TestSynchronizeIOCopiesOutputBuffers(t *testing.T) {
	m := newTestMachine()
	m.Cpu.Output[3] = 0x0A
	m.Cpu.Output[5] = 0x15
	m.Cpu.Output[6] = 0xFF

	m.SynchronizeIO()

	assert.Equal(t, byte(0x0A), m.OutputPort3)
	assert.Equal(t, byte(0x15), m.OutputPort5)
	assert.Equal(t, byte(0xFF), m.OutputPort6)
}

////////////////////////////////////////////////////////////////
// Audio edges

type recordingPlayer struct {
	played   []Sound
	ufoState []bool
}

func (r *recordingPlayer) Play(s Sound) { r.played = append(r.played, s) }
func (r *recordingPlayer) StartUfo()    { r.ufoState = append(r.ufoState, true) }
func (r *recordingPlayer) StopUfo()     { r.ufoState = append(r.ufoState, false) }

func TestSoundEdgeDetection(t *testing.T) {
	m := newTestMachine()
	rec := &recordingPlayer{}
	m.Sound = rec

	// Rising edges on port 3: UFO drone plus the player-shoot one-shot.
	m.prevOut3 = 0x00
	m.OutputPort3 = ufoMask | playerShootMask
	m.prevOut5 = 0x00
	m.OutputPort5 = fleetMove2Mask
	m.detectSoundEdges()

	assert.Equal(t, []Sound{SoundPlayerShoot, SoundFleetMove2}, rec.played)
	assert.Equal(t, []bool{true}, rec.ufoState)

	// A held bit is not an edge; dropping the UFO bit stops the drone.
	rec.played = nil
	rec.ufoState = nil
	m.prevOut3 = ufoMask | playerShootMask
	m.OutputPort3 = playerShootMask
	m.prevOut5 = fleetMove2Mask
	m.OutputPort5 = fleetMove2Mask
	m.detectSoundEdges()

	assert.Empty(t, rec.played)
	assert.Equal(t, []bool{false}, rec.ufoState)
}

////////////////////////////////////////////////////////////////
// End to end

// Cold boot into attract mode. Needs the cabinet ROM, which is not
// distributed with the emulator.
func TestColdBootAttractMode(t *testing.T) {
	const romPath = "../roms/invaders"
	if _, err := os.Stat(romPath); err != nil {
		t.Skip("Space Invaders ROM not present")
	}

	m := newTestMachine()
	if err := m.Mem.LoadROM(romPath); err != nil {
		t.Fatal(err)
	}
	m.Reset()

	// Two seconds of attract mode.
	for i := 0; i < 120; i++ {
		m.RunFrame()
	}

	vram := m.Mem.SnapshotVRAM()
	blank := true
	for _, b := range vram {
		if b != 0 {
			blank = false
			break
		}
	}
	assert.False(t, blank, "attract mode should have drawn to VRAM")
}
