package invaders

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"
)

const (
	// The cabinet clocks its 8080 at 2 MHz and refreshes at 60 Hz.
	cpuClockHz     = 2000000
	fps            = 60
	cyclesPerFrame = cpuClockHz / fps // 33,333

	// The first interrupt of a frame fires when the beam is 96 of the 224
	// scanlines down the screen; the second at vertical blank.
	midscreenLine = 96
	screenLines   = 224

	midscreenCycles = cyclesPerFrame * midscreenLine / screenLines

	midscreenInterrupt = 1 // RST 1, vector 0x0008
	vblankInterrupt    = 2 // RST 2, vector 0x0010
)

// Machine is the Space Invaders cabinet: one 8080, the custom shift
// register, the I/O ports the game board exposes, and the frame scheduler
// that keeps the program in lock-step with the display.
type Machine struct {
	Cpu *Cpu8080
	Mem *Memory

	// Input ports, read from by the 8080.
	InputPort0 byte
	InputPort1 byte
	InputPort2 byte
	InputPort3 byte
	// Output ports, written to by the 8080. Write ports start counting
	// at 2 (source: http://computerarcheology.com/Arcade/SpaceInvaders/Hardware.html).
	OutputPort2 byte
	OutputPort3 byte
	OutputPort4 byte
	OutputPort5 byte
	OutputPort6 byte // watchdog, nothing consumes it

	// Custom cabinet hardware for performing the multi-bit shifts the
	// 8080 has no instruction for.
	shiftRegister uint16
	shiftOffset   byte

	Disp       *Display
	Controller *Controller
	Sound      SoundPlayer // may be nil when the host runs silent

	// Output-port snapshots from the start of the current frame, compared
	// at the end of the frame to find sound edges.
	prevOut3 byte
	prevOut5 byte

	isDebug   bool // Enable debug panel
	isLogging bool // Enable instruction logging

	Logger *log.Logger
}

// Hardware pull-ups: input port 0 holds bits 1-3 high, input port 1 holds
// bit 3 high.
const (
	port0Pullups byte = 0x0E
	port1Pullups byte = 0x08
)

func NewMachine(isDebug, isLogging bool) *Machine {
	mem := NewMemory()
	cpu := NewCpu8080(mem)

	m := &Machine{
		Cpu:        cpu,
		Mem:        mem,
		Controller: NewController(),
		isDebug:    isDebug,
		isLogging:  isLogging,
		Logger:     log.New(ioutil.Discard, "", 0),
	}

	if isLogging {
		// Create log file.
		now := time.Now()
		logFile := fmt.Sprintf("./logs/invaders%s.log", now.Format("20060102-150405"))
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE, 0664)
		if err != nil {
			log.Fatal("Unable to create CPU log file...\n", err)
		}

		m.Logger = log.New(f, "", 0)
		cpu.Logger = m.Logger
		cpu.Trace = true
		mem.Logger = m.Logger
	}

	// Output-port writes feed the shift register as they happen.
	cpu.ConnectPorts(m)

	m.ResetPorts()

	return m
}

// Reset the machine to its power-on state. Memory keeps its contents; the
// CPU entry point, ports, and shift register are cleared.
func (m *Machine) Reset() {
	m.Cpu.Reset()
	m.shiftRegister = 0
	m.shiftOffset = 0
	m.ResetPorts()
}

// ResetPorts returns the cabinet ports to their default values. Does not
// synchronize with the CPU's I/O buffers.
func (m *Machine) ResetPorts() {
	m.InputPort0 = port0Pullups
	m.InputPort1 = port1Pullups
	m.InputPort2 = 0
	m.InputPort3 = 0
	m.OutputPort2 = 0
	m.OutputPort3 = 0
	m.OutputPort4 = 0
	m.OutputPort5 = 0
	m.OutputPort6 = 0
}

// PortWrite reacts to an OUT as it executes. A write to port 4 pushes a
// byte into the high half of the shift register; a write to port 2 moves
// the read window.
func (m *Machine) PortWrite(port, data byte) {
	switch port {
	case 2:
		m.shiftOffset = data & 0x07
	case 4:
		m.shiftRegister = uint16(data)<<8 | m.shiftRegister>>8
	default:
		return
	}

	m.refreshShiftResult()
}

// refreshShiftResult places the selected 8-bit window of the shift
// register on input port 3: bits [15-s : 8-s] for shift offset s.
func (m *Machine) refreshShiftResult() {
	result := byte(m.shiftRegister >> (8 - m.shiftOffset))

	m.InputPort3 = result
	m.Cpu.Input[3] = result
}

// SynchronizeIO copies cabinet state into and out of the CPU's device
// buffers. Data flow:
//
//	Input  - cabinet -> input port -> input buffer -> 8080
//	Output - 8080 -> output buffer -> output port -> cabinet
func (m *Machine) SynchronizeIO() {
	m.InputPort0 |= port0Pullups
	m.InputPort1 |= port1Pullups

	m.Cpu.Input[0] = m.InputPort0
	m.Cpu.Input[1] = m.InputPort1
	m.Cpu.Input[2] = m.InputPort2
	m.Cpu.Input[3] = m.InputPort3

	m.OutputPort2 = m.Cpu.Output[2]
	m.OutputPort3 = m.Cpu.Output[3]
	m.OutputPort4 = m.Cpu.Output[4]
	m.OutputPort5 = m.Cpu.Output[5]
	m.OutputPort6 = m.Cpu.Output[6]
}

// runForCycles executes instructions until the given number of clock
// cycles has elapsed. The CPU always finishes the instruction it decoded,
// so up to 17 extra cycles may run past the target.
func (m *Machine) runForCycles(numCyclesToRun uint64) {
	startingCycles := m.Cpu.CycleCount

	for m.Cpu.CycleCount-startingCycles < numCyclesToRun {
		m.refreshShiftResult()
		m.Cpu.Step()
	}
}

// RunFrame advances the emulation by one 60 Hz frame:
//
//  1. synchronize cabinet I/O into the CPU
//  2. run until the beam reaches mid-screen, then deliver RST 1
//  3. run out the frame, then deliver RST 2 at vertical blank
//  4. synchronize back out and fire any sounds whose port bits flipped
func (m *Machine) RunFrame() {
	m.SynchronizeIO()
	m.prevOut3 = m.OutputPort3
	m.prevOut5 = m.OutputPort5

	m.runForCycles(midscreenCycles)
	m.Cpu.GenerateInterrupt(midscreenInterrupt)

	m.runForCycles(cyclesPerFrame - midscreenCycles)
	m.Cpu.GenerateInterrupt(vblankInterrupt)

	m.SynchronizeIO()
	m.detectSoundEdges()
}

// Run the arcade machine until the player closes the window.
func (m *Machine) Run() {
	display := NewDisplay(m.isDebug)
	m.Disp = display

	interval := time.Second / fps
	fmt.Println("Frame refresh time:", interval)

	// Use a timer to keep frames rendered steadily at the cabinet's FPS.
	var t time.Time
	for !display.window.Closed() {
		t = time.Now()

		m.Controller.updateControllerInput(display.window, m)

		m.RunFrame()

		display.DrawFrame(m.Mem.SnapshotVRAM())

		if m.isDebug {
			m.DrawDebugPanel()
		}

		display.UpdateScreen()

		time.Sleep(interval - time.Since(t))
	}
}
