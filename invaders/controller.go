package invaders

import (
	"github.com/faiface/pixel/pixelgl"
)

// Controller maps the host keyboard onto the cabinet's input port bits.
type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}

// Input port bit masks for Space Invaders actions.
const (
	creditMask  byte = 0x01 // Insert a coin
	p2StartMask byte = 0x02 // Player 2 start playing
	p1StartMask byte = 0x04 // Player 1 start playing
	tiltMask    byte = 0x04 // Cabinet tilt switch (port 2)

	shootMask     byte = 0x10 // For triggering player character to shoot
	moveLeftMask  byte = 0x20 // For moving player character left
	moveRightMask byte = 0x40 // For moving player character right
)

// Keyboard binds:
/*
	Coin      ---> C
	P1 Start  ---> 1
	P2 Start  ---> 2
	P1 Shoot  ---> Space
	P1 Left   ---> Left Arrow
	P1 Right  ---> Right Arrow
	P2 Shoot  ---> W
	P2 Left   ---> A
	P2 Right  ---> D
	Tilt      ---> T
*/
var (
	p1Keys = map[byte]pixelgl.Button{
		shootMask:     pixelgl.KeySpace,
		moveLeftMask:  pixelgl.KeyLeft,
		moveRightMask: pixelgl.KeyRight,
	}
	p2Keys = map[byte]pixelgl.Button{
		shootMask:     pixelgl.KeyW,
		moveLeftMask:  pixelgl.KeyA,
		moveRightMask: pixelgl.KeyD,
	}
)

// updateControllerInput rebuilds the cabinet input ports from the current
// keyboard state. Player 1's controls appear on both port 0 and port 1,
// as on the original board.
func (c *Controller) updateControllerInput(win *pixelgl.Window, m *Machine) {
	port0 := port0Pullups
	port1 := port1Pullups
	port2 := byte(0)

	if win.Pressed(pixelgl.KeyC) {
		port1 |= creditMask
	}
	if win.Pressed(pixelgl.Key1) {
		port1 |= p1StartMask
	}
	if win.Pressed(pixelgl.Key2) {
		port1 |= p2StartMask
	}
	if win.Pressed(pixelgl.KeyT) {
		port2 |= tiltMask
	}

	for mask, key := range p1Keys {
		if win.Pressed(key) {
			port0 |= mask
			port1 |= mask
		}
	}
	for mask, key := range p2Keys {
		if win.Pressed(key) {
			port2 |= mask
		}
	}

	m.InputPort0 = port0
	m.InputPort1 = port1
	m.InputPort2 = port2
}
