package invaders

import (
	"image"
	"log"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type Display struct {
	gameRgba *image.RGBA // Rectangle of RGBA points, used to manipulate pixels on the screen.

	window     *pixelgl.Window
	gameMatrix pixel.Matrix // Scale and position to render the running game.

	// Debug text stuff
	debugAtlas          *text.Atlas // Used to load the font
	debugRegText        *text.Text  // CPU register printout
	debugInstText       *text.Text  // CPU instruction disassembly
	debugControllerText *text.Text  // Port status

	isDebug bool // Debug mode enabled on the machine
}

const (
	// The cabinet's monitor is mounted sideways: 224 columns wide, 256
	// rows tall once the framebuffer is rotated.
	screenResW float64 = 224
	screenResH float64 = 256
	scale      float64 = 3 // Scale at which to render the display.
	gameW      float64 = screenResW * scale
	gameH      float64 = screenResH * scale
	screenPosX float64 = 600 // Where to render the display on the user's monitor.
	screenPosY float64 = 200

	// Debug display settings
	debugResW float64 = 400
)

func NewDisplay(isDebug bool) *Display {
	rect := image.Rect(0, 0, int(screenResW), int(screenResH))
	gameRgba := image.NewRGBA(rect)

	screenW := gameW
	if isDebug {
		screenW += debugResW
	}

	config := pixelgl.WindowConfig{
		Title:    "Space Invaders",
		Bounds:   pixel.R(0, 0, screenW, gameH),
		Position: pixel.V(screenPosX, screenPosY),
		VSync:    true,
	}
	window, err := pixelgl.NewWindow(config)
	if err != nil {
		log.Fatal("Unable to create new PixelGl window...\n", err)
	}

	// Calculate matrix required to render the game to the display based on
	// the set scale.
	pic := pixel.PictureDataFromImage(gameRgba)
	gameMatrix := pixel.IM.Moved(pic.Bounds().Center().Scaled(scale))
	gameMatrix = gameMatrix.Scaled(pic.Bounds().Center().Scaled(scale), scale)

	// Debug text
	debugAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	debugRegText := text.New(pixel.V(gameW+8, gameH-40), debugAtlas)
	debugInstText := text.New(pixel.V(gameW+8, gameH-240), debugAtlas)
	debugControllerText := text.New(pixel.V(gameW+8, gameH-560), debugAtlas)

	return &Display{
		gameRgba:            gameRgba,
		window:              window,
		gameMatrix:          gameMatrix,
		debugAtlas:          debugAtlas,
		debugRegText:        debugRegText,
		debugInstText:       debugInstText,
		debugControllerText: debugControllerText,
		isDebug:             isDebug,
	}
}

// DrawFrame unpacks a VRAM snapshot into the display image. The
// framebuffer is 1 bit per pixel, column major, bottom-up: bit i maps to
// screen coordinates (i/256, 255 - i%256).
func (d *Display) DrawFrame(vram []byte) {
	for i := 0; i < len(vram)*8; i++ {
		x := i / 256
		y := 255 - i%256

		c := colornames.Black
		if vram[i/8]&(1<<uint(i%8)) != 0 {
			c = colornames.White
		}
		d.gameRgba.SetRGBA(x, y, c)
	}
}

// Write a string of text to the CPU register section of the debug panel.
func (d *Display) WriteRegDebugString(t string) {
	d.debugRegText.Clear()
	d.debugRegText.WriteString(t)
}

// Write a string of text to the instruction disassembly section of the debug panel.
func (d *Display) WriteInstDebugString(t string) {
	d.debugInstText.Clear()
	d.debugInstText.WriteString(t)
}

// Write a string of text to the port status section of the debug panel.
func (d *Display) WritePortDebugString(t string) {
	d.debugControllerText.Clear()
	d.debugControllerText.WriteString(t)
}

// UpdateScreen redraws the window from the display's current image.RGBA
// representation.
func (d *Display) UpdateScreen() {
	d.window.Clear(colornames.Black)

	sprite := getSpriteFromImage(d.gameRgba)
	sprite.Draw(d.window, d.gameMatrix)

	if d.isDebug {
		d.debugRegText.Draw(d.window, pixel.IM)
		d.debugInstText.Draw(d.window, pixel.IM)
		d.debugControllerText.Draw(d.window, pixel.IM)
	}

	d.window.Update()
}

// Convenience function to get a pixel sprite from an image RGBA.
func getSpriteFromImage(img *image.RGBA) *pixel.Sprite {
	pic := pixel.PictureDataFromImage(img)
	sprite := pixel.NewSprite(pic, pic.Bounds())

	return sprite
}
