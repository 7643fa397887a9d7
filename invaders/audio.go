package invaders

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Sound identifies one of the cabinet's sound effects.
type Sound int

const (
	SoundPlayerShoot Sound = iota
	SoundPlayerDie
	SoundInvaderDie
	SoundFleetMove1
	SoundFleetMove2
	SoundFleetMove3
	SoundFleetMove4
	SoundUfoHit
)

// SoundPlayer consumes the audio events the game board raises through its
// output ports. The UFO drone loops for as long as its port bit stays
// high; everything else is a one-shot.
type SoundPlayer interface {
	Play(s Sound)
	StartUfo()
	StopUfo()
}

// Sound-triggering bits of output ports 3 and 5.
const (
	ufoMask         byte = 0x01
	playerShootMask byte = 0x02
	playerDieMask   byte = 0x04
	invaderDieMask  byte = 0x08

	fleetMove1Mask byte = 0x01
	fleetMove2Mask byte = 0x02
	fleetMove3Mask byte = 0x04
	fleetMove4Mask byte = 0x08
	ufoHitMask     byte = 0x10
)

// detectSoundEdges compares the output ports against their values at the
// start of the frame. Rising edges fire one-shots; the UFO drone starts on
// a rising edge and stops on a falling edge.
func (m *Machine) detectSoundEdges() {
	if m.Sound == nil {
		return
	}

	rose3 := m.OutputPort3 &^ m.prevOut3
	fell3 := m.prevOut3 &^ m.OutputPort3
	rose5 := m.OutputPort5 &^ m.prevOut5

	if rose3&ufoMask != 0 {
		m.Sound.StartUfo()
	}
	if fell3&ufoMask != 0 {
		m.Sound.StopUfo()
	}
	if rose3&playerShootMask != 0 {
		m.Sound.Play(SoundPlayerShoot)
	}
	if rose3&playerDieMask != 0 {
		m.Sound.Play(SoundPlayerDie)
	}
	if rose3&invaderDieMask != 0 {
		m.Sound.Play(SoundInvaderDie)
	}

	if rose5&fleetMove1Mask != 0 {
		m.Sound.Play(SoundFleetMove1)
	}
	if rose5&fleetMove2Mask != 0 {
		m.Sound.Play(SoundFleetMove2)
	}
	if rose5&fleetMove3Mask != 0 {
		m.Sound.Play(SoundFleetMove3)
	}
	if rose5&fleetMove4Mask != 0 {
		m.Sound.Play(SoundFleetMove4)
	}
	if rose5&ufoHitMask != 0 {
		m.Sound.Play(SoundUfoHit)
	}
}

// Sample files expected in the sounds directory.
var soundFiles = map[Sound]string{
	SoundPlayerShoot: "shoot.wav",
	SoundPlayerDie:   "player_die.wav",
	SoundInvaderDie:  "invader_die.wav",
	SoundFleetMove1:  "fleet1.wav",
	SoundFleetMove2:  "fleet2.wav",
	SoundFleetMove3:  "fleet3.wav",
	SoundFleetMove4:  "fleet4.wav",
	SoundUfoHit:      "ufo_hit.wav",
}

const ufoFile = "ufo.wav"

// BeepPlayer plays the cabinet samples through the beep speaker.
type BeepPlayer struct {
	buffers map[Sound]*beep.Buffer

	ufoBuffer *beep.Buffer
	ufoCtrl   *beep.Ctrl
}

// NewBeepPlayer loads the wav samples from the given directory and
// initializes the speaker to their format.
func NewBeepPlayer(dir string) (*BeepPlayer, error) {
	p := &BeepPlayer{
		buffers: make(map[Sound]*beep.Buffer),
	}

	var format beep.Format
	for sound, name := range soundFiles {
		buffer, f, err := loadWav(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		p.buffers[sound] = buffer
		format = f
	}

	ufo, _, err := loadWav(filepath.Join(dir, ufoFile))
	if err != nil {
		return nil, err
	}
	p.ufoBuffer = ufo

	err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize speaker: %v", err)
	}

	return p, nil
}

func loadWav(path string) (*beep.Buffer, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("unable to open sound %v: %v", path, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, format, fmt.Errorf("unable to decode sound %v: %v", path, err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	return buffer, format, nil
}

func (p *BeepPlayer) Play(s Sound) {
	buffer, ok := p.buffers[s]
	if !ok {
		return
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (p *BeepPlayer) StartUfo() {
	speaker.Lock()
	if p.ufoCtrl != nil {
		p.ufoCtrl.Paused = false
		speaker.Unlock()
		return
	}
	speaker.Unlock()

	loop := beep.Loop(-1, p.ufoBuffer.Streamer(0, p.ufoBuffer.Len()))
	p.ufoCtrl = &beep.Ctrl{Streamer: loop}
	speaker.Play(p.ufoCtrl)
}

func (p *BeepPlayer) StopUfo() {
	if p.ufoCtrl == nil {
		return
	}
	speaker.Lock()
	p.ufoCtrl.Paused = true
	speaker.Unlock()
}
