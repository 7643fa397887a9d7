package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/n-ulricksen/invaders-emulator/invaders"

	"github.com/faiface/pixel/pixelgl"
)

// Command line flags
var (
	flagDebug   bool
	flagLogging bool
	flagSounds  string
	flagRom     string
)

func main() {
	parseFlags()

	fmt.Println("Starting Space Invaders...")
	machine := invaders.NewMachine(flagDebug, flagLogging)

	if err := machine.Mem.LoadROM(flagRom); err != nil {
		log.Fatalf("Unable to load ROM\n%v\n", err)
	}

	if flagSounds != "" {
		player, err := invaders.NewBeepPlayer(flagSounds)
		if err != nil {
			log.Printf("Running silent: %v\n", err)
		} else {
			machine.Sound = player
		}
	}

	if flagDebug {
		machine.Cpu.Disassemble(0x0000, 0x1FFF)
	}

	fmt.Println("Resetting machine...")
	machine.Reset()

	pixelgl.Run(machine.Run)
}

func parseFlags() {
	flag.BoolVar(&flagDebug, "d", false, "enable debug panel")
	flag.BoolVar(&flagLogging, "l", false, "enable logging")
	flag.StringVar(&flagSounds, "sounds", "", "directory holding the cabinet wav samples")
	flag.StringVar(&flagRom, "rom", "./roms/invaders", "ROM image or directory of invaders.h/g/f/e segments")

	flag.Parse()
}
