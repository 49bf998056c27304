package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pitch/pitch"
	"github.com/lixenwraith/pitch/tone"
)

var (
	startFlag = flag.String("start", "A4", "Initial pitch, e.g. C#4 or A4+25c")
	tableFlag = flag.Bool("table", false, "Print the C0..B8 frequency table and exit")
	soundFlag = flag.Bool("sound", false, "Enable playback with 'p'")
	waveFlag  = flag.String("wave", "sine", "Playback wave: sine, square, saw, triangle")
	debugFlag = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
)

func main() {
	flag.Parse()

	if *tableFlag {
		if err := writeTable(os.Stdout, pitch.Standard()); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write table: %v\n", err)
			os.Exit(1)
		}
		return
	}

	start, err := pitch.Parse(*startFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -start: %v\n", err)
		os.Exit(2)
	}

	cfg := tone.DefaultConfig()
	if cfg.Wave, err = parseWave(*waveFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -wave: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(start, cfg, *soundFlag); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func parseWave(name string) (tone.WaveType, error) {
	switch name {
	case "sine":
		return tone.WaveSine, nil
	case "square":
		return tone.WaveSquare, nil
	case "saw":
		return tone.WaveSaw, nil
	case "triangle":
		return tone.WaveTriangle, nil
	default:
		return 0, fmt.Errorf("%w: unknown wave %q", tone.ErrArgument, name)
	}
}

func run(start pitch.Pitch, cfg *tone.Config, sound bool) error {
	var pl *player
	if sound {
		var err error
		if pl, err = newPlayer(cfg); err != nil {
			// Non-fatal, the explorer works without sound
			log.Printf("Audio initialization failed: %v", err)
			pl = nil
		}
	}
	defer pl.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	ex := newExplorer(start)
	log.Printf("Explorer started at %s", start)
	ex.draw(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			a := keyAction(ev)
			switch a {
			case actionQuit:
				return nil
			case actionPlay:
				ex.status = ""
				if pl == nil {
					ex.status = "Sound is off, start with -sound"
				} else if err := pl.play(ex.current, ex.reference()); err != nil {
					log.Printf("Playback failed: %v", err)
					ex.status = err.Error()
				}
			default:
				ex.status = ""
				ex.apply(a)
			}
		}
		ex.draw(screen)
	}
}
