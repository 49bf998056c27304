package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pitch/pitch"
)

// Column display widths; note names carry ♯/♭ so widths are measured in cells
const (
	colName   = 8
	colOctave = 7
	colFreq   = 12
	colKey    = 5
)

// writeTable prints one aligned row per pitch
func writeTable(w io.Writer, ps []pitch.Pitch) error {
	if err := writeRow(w, "Note", "Octave", "Hz", "MIDI"); err != nil {
		return err
	}
	for _, p := range ps {
		err := writeRow(w,
			p.Name().String(),
			strconv.Itoa(p.Octave()),
			fmt.Sprintf("%.2f", p.Frequency()),
			strconv.Itoa(p.Key()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, name, octave, freq, key string) error {
	_, err := fmt.Fprintf(w, "%s%s%s%s\n",
		runewidth.FillRight(name, colName),
		runewidth.FillLeft(octave, colOctave),
		runewidth.FillLeft(freq, colFreq),
		runewidth.FillLeft(key, colKey),
	)
	return err
}
