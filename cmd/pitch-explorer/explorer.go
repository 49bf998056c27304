package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pitch/interval"
	"github.com/lixenwraith/pitch/midikey"
	"github.com/lixenwraith/pitch/pitch"
)

// detuneStep is the pitch change of one +/- key press, in semitones
const detuneStep = 0.05

// Reference intervals cycled with 'i'
var referenceIntervals = []interval.Interval{
	interval.MinorThird,
	interval.MajorThird,
	interval.PerfectFourth,
	interval.PerfectFifth,
	interval.Octave,
}

type action int

const (
	actionNone action = iota
	actionUp
	actionDown
	actionOctaveUp
	actionOctaveDown
	actionSharpen
	actionFlatten
	actionNextInterval
	actionReset
	actionPlay
	actionQuit
)

// explorer holds the pitch under the cursor; all changes go through apply
type explorer struct {
	start   pitch.Pitch
	current pitch.Pitch
	ref     int
	status  string
}

func newExplorer(start pitch.Pitch) *explorer {
	return &explorer{start: start, current: start}
}

func (e *explorer) reference() interval.Interval {
	return referenceIntervals[e.ref]
}

// upper is the current pitch raised by the reference interval
func (e *explorer) upper() pitch.Pitch {
	return interval.Apply(e.current, e.reference())
}

func (e *explorer) apply(a action) {
	var step interval.Interval
	switch a {
	case actionNextInterval:
		e.ref = (e.ref + 1) % len(referenceIntervals)
		return
	case actionReset:
		e.current = e.start
		e.ref = 0
		return
	case actionUp:
		step = interval.MinorSecond
	case actionDown:
		step = interval.Invert(interval.MinorSecond)
	case actionOctaveUp:
		step = interval.Octave
	case actionOctaveDown:
		step = interval.Invert(interval.Octave)
	case actionSharpen:
		step, _ = interval.FromSemitones(detuneStep)
	case actionFlatten:
		step, _ = interval.FromSemitones(-detuneStep)
	default:
		return
	}
	e.current = interval.Apply(e.current, step)
}

// lines renders the explorer panel as text
func (e *explorer) lines() []string {
	p := e.current
	fromA4 := interval.Between(pitch.Pitch{}, p)
	up := e.upper()

	key := "out of range"
	if k, err := midikey.Key(p); err == nil {
		key = fmt.Sprint(k)
	}

	out := []string{
		fmt.Sprintf("Pitch      %s", p),
		fmt.Sprintf("Frequency  %s", p.FrequencyString()),
		fmt.Sprintf("Class      %s  octave %d  %+.2fc", p.Name(), p.Octave(), p.Cents()),
		fmt.Sprintf("From A4    %s (%s)", fromA4, fromA4.CentsString()),
		fmt.Sprintf("MIDI key   %s", key),
		fmt.Sprintf("Interval   %s %s → %s (%s)", e.reference().Short(), e.reference().Name(), up, up.FrequencyString()),
		"",
		"↑/↓ semitone  ←/→ octave  +/- 5 cents  i interval  r reset  p play  q quit",
	}
	if e.status != "" {
		out = append(out, "", e.status)
	}
	return out
}

// keyAction maps a key event to an explorer action
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyUp:
		return actionUp
	case tcell.KeyDown:
		return actionDown
	case tcell.KeyRight:
		return actionOctaveUp
	case tcell.KeyLeft:
		return actionOctaveDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case '+', '=':
			return actionSharpen
		case '-', '_':
			return actionFlatten
		case 'i':
			return actionNextInterval
		case 'r':
			return actionReset
		case 'p':
			return actionPlay
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// draw paints the panel at the top-left of the screen
func (e *explorer) draw(screen tcell.Screen) {
	screen.Clear()
	style := tcell.StyleDefault
	title := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	for y, line := range e.lines() {
		st := style
		if y == 0 {
			st = title
		}
		x := 1
		for _, r := range line {
			screen.SetContent(x, y+1, r, nil, st)
			x += runewidth.RuneWidth(r)
		}
	}
	screen.Show()
}
