// Package midikey maps pitches onto MIDI key numbers and channel messages.
// Microtonal deviation travels as a pitch bend ahead of the note-on.
package midikey

import (
	"fmt"
	"math"

	"gitlab.com/gomidi/midi/v2"

	"github.com/lixenwraith/pitch/note"
	"github.com/lixenwraith/pitch/pitch"
)

const (
	MaxKey      = 127
	MaxChannel  = 15
	MaxVelocity = 127

	// DefaultBendRange is the General MIDI pitch-bend sensitivity, in semitones
	DefaultBendRange = 2.0

	bendMin = -8192
	bendMax = 8191
)

var ErrArgument = note.ErrArgument

// Key returns the MIDI key of the nearest note
func Key(p pitch.Pitch) (uint8, error) {
	k := p.Key()
	if k < 0 || k > MaxKey {
		return 0, fmt.Errorf("%w: %s is outside the MIDI key range", ErrArgument, p)
	}
	return uint8(k), nil
}

func validBendRange(bendRange float64) bool {
	return bendRange > 0 && !math.IsInf(bendRange, 0)
}

// BendValue converts a deviation in cents into a 14-bit signed bend for a
// receiver whose bend range is bendRange semitones. An invalid bend range or a
// NaN deviation yields the centre value 0.
func BendValue(cents, bendRange float64) int16 {
	if !validBendRange(bendRange) || math.IsNaN(cents) {
		return 0
	}
	v := math.Round(cents / (bendRange * pitch.CentsPerSemitone) * -bendMin)
	switch {
	case v < bendMin:
		return bendMin
	case v > bendMax:
		return bendMax
	}
	return int16(v)
}

// BendCents is the inverse of BendValue; 0 for an invalid bend range
func BendCents(value int16, bendRange float64) float64 {
	if !validBendRange(bendRange) {
		return 0
	}
	return float64(value) / -bendMin * bendRange * pitch.CentsPerSemitone
}

// NoteOn returns a pitch bend carrying p's deviation followed by the note-on
// of its nearest key. The bend is always sent so a previous detune is reset.
func NoteOn(p pitch.Pitch, channel, velocity uint8, bendRange float64) ([]midi.Message, error) {
	if channel > MaxChannel {
		return nil, fmt.Errorf("%w: channel %d not in 0..%d", ErrArgument, channel, MaxChannel)
	}
	if velocity == 0 || velocity > MaxVelocity {
		return nil, fmt.Errorf("%w: velocity %d not in 1..%d", ErrArgument, velocity, MaxVelocity)
	}
	if !validBendRange(bendRange) {
		return nil, fmt.Errorf("%w: bend range %v must be positive and finite", ErrArgument, bendRange)
	}
	key, err := Key(p)
	if err != nil {
		return nil, err
	}
	return []midi.Message{
		midi.Pitchbend(channel, BendValue(p.Cents(), bendRange)),
		midi.NoteOn(channel, key, velocity),
	}, nil
}

// NoteOff returns the note-off for p's nearest key
func NoteOff(p pitch.Pitch, channel uint8) (midi.Message, error) {
	if channel > MaxChannel {
		return nil, fmt.Errorf("%w: channel %d not in 0..%d", ErrArgument, channel, MaxChannel)
	}
	key, err := Key(p)
	if err != nil {
		return nil, err
	}
	return midi.NoteOff(channel, key), nil
}

// Decode returns the pitch of the last sounding note-on in msgs, detuned by the
// most recent pitch bend on its channel. ok is false when no note starts.
// With an invalid bend range the bends are ignored.
func Decode(msgs []midi.Message, bendRange float64) (p pitch.Pitch, ok bool) {
	var bends [MaxChannel + 1]int16
	var channel, key, velocity uint8
	var relative int16
	var absolute uint16

	for _, msg := range msgs {
		switch {
		case msg.GetPitchBend(&channel, &relative, &absolute):
			bends[channel&MaxChannel] = relative
		case msg.GetNoteStart(&channel, &key, &velocity):
			cents := BendCents(bends[channel&MaxChannel], bendRange)
			p = pitch.FromKey(int(key)).Shift(cents / pitch.CentsPerSemitone)
			ok = true
		}
	}
	return p, ok
}
