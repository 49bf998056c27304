package tone

import (
	"fmt"
	"time"

	"github.com/lixenwraith/pitch/note"
)

var ErrArgument = note.ErrArgument

// Config shapes rendered tones
type Config struct {
	SampleRate int
	Volume     float64 // 0.0-1.0
	Attack     time.Duration
	Release    time.Duration
	Wave       WaveType
}

// DefaultConfig returns a soft sine at CD sample rate
func DefaultConfig() *Config {
	return &Config{
		SampleRate: 44100,
		Volume:     0.5,
		Attack:     10 * time.Millisecond,
		Release:    80 * time.Millisecond,
		Wave:       WaveSine,
	}
}

// Validate checks ranges
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil tone config", ErrArgument)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrArgument, c.SampleRate)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume %v not in 0..1", ErrArgument, c.Volume)
	}
	if c.Attack < 0 || c.Release < 0 {
		return fmt.Errorf("%w: attack %v and release %v must not be negative", ErrArgument, c.Attack, c.Release)
	}
	if c.Wave < WaveSine || c.Wave >= waveTypeCount {
		return fmt.Errorf("%w: unknown wave type %d", ErrArgument, c.Wave)
	}
	return nil
}
