// Package tone renders pitches and intervals as beep streamers. It produces
// samples only; playing them is left to the caller.
package tone

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/pitch/interval"
	"github.com/lixenwraith/pitch/pitch"
)

// Render returns an enveloped tone of p lasting duration
func Render(p pitch.Pitch, duration time.Duration, cfg *Config) (beep.Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return render(p, duration, cfg, cfg.Volume)
}

func render(p pitch.Pitch, duration time.Duration, cfg *Config, volume float64) (beep.Streamer, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration %v must be positive", ErrArgument, duration)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	freq := p.Frequency()
	if nyquist := float64(cfg.SampleRate) / 2; freq >= nyquist {
		return nil, fmt.Errorf("%w: %s (%s) is at or above the %v Hz Nyquist limit", ErrArgument, p, p.FrequencyString(), nyquist)
	}

	var src beep.Streamer
	if cfg.Wave == WaveSine {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("%w: sine tone: %v", ErrArgument, err)
		}
		src = beep.Take(rate.N(duration), sine)
	} else {
		src = NewOscillator(freq, duration, cfg.Wave, rate)
	}

	shaped := NewEnvelope(src, duration, cfg.Attack, cfg.Release, rate)
	return withGain(shaped, volume), nil
}

// RenderInterval renders root and root+iv, together when harmonic, one after
// the other otherwise. Harmonic dyads are rendered at half volume per voice.
func RenderInterval(root pitch.Pitch, iv interval.Interval, duration time.Duration, cfg *Config, harmonic bool) (beep.Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	upper := interval.Apply(root, iv)

	volume := cfg.Volume
	if harmonic {
		volume /= 2
	}
	lo, err := render(root, duration, cfg, volume)
	if err != nil {
		return nil, err
	}
	hi, err := render(upper, duration, cfg, volume)
	if err != nil {
		return nil, err
	}

	if harmonic {
		return beep.Mix(lo, hi), nil
	}
	return beep.Seq(lo, hi), nil
}

// RenderSequence renders ps back to back, each lasting each
func RenderSequence(ps []pitch.Pitch, each time.Duration, cfg *Config) (beep.Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	streamers := make([]beep.Streamer, 0, len(ps))
	for _, p := range ps {
		s, err := render(p, each, cfg, cfg.Volume)
		if err != nil {
			return nil, err
		}
		streamers = append(streamers, s)
	}
	return beep.Seq(streamers...), nil
}
