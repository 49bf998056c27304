package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pitch/interval"
	"github.com/lixenwraith/pitch/pitch"
	"github.com/lixenwraith/pitch/tone"
)

const noteDuration = 400 * time.Millisecond

// player sends rendered tones to the speaker; a nil player is silent
type player struct {
	cfg *tone.Config
}

func newPlayer(cfg *tone.Config) (*player, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &player{cfg: cfg}, nil
}

// play sounds p followed by p+iv, cutting off anything still playing
func (pl *player) play(p pitch.Pitch, iv interval.Interval) error {
	if pl == nil {
		return nil
	}
	s, err := tone.RenderInterval(p, iv, noteDuration, pl.cfg, false)
	if err != nil {
		return err
	}
	speaker.Clear()
	speaker.Play(s)
	log.Printf("Playing %s then %s", p, interval.Apply(p, iv))
	return nil
}

func (pl *player) close() {
	if pl == nil {
		return
	}
	speaker.Close()
}
