// Package audio plays a short tone whenever the registry destroys an entity.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/edwinsyarief/stabby"
)

const (
	sampleRate    = beep.SampleRate(44100)
	blipFrequency = 880.0
	blipDuration  = 40 * time.Millisecond
)

// Cue owns the speaker. A disabled Cue accepts every call and plays nothing.
type Cue struct {
	enabled bool
	play    func(...beep.Streamer)
	logger  zerolog.Logger
	played  int
}

// New opens the speaker when enabled is set. A speaker that fails to open is
// logged and leaves the Cue disabled.
func New(enabled bool, logger zerolog.Logger) *Cue {
	c := &Cue{logger: logger}
	if !enabled {
		return c
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn().Err(err).Msg("audio disabled: speaker init failed")
		return c
	}
	c.enabled = true
	c.play = speaker.Play
	return c
}

// Enabled reports whether sounds are played.
func (c *Cue) Enabled() bool {
	return c.enabled
}

// Played returns how many blips were started.
func (c *Cue) Played() int {
	return c.played
}

// Attach plays a blip for every entity r destroys.
func (c *Cue) Attach(r *stabby.Registry) {
	stabby.Subscribe(r.Events(), func(stabby.EntityKilled) {
		c.Blip()
	})
}

// Blip plays one short sine tone.
func (c *Cue) Blip() {
	if !c.enabled {
		return
	}
	s, err := blip()
	if err != nil {
		c.logger.Warn().Err(err).Msg("failed to build blip")
		return
	}
	c.play(s)
	c.played++
}

// Close releases the speaker.
func (c *Cue) Close() {
	if !c.enabled {
		return
	}
	speaker.Close()
	c.enabled = false
}

func blip() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, blipFrequency)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create sine tone")
	}
	return beep.Take(sampleRate.N(blipDuration), sine), nil
}
