package audio

import (
	"testing"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/stabby"
)

func TestBlipIsShortAndBounded(t *testing.T) {
	t.Parallel()

	s, err := blip()
	require.NoError(t, err)

	samples := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(samples)
		for i := range n {
			assert.LessOrEqual(t, samples[i][0], 1.0)
			assert.GreaterOrEqual(t, samples[i][0], -1.0)
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(blipDuration), total)
}

func TestDisabledCue(t *testing.T) {
	t.Parallel()

	c := New(false, zerolog.Nop())
	assert.False(t, c.Enabled())

	c.Blip()
	c.Close()
	assert.Zero(t, c.Played())
}

func TestCuePlaysOnKill(t *testing.T) {
	t.Parallel()

	var streams []beep.Streamer
	c := &Cue{
		enabled: true,
		play:    func(s ...beep.Streamer) { streams = append(streams, s...) },
		logger:  zerolog.Nop(),
	}

	r := stabby.NewRegistry()
	c.Attach(r)

	a, b := r.CreateEntity(), r.CreateEntity()
	r.Update()
	r.KillEntity(a)
	r.KillEntity(b)
	assert.Empty(t, streams)

	r.Update()
	assert.Len(t, streams, 2)
	assert.Equal(t, 2, c.Played())
}
