// Package generator keys Morse audio through the system sound device using
// oto. A Generator is a morse.Device: On plays a sine sidetone for the
// requested number of time units, Off stays silent, and both block for the
// whole span so playback happens in real time.
package generator

import (
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gucio32/morsekey/pkg/morse"
)

const (
	DefaultFrequency    = 784.0 // this is G
	DefaultSampleRate   = 48000
	DefaultFormat       = oto.FormatSignedInt16LE
	DefaultChannelCount = 2
	DefaultPARIS        = 20
)

type Generator struct {
	ctx          *oto.Context
	freq         float64
	UnitDuration time.Duration
}

var _ morse.Device = (*Generator)(nil)

func NewGenerator() (*Generator, error) {
	op := &oto.NewContextOptions{
		SampleRate:   DefaultSampleRate,
		Format:       DefaultFormat,
		ChannelCount: DefaultChannelCount,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}

	<-ready

	result := &Generator{
		ctx:  ctx,
		freq: DefaultFrequency,
	}

	result.SetPARIS(DefaultPARIS)

	return result, nil
}

// SetPARIS sets the speed in words per minute following the PARIS
// convention: "PARIS " is 50 units, so unit duration is 60s/(50*paris).
func (g *Generator) SetPARIS(paris int) *Generator {
	g.UnitDuration = time.Duration(60*time.Second) / time.Duration(50*paris)
	return g
}

// SetFrequency changes the sidetone pitch in Hz.
func (g *Generator) SetFrequency(freq float64) *Generator {
	g.freq = freq
	return g
}

// On plays the sidetone for units time units and blocks until it ends.
func (g *Generator) On(units uint) error {
	d := time.Duration(units) * g.UnitDuration
	player := g.ctx.NewPlayer(NewSineWave(g.freq, d, DefaultChannelCount))
	player.Play()
	time.Sleep(d)

	return player.Close()
}

// Off keeps the line silent for units time units.
func (g *Generator) Off(units uint) error {
	time.Sleep(time.Duration(units) * g.UnitDuration)
	return nil
}
