package device

import (
	"errors"
	"testing"
	"time"

	"github.com/gucio32/morsekey/pkg/morse"
	"github.com/stretchr/testify/require"
)

type fakePin struct {
	levels  []bool
	failSet bool
	err     error
}

func (p *fakePin) Set(high bool) error {
	if p.failSet {
		return p.err
	}

	p.levels = append(p.levels, high)
	return nil
}

func TestPinDevice_On(t *testing.T) {
	req := require.New(t)

	pin := &fakePin{}
	var slept time.Duration

	d := NewPinDevice(pin, 50*time.Millisecond)
	d.sleep = func(dur time.Duration) { slept += dur }

	req.NoError(d.On(3))
	req.Equal([]bool{true, false}, pin.levels)
	req.Equal(150*time.Millisecond, slept)
}

func TestPinDevice_Off(t *testing.T) {
	req := require.New(t)

	pin := &fakePin{}
	var slept time.Duration

	d := NewPinDevice(pin, 50*time.Millisecond)
	d.sleep = func(dur time.Duration) { slept += dur }

	req.NoError(d.Off(7))
	req.Empty(pin.levels)
	req.Equal(350*time.Millisecond, slept)
}

func TestPinDevice_PropagatesPinError(t *testing.T) {
	req := require.New(t)

	sentinel := errors.New("pin busy")
	pin := &fakePin{failSet: true, err: sentinel}

	d := NewPinDevice(pin, time.Millisecond)
	d.sleep = func(time.Duration) {}

	req.ErrorIs(d.On(1), sentinel)
}

func TestPinDevice_KeysSOS(t *testing.T) {
	req := require.New(t)

	pin := &fakePin{}
	d := NewPinDevice(pin, time.Millisecond)
	d.sleep = func(time.Duration) {}

	err := morse.NewPlayer(d).PlayWord(morse.MustWord(".../---/..."))
	req.NoError(err)

	// Nine on/off pairs, one per element.
	req.Len(pin.levels, 18)
	for i, high := range pin.levels {
		req.Equal(i%2 == 0, high, "level %d", i)
	}
}
