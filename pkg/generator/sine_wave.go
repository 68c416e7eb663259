package generator

import (
	"io"
	"math"
	"sync"
	"time"
)

const (
	sampleBytes = 2 // signed 16-bit little endian
	amplitude   = 0.3

	// rampSamples is the linear fade applied at both ends of the tone;
	// keying the oscillator at full amplitude clicks audibly.
	rampSamples = 300
)

// SineWave is an io.Reader producing a fixed-length sine tone in the
// generator's PCM format; one instance backs one oto player.
type SineWave struct {
	freq   float64
	length int64
	pos    int64

	channelCount int

	remaining []byte

	m sync.Mutex
}

func NewSineWave(freq float64, duration time.Duration, channelCount int) *SineWave {
	l := int64(channelCount) * sampleBytes * int64(DefaultSampleRate) * int64(duration) / int64(time.Second)
	l = l / 4 * 4
	return &SineWave{
		freq:         freq,
		length:       l,
		channelCount: channelCount,
	}
}

func (s *SineWave) Read(buf []byte) (int, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.remaining) > 0 {
		n := copy(buf, s.remaining)
		copy(s.remaining, s.remaining[n:])
		s.remaining = s.remaining[:len(s.remaining)-n]
		return n, nil
	}

	if s.pos == s.length {
		return 0, io.EOF
	}

	eof := false
	if s.pos+int64(len(buf)) > s.length {
		buf = buf[:s.length-s.pos]
		eof = true
	}

	var origBuf []byte
	if len(buf)%4 > 0 {
		origBuf = buf
		buf = make([]byte, len(origBuf)+4-len(origBuf)%4)
	}

	period := float64(DefaultSampleRate) / s.freq

	num := sampleBytes * s.channelCount
	total := s.length / int64(num)
	p := s.pos / int64(num)
	for i := 0; i < len(buf)/num; i++ {
		const max = 32767
		v := math.Sin(2*math.Pi*float64(p)/period) * amplitude * max

		if p < rampSamples {
			v *= float64(p) / rampSamples
		}
		if rest := total - p; rest < rampSamples {
			v *= float64(rest) / rampSamples
		}

		b := int16(v)
		for ch := 0; ch < s.channelCount; ch++ {
			buf[num*i+2*ch] = byte(b)
			buf[num*i+1+2*ch] = byte(b >> 8)
		}
		p++
	}

	s.pos += int64(len(buf))

	n := len(buf)
	if origBuf != nil {
		n = copy(origBuf, buf)
		s.remaining = buf[n:]
	}

	if eof {
		return n, io.EOF
	}

	return n, nil
}

func (s *SineWave) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		s.pos = offset
	case io.SeekCurrent:
		s.pos += offset
	case io.SeekEnd:
		s.pos = s.length + offset
	}

	s.remaining = nil
	return s.pos, nil
}
