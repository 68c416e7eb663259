package morse

// Standard timing, in units: a dot keys the device on for DotUnits, a dash
// for DashUnits; the gaps are ElementGapUnits between elements of one
// character, CharGapUnits between characters of one word and WordGapUnits
// between words.
const (
	DotUnits        = 1
	DashUnits       = 3
	ElementGapUnits = 1
	CharGapUnits    = 3
	WordGapUnits    = 7
)

// Device is the on/off output a Player drives: an LED, a buzzer, a radio
// key, an audio sidetone. Both calls are expected to block for the requested
// number of time units — the device owns the delay and the meaning of one
// unit. Either call may fail; playback stops at the first failure.
type Device interface {
	On(units uint) error
	Off(units uint) error
}

// Player sequences signal values into timed device calls. It borrows the
// device for the duration of each Play call and must not be shared between
// concurrent playbacks of the same device.
type Player struct {
	dev     Device
	charGap uint
	wordGap uint
}

// Option adjusts a Player beyond the standard timing.
type Option func(*Player)

// WithCharGap stretches the gap between characters to n units. The standard
// ratio is 3; lessons stretch it to slow character rhythm without slowing
// the characters themselves.
func WithCharGap(n uint) Option {
	return func(p *Player) { p.charGap = n }
}

// WithWordGap stretches the gap between words to n units. The standard
// ratio is 7.
func WithWordGap(n uint) Option {
	return func(p *Player) { p.wordGap = n }
}

// NewPlayer returns a Player driving dev with standard Morse timing unless
// options say otherwise.
func NewPlayer(dev Device, opts ...Option) *Player {
	p := &Player{
		dev:     dev,
		charGap: CharGapUnits,
		wordGap: WordGapUnits,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// PlayWord keys one word: each element on for its duration, one unit off
// between elements, the character gap between characters. No gap is emitted
// after the last element. An empty word emits nothing.
func (p *Player) PlayWord(w Word) error {
	for i, c := range w {
		if i > 0 {
			if err := p.dev.Off(p.charGap); err != nil {
				return err
			}
		}

		if err := p.playCharacter(c); err != nil {
			return err
		}
	}

	return nil
}

// PlayMessage keys a message, separating words with the word gap. Empty
// words are skipped and contribute no gap; an empty message emits nothing.
func (p *Player) PlayMessage(m Message) error {
	played := false
	for _, w := range m {
		if len(w) == 0 {
			continue
		}

		if played {
			if err := p.dev.Off(p.wordGap); err != nil {
				return err
			}
		}

		if err := p.PlayWord(w); err != nil {
			return err
		}

		played = true
	}

	return nil
}

// PlayString encodes text through the code table and plays the result.
// Characters without a table entry are dropped, not errors.
func (p *Player) PlayString(text string) error {
	return p.PlayMessage(EncodeString(text))
}

func (p *Player) playCharacter(c Character) error {
	for i := 0; i < c.Len(); i++ {
		if i > 0 {
			if err := p.dev.Off(ElementGapUnits); err != nil {
				return err
			}
		}

		units := uint(DotUnits)
		if c.At(i) == Dash {
			units = DashUnits
		}

		if err := p.dev.On(units); err != nil {
			return err
		}
	}

	return nil
}
