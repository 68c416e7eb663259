// Package morse implements a typed Morse code model: elements (dots and
// dashes), characters, words and messages, a bidirectional code table, a
// dot/dash literal parser and a playback engine generic over any on/off
// device.
package morse

// Element is a single Morse signal, a dot or a dash.
// It carries no timing; durations are a property of playback.
type Element uint8

const (
	Dot Element = iota
	Dash
)

func (e Element) String() string {
	if e == Dash {
		return "-"
	}
	return "."
}

// MaxElements is the capacity of a Character. The longest standard code
// forms (punctuation) are six elements.
const MaxElements = 8

// Character is the element sequence of one text character. It is a value
// type with fixed capacity, so building and copying characters never
// allocates.
type Character struct {
	n     uint8
	elems [MaxElements]Element
}

// NewCharacter builds a Character from up to MaxElements elements.
// It panics when given more; no code form that long exists.
func NewCharacter(elems ...Element) Character {
	if len(elems) > MaxElements {
		panic("morse: character too long")
	}

	var c Character
	c.n = uint8(copy(c.elems[:], elems))
	return c
}

// Len reports the number of elements in the character.
func (c Character) Len() int {
	return int(c.n)
}

// At returns the i-th element.
func (c Character) At(i int) Element {
	if i < 0 || i >= int(c.n) {
		panic("morse: element index out of range")
	}

	return c.elems[i]
}

// Elements returns the character's elements as a fresh slice.
func (c Character) Elements() []Element {
	out := make([]Element, c.n)
	copy(out, c.elems[:c.n])
	return out
}

// Equal reports whether two characters have the same element sequence.
func (c Character) Equal(other Character) bool {
	if c.n != other.n {
		return false
	}

	for i := uint8(0); i < c.n; i++ {
		if c.elems[i] != other.elems[i] {
			return false
		}
	}

	return true
}

// String renders the character in dot/dash notation, e.g. ".-" for A.
func (c Character) String() string {
	buf := make([]byte, c.n)
	for i := uint8(0); i < c.n; i++ {
		if c.elems[i] == Dash {
			buf[i] = '-'
		} else {
			buf[i] = '.'
		}
	}

	return string(buf)
}

// Word is an ordered sequence of characters. It may be empty; empty words
// play nothing.
type Word []Character

// Equal reports whether two words have the same characters in the same
// order.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}

	for i := range w {
		if !w[i].Equal(other[i]) {
			return false
		}
	}

	return true
}

// String renders the word with "/" between characters, e.g. ".../---/...".
func (w Word) String() string {
	out := ""
	for i, c := range w {
		if i > 0 {
			out += "/"
		}
		out += c.String()
	}

	return out
}

// Message is an ordered sequence of words, the full encoded form of a text
// string.
type Message []Word

// Equal reports whether two messages have the same words in the same order.
func (m Message) Equal(other Message) bool {
	if len(m) != len(other) {
		return false
	}

	for i := range m {
		if !m[i].Equal(other[i]) {
			return false
		}
	}

	return true
}

// String renders the message with one space between words.
func (m Message) String() string {
	out := ""
	for i, w := range m {
		if i > 0 {
			out += " "
		}
		out += w.String()
	}

	return out
}
