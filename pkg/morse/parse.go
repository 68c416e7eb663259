package morse

import (
	"fmt"
	"strings"
	"unicode"
)

// Literal notation: '.' is a dot, '-' (or '_') is a dash, '/' separates
// characters within a word and whitespace separates words. Examples:
//
//	".../---/..."        the word SOS
//	"--.-/-.-. ...-"     the message "qc v"
//
// The notation is meant to be written in source and validated before the
// program runs: feed it to the morsekey gen command under go:generate, or
// assign a MustWord/MustMessage call to a package-level variable so a bad
// literal fails at process start.

// ParseError reports the first offending rune of a malformed literal.
// Pos is 1-based over the runes of the input.
type ParseError struct {
	Pos   int
	Token rune

	// TooLong marks a character that overflows MaxElements; Token is then
	// the first excess element.
	TooLong bool
}

func (e *ParseError) Error() string {
	switch {
	case e.TooLong:
		return fmt.Sprintf("morse: character longer than %d elements at position %d", MaxElements, e.Pos)
	case e.Token == '/':
		return fmt.Sprintf("morse: empty character at position %d", e.Pos)
	default:
		return fmt.Sprintf("morse: invalid token %q at position %d", e.Token, e.Pos)
	}
}

// ParseWord parses the literal notation of a single word. Any rune outside
// the three token classes, and any empty character (a doubled, leading or
// trailing separator), is a *ParseError.
func ParseWord(literal string) (Word, error) {
	word, err := parseWordAt(literal, 1)
	if err != nil {
		return nil, err
	}

	return word, nil
}

// ParseMessage parses the literal notation of a whole message, splitting
// words on whitespace.
func ParseMessage(literal string) (Message, error) {
	var msg Message

	pos := 1
	start := -1 // rune index of the current word, -1 between words
	var word strings.Builder

	flush := func() error {
		if start < 0 {
			return nil
		}

		w, err := parseWordAt(word.String(), start)
		if err != nil {
			return err
		}

		msg = append(msg, w)
		word.Reset()
		start = -1
		return nil
	}

	for _, r := range literal {
		if unicode.IsSpace(r) {
			if err := flush(); err != nil {
				return nil, err
			}
		} else {
			if start < 0 {
				start = pos
			}
			word.WriteRune(r)
		}
		pos++
	}

	if err := flush(); err != nil {
		return nil, err
	}

	return msg, nil
}

// MustWord is ParseWord for package-level constants; it panics on a
// malformed literal.
func MustWord(literal string) Word {
	w, err := ParseWord(literal)
	if err != nil {
		panic(err)
	}

	return w
}

// MustMessage is ParseMessage for package-level constants; it panics on a
// malformed literal.
func MustMessage(literal string) Message {
	m, err := ParseMessage(literal)
	if err != nil {
		panic(err)
	}

	return m
}

// parseWordAt parses one word's notation; base is the 1-based rune position
// of its first rune in the enclosing literal, so errors point into the
// original input.
func parseWordAt(literal string, base int) (Word, error) {
	var word Word
	var elems []Element

	pos := base
	for _, r := range literal {
		switch r {
		case '.', '-', '_':
			if len(elems) == MaxElements {
				return nil, &ParseError{Pos: pos, Token: r, TooLong: true}
			}
			if r == '.' {
				elems = append(elems, Dot)
			} else {
				elems = append(elems, Dash)
			}
		case '/':
			if len(elems) == 0 {
				return nil, &ParseError{Pos: pos, Token: '/'}
			}
			word = append(word, NewCharacter(elems...))
			elems = elems[:0]
		default:
			return nil, &ParseError{Pos: pos, Token: r}
		}
		pos++
	}

	if len(elems) == 0 {
		if len(word) > 0 {
			// Trailing separator left an empty character behind.
			return nil, &ParseError{Pos: pos - 1, Token: '/'}
		}

		return word, nil
	}

	return append(word, NewCharacter(elems...)), nil
}
