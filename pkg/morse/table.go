package morse

import (
	"strings"
	"unicode"
)

// codeTable is the International Morse Code table. Keys are lowercase; Encode
// folds case before the lookup. The table is built once and never mutated.
var codeTable = map[rune]Character{
	'a': NewCharacter(Dot, Dash),
	'b': NewCharacter(Dash, Dot, Dot, Dot),
	'c': NewCharacter(Dash, Dot, Dash, Dot),
	'd': NewCharacter(Dash, Dot, Dot),
	'e': NewCharacter(Dot),
	'f': NewCharacter(Dot, Dot, Dash, Dot),
	'g': NewCharacter(Dash, Dash, Dot),
	'h': NewCharacter(Dot, Dot, Dot, Dot),
	'i': NewCharacter(Dot, Dot),
	'j': NewCharacter(Dot, Dash, Dash, Dash),
	'k': NewCharacter(Dash, Dot, Dash),
	'l': NewCharacter(Dot, Dash, Dot, Dot),
	'm': NewCharacter(Dash, Dash),
	'n': NewCharacter(Dash, Dot),
	'o': NewCharacter(Dash, Dash, Dash),
	'p': NewCharacter(Dot, Dash, Dash, Dot),
	'q': NewCharacter(Dash, Dash, Dot, Dash),
	'r': NewCharacter(Dot, Dash, Dot),
	's': NewCharacter(Dot, Dot, Dot),
	't': NewCharacter(Dash),
	'u': NewCharacter(Dot, Dot, Dash),
	'v': NewCharacter(Dot, Dot, Dot, Dash),
	'w': NewCharacter(Dot, Dash, Dash),
	'x': NewCharacter(Dash, Dot, Dot, Dash),
	'y': NewCharacter(Dash, Dot, Dash, Dash),
	'z': NewCharacter(Dash, Dash, Dot, Dot),

	'0': NewCharacter(Dash, Dash, Dash, Dash, Dash),
	'1': NewCharacter(Dot, Dash, Dash, Dash, Dash),
	'2': NewCharacter(Dot, Dot, Dash, Dash, Dash),
	'3': NewCharacter(Dot, Dot, Dot, Dash, Dash),
	'4': NewCharacter(Dot, Dot, Dot, Dot, Dash),
	'5': NewCharacter(Dot, Dot, Dot, Dot, Dot),
	'6': NewCharacter(Dash, Dot, Dot, Dot, Dot),
	'7': NewCharacter(Dash, Dash, Dot, Dot, Dot),
	'8': NewCharacter(Dash, Dash, Dash, Dot, Dot),
	'9': NewCharacter(Dash, Dash, Dash, Dash, Dot),

	'.': NewCharacter(Dot, Dash, Dot, Dash, Dot, Dash),
	',': NewCharacter(Dash, Dash, Dot, Dot, Dash, Dash),
	'?': NewCharacter(Dot, Dot, Dash, Dash, Dot, Dot),
	'/': NewCharacter(Dash, Dot, Dot, Dash, Dot),
	'=': NewCharacter(Dash, Dot, Dot, Dot, Dash),
}

// decodeTable is the inverse of codeTable, keyed by the dot/dash rendering of
// each entry.
var decodeTable = func() map[string]rune {
	inv := make(map[string]rune, len(codeTable))
	for r, c := range codeTable {
		inv[c.String()] = r
	}

	return inv
}()

// Encode returns the Morse form of a single character. Upper- and lowercase
// letters share one entry. The second return value is false for characters
// outside the table.
func Encode(r rune) (Character, bool) {
	c, ok := codeTable[unicode.ToLower(r)]
	return c, ok
}

// Decode is the inverse of Encode: it returns the (lowercase) text character
// for a Morse form, or false when no table entry matches.
func Decode(c Character) (rune, bool) {
	r, ok := decodeTable[c.String()]
	return r, ok
}

// EncodeString converts text to a Message. Words are split on whitespace
// (runs of whitespace fold into a single word break). Characters without a
// table entry are silently dropped, so arbitrary text never fails to encode.
func EncodeString(text string) Message {
	fields := strings.Fields(text)

	msg := make(Message, 0, len(fields))
	for _, field := range fields {
		word := make(Word, 0, len(field))
		for _, r := range field {
			if c, ok := Encode(r); ok {
				word = append(word, c)
			}
		}

		msg = append(msg, word)
	}

	return msg
}
