package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode_KnownForms(t *testing.T) {
	req := require.New(t)

	for input, want := range map[rune]string{
		'a': ".-",
		'b': "-...",
		'e': ".",
		'q': "--.-",
		'z': "--..",
		'0': "-----",
		'1': ".----",
		'5': ".....",
		'9': "----.",
		'.': ".-.-.-",
		',': "--..--",
		'?': "..--..",
	} {
		c, ok := Encode(input)
		req.True(ok, "no entry for %q", input)
		req.Equal(want, c.String(), "wrong form for %q", input)
	}
}

func TestEncode_FoldsCase(t *testing.T) {
	req := require.New(t)

	for r := 'a'; r <= 'z'; r++ {
		lower, ok := Encode(r)
		req.True(ok)

		upper, ok := Encode(r - 'a' + 'A')
		req.True(ok)

		req.True(lower.Equal(upper), "case mismatch for %q", r)
	}
}

func TestEncode_Unmapped(t *testing.T) {
	req := require.New(t)

	for _, r := range []rune{'!', '#', ' ', 'ä', '\n'} {
		_, ok := Encode(r)
		req.False(ok, "unexpected entry for %q", r)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	req := require.New(t)

	// Every table entry must decode back to its own key.
	for r := range codeTable {
		c, ok := Encode(r)
		req.True(ok)

		back, ok := Decode(c)
		req.True(ok, "no inverse for %q", r)
		req.Equal(r, back)
	}
}

func TestDecode_Unknown(t *testing.T) {
	req := require.New(t)

	// Seven dots is no standard code form.
	_, ok := Decode(NewCharacter(Dot, Dot, Dot, Dot, Dot, Dot, Dot))
	req.False(ok)
}

func TestEncodeString_SplitsWords(t *testing.T) {
	req := require.New(t)

	msg := EncodeString("sos sos")
	req.Len(msg, 2)
	req.True(msg[0].Equal(msg[1]))
	req.Equal(".../---/...", msg[0].String())
}

func TestEncodeString_FoldsWhitespace(t *testing.T) {
	req := require.New(t)

	req.True(EncodeString("a  b").Equal(EncodeString("a b")))
	req.True(EncodeString("  a b\t").Equal(EncodeString("a b")))
}

func TestEncodeString_SkipsUnmapped(t *testing.T) {
	req := require.New(t)

	msg := EncodeString("A!B")
	req.Len(msg, 1)
	req.True(msg[0].Equal(EncodeString("AB")[0]))
}

func TestEncodeString_Deterministic(t *testing.T) {
	req := require.New(t)

	req.True(EncodeString("cq cq dx").Equal(EncodeString("cq cq dx")))
}

func TestEncodeString_Empty(t *testing.T) {
	req := require.New(t)

	req.Empty(EncodeString(""))
	req.Empty(EncodeString("   "))
}
