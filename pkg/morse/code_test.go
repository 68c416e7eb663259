package morse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacter_Accessors(t *testing.T) {
	req := require.New(t)

	c := NewCharacter(Dot, Dash, Dot)
	req.Equal(3, c.Len())
	req.Equal(Dot, c.At(0))
	req.Equal(Dash, c.At(1))
	req.Equal([]Element{Dot, Dash, Dot}, c.Elements())
	req.Equal(".-.", c.String())
}

func TestCharacter_Equal(t *testing.T) {
	req := require.New(t)

	req.True(NewCharacter(Dot, Dash).Equal(NewCharacter(Dot, Dash)))
	req.False(NewCharacter(Dot, Dash).Equal(NewCharacter(Dash, Dot)))
	req.False(NewCharacter(Dot).Equal(NewCharacter(Dot, Dot)))
}

func TestCharacter_ElementsIsACopy(t *testing.T) {
	req := require.New(t)

	c := NewCharacter(Dot, Dot)
	c.Elements()[0] = Dash
	req.Equal(Dot, c.At(0))
}

func TestNewCharacter_TooLong(t *testing.T) {
	req := require.New(t)

	req.Panics(func() {
		NewCharacter(make([]Element, MaxElements+1)...)
	})
}

func TestWord_String(t *testing.T) {
	req := require.New(t)

	w := Word{NewCharacter(Dot, Dot, Dot), NewCharacter(Dash, Dash, Dash)}
	req.Equal(".../---", w.String())
	req.Equal("", Word{}.String())
}

func TestMessage_Equal(t *testing.T) {
	req := require.New(t)

	a := EncodeString("cq dx")
	b := EncodeString("cq dx")
	req.True(a.Equal(b))
	req.False(a.Equal(EncodeString("cq")))
	req.False(a.Equal(EncodeString("dx cq")))
}
