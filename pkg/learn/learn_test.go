package learn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLesson(t *testing.T) {
	req := require.New(t)

	l, err := GetLesson(1)
	req.NoError(err)
	req.Equal([]rune{'a', 'e', 'l', 'v'}, l.Letters)
	req.Equal(uint(9), l.InterChar)
	req.Equal(uint(21), l.InterWord)

	_, err = GetLesson(99)
	req.Error(err)
}

func TestGrade(t *testing.T) {
	req := require.New(t)

	req.Equal(5, Grade("aelva", "aelva"))
	req.Equal(3, Grade("aelva", "aexv")) // wrong 'x', missing tail
	req.Equal(0, Grade("aelva", ""))
}

func TestGrade_MultibyteRunes(t *testing.T) {
	req := require.New(t)

	// Compared rune by rune, not byte by byte.
	req.Equal(2, Grade("éé", "éé"))
	req.Equal(1, Grade("éa", "éb"))
}

func TestRandomWords(t *testing.T) {
	req := require.New(t)

	letters := []rune{'a', 'e'}
	words := RandomWords(letters, 4)
	req.Len(words, 4)

	for _, w := range words {
		req.Len(w, WordLength)
		for _, r := range w {
			req.Contains(letters, r)
		}
	}
}
