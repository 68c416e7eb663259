// Package learn implements Koch-style listening lessons on top of the audio
// generator: play random words built from a small letter set, let the user
// type back what they heard, grade the answer.
package learn

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/gucio32/morsekey/pkg/generator"
	"github.com/gucio32/morsekey/pkg/morse"
	"golang.org/x/exp/rand"
)

// Lesson is one entry of the lesson table.
// According to https://morsecode.world/international/timing.html
// it is recommended to work on PARIS=20 and increase InterChar and InterWord breaks
type Lesson struct {
	Letters   []rune
	InterChar uint
	InterWord uint
}

// WordLength is the length of every generated practice word.
const WordLength = 5

var lessons = map[int]Lesson{
	1: {[]rune{'a', 'e', 'l', 'v'}, 9, 21},
	2: {[]rune{'a', 'e', 'l', 'v'}, 6, 14},
	3: {[]rune{'a', 'e', 'l', 'v', 'c', 'q', 's', 't'}, 9, 21},
	4: {[]rune{'a', 'e', 'l', 'v', 'c', 'q', 's', 't'}, 6, 14},
}

// GetLesson looks up a lesson by index.
func GetLesson(lessonIdx int) (Lesson, error) {
	l, ok := lessons[lessonIdx]
	if !ok {
		return Lesson{}, fmt.Errorf("learn: no lesson %d", lessonIdx)
	}

	return l, nil
}

// RandomWords builds n practice words of WordLength letters drawn from
// letters.
func RandomWords(letters []rune, n int) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var word strings.Builder
		for j := 0; j < WordLength; j++ {
			word.WriteRune(letters[rand.Intn(len(letters))])
		}
		words = append(words, word.String())
	}

	return words
}

// StartLesson plays nWords random words with the lesson's stretched gaps and
// grades the typed answer against the played text.
func StartLesson(l Lesson, nWords int) error {
	rand.Seed(uint64(time.Now().UnixNano()))

	text := strings.Join(RandomWords(l.Letters, nWords), " ")

	g, err := generator.NewGenerator()
	if err != nil {
		return err
	}

	player := morse.NewPlayer(g,
		morse.WithCharGap(l.InterChar),
		morse.WithWordGap(l.InterWord),
	)

	// Play in the background so the user can type while listening.
	playErr := make(chan error, 1)
	go func() {
		playErr <- player.PlayString(text)
	}()

	fmt.Print("What do you hear?: ")
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	answer = strings.TrimSuffix(answer, "\n")
	correct := Grade(text, answer)

	if err := <-playErr; err != nil {
		return err
	}

	total := utf8.RuneCountInString(text)
	fmt.Printf("%d/%d correct\n", correct, total)
	if correct == total {
		fmt.Println("Congratulations! You can go ahead!")
	}

	return nil
}

// Grade prints the played text colored against the answer (green correct,
// red wrong, gray missing) and returns the number of correct characters.
// Text and answer are compared rune by rune.
func Grade(text, answer string) int {
	got := []rune(answer)

	correct := 0
	for i, t := range []rune(text) {
		switch {
		case i >= len(got):
			color.Gray.Printf("%c", t)
		case t != got[i]:
			color.Red.Printf("%c", t)
		default:
			color.Green.Printf("%c", t)
			correct++
		}
	}

	fmt.Println()

	return correct
}
