package cli

import (
	"fmt"
	"strings"

	"github.com/gucio32/morsekey/pkg/learn"
	"github.com/gucio32/morsekey/pkg/morse"
	"github.com/spf13/cobra"
)

var (
	lessonFlag int
	wordsFlag  int
	tutorFlag  bool
)

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Practice receiving Morse by ear",
	Run: func(cmd *cobra.Command, args []string) {
		lesson, err := learn.GetLesson(lessonFlag)
		if err != nil {
			exitErr("lesson", err)
		}

		if tutorFlag {
			runTutor(lesson)
			return
		}

		if err := learn.StartLesson(lesson, wordsFlag); err != nil {
			exitErr("lesson", err)
		}
	},
}

func init() {
	learnCmd.Flags().IntVar(&lessonFlag, "lesson", 1, "Lesson index")
	learnCmd.Flags().IntVar(&wordsFlag, "words", 3, "Number of words to play")
	learnCmd.Flags().BoolVar(&tutorFlag, "tutor", false, "Print the lesson letters and replay them on demand")
	RootCmd.AddCommand(learnCmd)
}

// runTutor prints each lesson letter with its code, then replays single
// letters on demand.
func runTutor(lesson learn.Lesson) {
	for _, letter := range lesson.Letters {
		code, ok := morse.Encode(letter)
		if !ok {
			exitErr("lesson", fmt.Errorf("no code for %q", letter))
		}

		fmt.Printf("%c: %s\n", letter, code)
	}

	g, err := newGenerator()
	if err != nil {
		exitErr("open sound device", err)
	}

	player := morse.NewPlayer(g)

	var answer string
	fmt.Print("Type letter to hear it or enter to exit: ")
	for fmt.Scanln(&answer); answer != ""; fmt.Scanln(&answer) {
		switch {
		case len(answer) != 1:
			fmt.Println("Only one letter allowed")
		case !strings.ContainsRune(string(lesson.Letters), rune(answer[0])):
			fmt.Println("Not in lesson")
		default:
			if err := player.PlayString(answer); err != nil {
				exitErr("playback", err)
			}
		}

		fmt.Print("Type letter to hear it or enter to exit: ")
	}
}
