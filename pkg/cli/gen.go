package cli

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/gucio32/morsekey/pkg/morse"
	"github.com/spf13/cobra"
)

var (
	genOut string
	genPkg string
	genVar string
)

var genCmd = &cobra.Command{
	Use:   "gen <literal>...",
	Short: "Generate a Go source file from a Morse literal",
	Long: `Parses a dot/dash literal ('.' dot, '-' or '_' dash, '/' between
characters, spaces between words) and writes a Go file declaring the typed
morse.Message value. Meant for go:generate: a malformed literal fails the
generation step, so it can never reach a built binary.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		literal := strings.Join(args, " ")

		msg, err := morse.ParseMessage(literal)
		if err != nil {
			exitErr("parse literal", err)
		}

		src, err := genSource(genPkg, genVar, literal, msg)
		if err != nil {
			exitErr("render source", err)
		}

		if genOut == "-" {
			fmt.Print(string(src))
			return
		}

		if err := os.WriteFile(genOut, src, 0o644); err != nil {
			exitErr("write output", err)
		}
	},
}

func init() {
	genCmd.Flags().StringVarP(&genOut, "out", "o", "-", "Output file (- for stdout)")
	genCmd.Flags().StringVarP(&genPkg, "pkg", "p", "main", "Package name of the generated file")
	genCmd.Flags().StringVarP(&genVar, "var", "n", "Morse", "Name of the generated variable")
	RootCmd.AddCommand(genCmd)
}

// genSource renders msg as a Go source file declaring one morse.Message
// variable, gofmt-formatted.
func genSource(pkg, name, literal string, msg morse.Message) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "// Code generated by morsekey gen %q; DO NOT EDIT.\n\n", literal)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n\n", "github.com/gucio32/morsekey/pkg/morse")
	fmt.Fprintf(&b, "var %s = morse.Message{\n", name)

	for _, w := range msg {
		b.WriteString("\tmorse.Word{\n")
		for _, c := range w {
			b.WriteString("\t\tmorse.NewCharacter(")
			for i := 0; i < c.Len(); i++ {
				if i > 0 {
					b.WriteString(", ")
				}
				if c.At(i) == morse.Dash {
					b.WriteString("morse.Dash")
				} else {
					b.WriteString("morse.Dot")
				}
			}
			b.WriteString("),\n")
		}
		b.WriteString("\t},\n")
	}

	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
