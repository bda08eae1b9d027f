package gaiji

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// codeGrammar is the participle grammar for men-ku-ten codes.
// Examples: "1-84-22", "2-9-4", "1-02-22"
type codeGrammar struct {
	Plane string `parser:"@Int"`
	Row   string `parser:"'-' @Int"`
	Cell  string `parser:"'-' @Int"`
}

// codeLexer defines the lexer for men-ku-ten codes.
var codeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dash", Pattern: `-`},
})

// codeParser is the participle parser for men-ku-ten codes.
var codeParser = participle.MustBuild[codeGrammar](
	participle.Lexer(codeLexer),
)

// NormalizeJISCode rewrites a men-ku-ten code into the canonical form used
// as the table key and the glyph image name: the plane verbatim, row and
// cell zero-padded to two digits ("1-2-22" becomes "1-02-22"). Strings that
// do not parse as a code are returned unchanged.
func NormalizeJISCode(code string) string {
	parsed, err := codeParser.ParseString("", code)
	if err != nil {
		return code
	}
	return fmt.Sprintf("%s-%s-%s", parsed.Plane, pad2(parsed.Row), pad2(parsed.Cell))
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
