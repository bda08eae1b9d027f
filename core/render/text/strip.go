// Package text strips Aozora Bunko markup down to plain text: ruby and
// directives drop away, gaiji and accent notation resolve to characters.
package text

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/accent"
	"github.com/FocuswithJustin/Aozora/core/document"
	"github.com/FocuswithJustin/Aozora/core/encoding"
	"github.com/FocuswithJustin/Aozora/core/gaiji"
	"github.com/FocuswithJustin/Aozora/core/token"
)

// Convert strips a whole Aozora Bunko file to plain text. The input bytes
// may be UTF-8 or Shift_JIS; the header, afterword, and colophon are
// removed along with the markup.
func Convert(input []byte) string {
	return ConvertString(encoding.DecodeToUTF8(input))
}

// ConvertString is Convert for source text already decoded to UTF-8.
func ConvertString(source string) string {
	lines := document.SplitLines(source)
	body := document.ExtractBodyLines(lines)

	converted := make([]string, len(body))
	for i, line := range body {
		converted[i] = ConvertLine(line)
	}

	start := 0
	for start < len(converted) && converted[start] == "" {
		start++
	}
	end := len(converted)
	for end > start && converted[end-1] == "" {
		end--
	}
	if start >= end {
		return ""
	}
	return strings.Join(converted[start:end], "\n") + "\n"
}

// ConvertLine strips one line of markup, with no body extraction.
func ConvertLine(line string) string {
	return extract(token.Tokenize(line))
}

func extract(tokens []token.Token) string {
	var out strings.Builder
	for _, tok := range tokens {
		out.WriteString(extractToken(tok))
	}
	return out.String()
}

func extractToken(tok token.Token) string {
	switch tok.Kind {
	case token.KindText:
		return tok.Text
	case token.KindPrefixedRuby:
		// The ruby text goes; the base text stays.
		return extract(tok.Base)
	case token.KindGaiji:
		return gaiji.Convert(tok.Text)
	case token.KindAccent:
		return accent.Convert(extract(tok.Children))
	}
	// Implicit ruby holds only the ruby text, and directives hold no body
	// text; both vanish.
	return ""
}
