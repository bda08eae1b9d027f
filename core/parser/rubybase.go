package parser

import (
	"github.com/FocuswithJustin/Aozora/core/ast"
	"github.com/FocuswithJustin/Aozora/core/chartype"
)

// ExtractRubyBase splits text into the trailing run that serves as a ruby
// base and the remainder before it. The base is the longest suffix of a
// single character class: in 彼は東京《とうきょう》 the kanji run 東京 takes
// the ruby while 彼は stays plain.
func ExtractRubyBase(text string) (base, remaining string, t chartype.CharType, ok bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return "", "", 0, false
	}
	t = chartype.Classify(runes[len(runes)-1])
	if !t.CanBeRubyBase() {
		return "", "", 0, false
	}
	remaining, base = splitTrailingRun(text, t)
	return base, remaining, t, true
}

// splitTrailingRun cuts the longest suffix of text whose runes all classify
// as t.
func splitTrailingRun(text string, t chartype.CharType) (before, run string) {
	runes := []rune(text)
	i := len(runes)
	for i > 0 && chartype.Classify(runes[i-1]) == t {
		i--
	}
	return string(runes[:i]), string(runes[i:])
}

// extractRubyBaseFromNodes pulls a ruby base off the tail of a node list.
// The character class of the final character decides what joins: preceding
// text nodes contribute their trailing run of that class, and gaiji count as
// kanji. Scanning stops at the first node that contributes nothing more.
func extractRubyBaseFromNodes(nodes []ast.Node) (base, remaining []ast.Node, ok bool) {
	if len(nodes) == 0 {
		return nil, nil, false
	}
	t, ok := nodes[len(nodes)-1].LastCharType()
	if !ok || !t.CanBeRubyBase() {
		return nil, nil, false
	}

	remaining = append([]ast.Node(nil), nodes...)
scan:
	for len(remaining) > 0 {
		n := remaining[len(remaining)-1]
		switch n.Kind {
		case ast.KindText:
			before, run := splitTrailingRun(n.Text, t)
			if run == "" {
				break scan
			}
			remaining = remaining[:len(remaining)-1]
			base = append([]ast.Node{ast.NewText(run)}, base...)
			if before != "" {
				remaining = append(remaining, ast.NewText(before))
				break scan
			}
		case ast.KindGaiji:
			if t != chartype.Kanji {
				break scan
			}
			remaining = remaining[:len(remaining)-1]
			base = append([]ast.Node{n}, base...)
		default:
			break scan
		}
	}

	if len(base) == 0 {
		return nil, nil, false
	}
	return base, remaining, true
}
