package parser

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/accent"
	"github.com/FocuswithJustin/Aozora/core/ast"
	"github.com/FocuswithJustin/Aozora/core/gaiji"
	"github.com/FocuswithJustin/Aozora/core/token"
)

// Parse converts a token sequence into resolved content nodes. This is the
// whole front half of the pipeline: interpret directives, build raw nodes,
// then attach every backward reference to the text it points at.
func Parse(tokens []token.Token) []ast.Node {
	return ResolveReferences(buildNodes(tokens))
}

// buildNodes maps tokens to raw nodes without resolving references. Ruby
// nodes from bare 《...》 spans leave with empty base text, and backward
// references stay unresolved.
func buildNodes(tokens []token.Token) []ast.Node {
	nodes := make([]ast.Node, 0, len(tokens))
	for i, tok := range tokens {
		switch tok.Kind {
		case token.KindText:
			nodes = append(nodes, ast.NewText(tok.Text))
		case token.KindRuby:
			nodes = append(nodes, ast.Node{
				Kind:      ast.KindRuby,
				Ruby:      buildInline(tok.Children),
				Direction: ast.RubyRight,
			})
		case token.KindPrefixedRuby:
			nodes = append(nodes, ast.Node{
				Kind:      ast.KindRuby,
				Children:  buildInline(tok.Base),
				Ruby:      buildInline(tok.Ruby),
				Direction: ast.RubyRight,
			})
		case token.KindGaiji:
			nodes = append(nodes, gaijiNode(tok.Text))
		case token.KindAccent:
			nodes = append(nodes, buildAccent(tok)...)
		case token.KindCommand:
			cmd := Interpret(tok.Text)
			nodes = append(nodes, commandNodes(cmd, nodes, nextToken(tokens, i))...)
		}
	}
	return nodes
}

// commandNodes maps an interpreted directive to its nodes. Warigaki regions
// look at their neighbors: text already supplying the surrounding
// parentheses suppresses the generated ones.
func commandNodes(cmd Command, prev []ast.Node, next *token.Token) []ast.Node {
	switch cmd.Kind {
	case CommandLeftRuby:
		// No XHTML rendering exists for left-side ruby, so it survives as a
		// note spelling out the original directive.
		return []ast.Node{{Kind: ast.KindNote, Text: "「" + cmd.Target + "」の左に「" + cmd.Ruby + "」のルビ"}}
	case CommandReference:
		return []ast.Node{{Kind: ast.KindUnresolvedReference, Target: cmd.Target, Spec: cmd.Spec, Connector: cmd.Connector}}
	case CommandBlockStart:
		params := cmd.Params
		if cmd.Block == ast.BlockWarigaki {
			params.HasOpenParen = endsWithOpenParen(prev)
		}
		return []ast.Node{{Kind: ast.KindBlockStart, Block: cmd.Block, Params: params}}
	case CommandBlockEnd:
		params := cmd.Params
		if cmd.Block == ast.BlockWarigaki {
			params.HasCloseParen = next != nil && next.Kind == token.KindText && strings.HasPrefix(next.Text, "）")
		}
		return []ast.Node{{Kind: ast.KindBlockEnd, Block: cmd.Block, Params: params}}
	case CommandKaeriten:
		return []ast.Node{{Kind: ast.KindKaeriten, Text: cmd.Text}}
	case CommandOkurigana:
		return []ast.Node{{Kind: ast.KindOkurigana, Text: cmd.Text}}
	case CommandImage:
		return []ast.Node{{Kind: ast.KindImage, Filename: cmd.Filename, Alt: cmd.Alt, Width: cmd.Width, Height: cmd.Height}}
	default:
		return []ast.Node{{Kind: ast.KindNote, Text: cmd.Text}}
	}
}

// buildInline builds the restricted node set allowed inside ruby text and
// explicit ruby bases: literal text, gaiji, and accent compositions.
func buildInline(tokens []token.Token) []ast.Node {
	var nodes []ast.Node
	for _, tok := range tokens {
		switch tok.Kind {
		case token.KindText:
			nodes = append(nodes, ast.NewText(tok.Text))
		case token.KindGaiji:
			nodes = append(nodes, gaijiNode(tok.Text))
		case token.KindAccent:
			nodes = append(nodes, buildAccent(tok)...)
		}
	}
	return nodes
}

// buildAccent flattens an accent span to plain text and recomposes it into
// text and accent nodes.
func buildAccent(tok token.Token) []ast.Node {
	var plain strings.Builder
	for _, n := range buildNodes(tok.Children) {
		plain.WriteString(n.PlainText())
	}

	parts := accent.Parse(plain.String())
	nodes := make([]ast.Node, 0, len(parts))
	for _, p := range parts {
		switch p.Kind {
		case accent.PartText:
			nodes = append(nodes, ast.NewText(p.Text))
		case accent.PartAccent:
			nodes = append(nodes, ast.Node{Kind: ast.KindAccent, JISCode: p.JISCode, Name: p.Name, Unicode: p.Unicode})
		}
	}
	return nodes
}

func gaijiNode(description string) ast.Node {
	res := gaiji.Parse(description)
	return ast.Node{Kind: ast.KindGaiji, Description: description, Unicode: res.Unicode, JISCode: res.JISCode}
}

func endsWithOpenParen(nodes []ast.Node) bool {
	if len(nodes) == 0 {
		return false
	}
	last := nodes[len(nodes)-1]
	return last.Kind == ast.KindText && strings.HasSuffix(last.Text, "（")
}

func nextToken(tokens []token.Token, i int) *token.Token {
	if i+1 < len(tokens) {
		return &tokens[i+1]
	}
	return nil
}
