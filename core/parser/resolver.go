package parser

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/ast"
	"github.com/FocuswithJustin/Aozora/core/token"
)

// ResolveReferences rewrites a raw node list until every backward reference
// is attached to its text. Three passes run in order: ruby bases first, so
// annotation targets see finished ruby nodes; then annotated ranges; then
// style references. Each resolution is applied as a splice before scanning
// continues, so a later reference sees the rewritten list, not the original.
func ResolveReferences(nodes []ast.Node) []ast.Node {
	nodes = resolveRubyBases(nodes)
	nodes = resolveAnnotationRanges(nodes)
	nodes = resolveStyleReferences(nodes)
	return nodes
}

// resolveRubyBases attaches base text to ruby nodes produced from bare
// 《...》 spans. The base comes off the tail of the preceding nodes.
func resolveRubyBases(nodes []ast.Node) []ast.Node {
	out := nodes
	i := 0
	for i < len(out) {
		n := out[i]
		if n.Kind == ast.KindRuby && len(n.Children) == 0 && len(n.Ruby) > 0 && i > 0 {
			if base, remaining, ok := extractRubyBaseFromNodes(out[:i]); ok {
				ruby := n
				ruby.Children = base
				rebuilt := make([]ast.Node, 0, len(remaining)+1+len(out)-i-1)
				rebuilt = append(rebuilt, remaining...)
				rebuilt = append(rebuilt, ruby)
				rebuilt = append(rebuilt, out[i+1:]...)
				out = rebuilt
				i = len(remaining) + 1
				continue
			}
		}
		i++
	}
	return out
}

// resolveAnnotationRanges collapses 注記付き...「...」の注記付き終わり spans.
// A right-side range becomes ruby carrying the annotation; a left-side range
// has no ruby rendering and degrades into note markers around its content.
func resolveAnnotationRanges(nodes []ast.Node) []ast.Node {
	out := nodes
	i := 0
	for i < len(out) {
		n := out[i]
		if n.Kind != ast.KindBlockStart || (n.Block != ast.BlockAnnotationRange && n.Block != ast.BlockLeftAnnotationRange) {
			i++
			continue
		}

		end := -1
		for j := i + 1; j < len(out); j++ {
			if out[j].Kind == ast.KindBlockEnd && out[j].Block == n.Block {
				end = j
				break
			}
		}
		if end < 0 {
			i++
			continue
		}

		children := append([]ast.Node(nil), out[i+1:end]...)
		annotation := parseAnnotationText(out[end].Params.Annotation)

		var replacement []ast.Node
		if n.Block == ast.BlockAnnotationRange {
			replacement = []ast.Node{{
				Kind:      ast.KindRuby,
				Children:  children,
				Ruby:      annotation,
				Direction: ast.RubyRight,
			}}
		} else {
			replacement = append(replacement, ast.Node{Kind: ast.KindNote, Text: "左に注記付き"})
			replacement = append(replacement, children...)
			replacement = append(replacement, ast.Node{
				Kind:     ast.KindAnnotationEnd,
				Prefix:   "左に「",
				Children: annotation,
				Suffix:   "」の注記付き終わり",
			})
		}

		rebuilt := make([]ast.Node, 0, len(out)-(end-i+1)+len(replacement))
		rebuilt = append(rebuilt, out[:i]...)
		rebuilt = append(rebuilt, replacement...)
		rebuilt = append(rebuilt, out[end+1:]...)
		out = rebuilt
		i += len(replacement)
	}
	return out
}

// resolveStyleReferences attaches unresolved backward references to their
// targets. A reference whose spec or target cannot be matched is left in
// place; the renderer reproduces it as a note.
func resolveStyleReferences(nodes []ast.Node) []ast.Node {
	out := nodes
	i := 0
	for i < len(out) {
		n := out[i]
		if n.Kind != ast.KindUnresolvedReference {
			i++
			continue
		}
		makeNode, ok := resolutionFromSpec(n.Spec)
		if !ok {
			i++
			continue
		}
		m, found := findTarget(out[:i], n.Target)
		if !found {
			i++
			continue
		}

		var replacement []ast.Node
		if m.split {
			if m.before != "" {
				replacement = append(replacement, ast.NewText(m.before))
			}
			replacement = append(replacement, makeNode([]ast.Node{ast.NewText(n.Target)}))
			if m.after != "" {
				replacement = append(replacement, ast.NewText(m.after))
			}
		} else {
			children := append([]ast.Node(nil), out[m.start:m.end+1]...)
			replacement = []ast.Node{makeNode(children)}
		}

		rebuilt := make([]ast.Node, 0, len(out)+len(replacement))
		rebuilt = append(rebuilt, out[:m.start]...)
		rebuilt = append(rebuilt, replacement...)
		rebuilt = append(rebuilt, out[m.end+1:i]...)
		rebuilt = append(rebuilt, out[i+1:]...)
		i = m.start + len(replacement) + (i - m.end - 1)
		out = rebuilt
	}
	return out
}

// targetMatch locates reference target text among preceding nodes: either a
// node span [start, end], or a split inside one text node with leftover text
// on each side.
type targetMatch struct {
	start, end    int
	split         bool
	before, after string
}

// findTarget looks backward for the reference target. The single-node pass
// prefers the nearest node that is or contains the target; the span pass
// then tries runs of nodes whose combined plain text equals the target
// exactly, so a target may cover ruby and gaiji nodes.
func findTarget(nodes []ast.Node, target string) (targetMatch, bool) {
	if target == "" {
		return targetMatch{}, false
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		switch n.Kind {
		case ast.KindText:
			if n.Text == target {
				return targetMatch{start: i, end: i}, true
			}
			if idx := strings.LastIndex(n.Text, target); idx >= 0 {
				return targetMatch{
					start:  i,
					end:    i,
					split:  true,
					before: n.Text[:idx],
					after:  n.Text[idx+len(target):],
				}, true
			}
		case ast.KindFontSize, ast.KindStyle, ast.KindTcy, ast.KindKeigakomi,
			ast.KindYokogumi, ast.KindCaption, ast.KindMidashi:
			if n.PlainText() == target {
				return targetMatch{start: i, end: i}, true
			}
		}
	}

	for end := len(nodes) - 1; end >= 0; end-- {
		combined := ""
		for start := end; start >= 0; start-- {
			combined = nodes[start].PlainText() + combined
			if combined == target {
				return targetMatch{start: start, end: end}, true
			}
			if len(combined) >= len(target) {
				break
			}
		}
	}

	return targetMatch{}, false
}

// resolutionFromSpec maps a normalized reference spec to a constructor for
// the resolved node.
func resolutionFromSpec(spec string) (func(children []ast.Node) ast.Node, bool) {
	if a, ok := strings.CutPrefix(spec, "annotation_ruby:"); ok {
		return func(children []ast.Node) ast.Node {
			return ast.Node{Kind: ast.KindRuby, Children: children, Ruby: []ast.Node{ast.NewText(a)}, Direction: ast.RubyRight}
		}, true
	}
	if a, ok := strings.CutPrefix(spec, "side_note:"); ok {
		return func(children []ast.Node) ast.Node {
			return sideNoteRuby(children, a)
		}, true
	}
	if st, ok := ast.StyleTypeFromCommand(spec); ok {
		return func(children []ast.Node) ast.Node {
			return ast.Node{Kind: ast.KindStyle, Children: children, Style: st}
		}, true
	}
	if level, ok := ast.MidashiLevelFromCommand(spec); ok {
		style := ast.MidashiStyleFromCommand(spec)
		return func(children []ast.Node) ast.Node {
			return ast.Node{Kind: ast.KindMidashi, Children: children, Level: level, MidashiStyle: style}
		}, true
	}
	if typ, level, ok := ast.FontSizeFromCommand(spec); ok {
		return func(children []ast.Node) ast.Node {
			return ast.Node{Kind: ast.KindFontSize, Children: children, SizeType: typ, SizeLevel: level}
		}, true
	}
	inline := map[string]ast.Kind{
		"縦中横":    ast.KindTcy,
		"罫囲み":    ast.KindKeigakomi,
		"横組み":    ast.KindYokogumi,
		"キャプション": ast.KindCaption,
	}
	if kind, ok := inline[spec]; ok {
		return func(children []ast.Node) ast.Node {
			return ast.Node{Kind: kind, Children: children}
		}, true
	}
	return nil, false
}

// sideNoteRuby builds the ruby for a 傍記 side note: the annotation repeats
// once per target character, joined by no-break spaces.
func sideNoteRuby(children []ast.Node, annotation string) ast.Node {
	count := 0
	for _, c := range children {
		count += len([]rune(c.PlainText()))
	}
	if count < 1 {
		count = 1
	}
	repeated := make([]string, count)
	for i := range repeated {
		repeated[i] = annotation
	}
	return ast.Node{
		Kind:      ast.KindRuby,
		Children:  children,
		Ruby:      []ast.Node{ast.NewText(strings.Join(repeated, "\u00a0"))},
		Direction: ast.RubyRight,
	}
}

// parseAnnotationText tokenizes annotation text, keeping only what ruby text
// may carry: literal runs and gaiji.
func parseAnnotationText(s string) []ast.Node {
	var nodes []ast.Node
	for _, tok := range token.Tokenize(s) {
		switch tok.Kind {
		case token.KindText:
			nodes = append(nodes, ast.NewText(tok.Text))
		case token.KindGaiji:
			nodes = append(nodes, gaijiNode(tok.Text))
		}
	}
	return nodes
}
