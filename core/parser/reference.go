package parser

import (
	"strings"

	"github.com/FocuswithJustin/Aozora/core/ast"
)

// parseLeftRuby recognizes 「target」の左に「ruby」のルビ. Ruby on the left
// side has no XHTML rendering, so the builder turns this into a note, but it
// must be recognized here or the reference rule would claim the target.
func parseLeftRuby(content string) (Command, bool) {
	if !strings.Contains(content, "の左に") || !strings.Contains(content, "のルビ") {
		return Command{}, false
	}
	target, rest, ok := firstBracket(content)
	if !ok {
		return Command{}, false
	}
	if !strings.Contains(rest, "の左に") || !strings.Contains(rest, "のルビ") {
		return Command{}, false
	}
	ruby, ok := bracketContent(rest)
	if !ok {
		return Command{}, false
	}
	return Command{Kind: CommandLeftRuby, Target: target, Ruby: ruby}, true
}

// parseReference recognizes backward references such as 「target」に傍点 or
// 「target」は大見出し. The spec field is normalized to a canonical command
// name so the resolver can interpret it without re-deriving connector context.
func parseReference(content string) (Command, bool) {
	target, rest, ok := firstBracket(content)
	if !ok {
		return Command{}, false
	}
	connector, spec, isLeft, ok := parseConnector(rest)
	if !ok {
		return Command{}, false
	}

	if connector == "は" {
		if level, ok := ast.MidashiLevelFromCommand(spec); ok {
			name := ast.MidashiCommandName(level, ast.MidashiStyleFromCommand(spec))
			return Command{Kind: CommandReference, Target: target, Spec: name, Connector: "は"}, true
		}
	}
	if style, ok := ast.StyleTypeFromCommand(spec); ok {
		if isLeft {
			// 「X」の左に傍線 carries the decoration on the other side, and
			// the canonical name 左に傍線 already spells the side out, so the
			// connector shrinks to の.
			return Command{Kind: CommandReference, Target: target, Spec: style.AfterVariant().CommandName(), Connector: "の"}, true
		}
		return Command{Kind: CommandReference, Target: target, Spec: style.CommandName(), Connector: connector}, true
	}
	if typ, level, ok := ast.FontSizeFromCommand(spec); ok {
		return Command{Kind: CommandReference, Target: target, Spec: ast.FontSizeCommandName(typ, level), Connector: "は"}, true
	}
	if !isLeft && strings.HasSuffix(spec, "の注記") {
		if annotation, ok := bracketContent(strings.TrimSuffix(spec, "の注記")); ok {
			return Command{Kind: CommandReference, Target: target, Spec: "annotation_ruby:" + annotation, Connector: "に"}, true
		}
	}
	switch spec {
	case "縦中横", "罫囲み", "横組み", "キャプション":
		return Command{Kind: CommandReference, Target: target, Spec: spec, Connector: "は"}, true
	}
	return Command{}, false
}

// parseConnector splits the text after 「target」 into the joining particle
// and the decoration spec. の左に is checked first because its に would
// otherwise match; a のルビ tail is refused so left ruby stays with its own
// rule.
func parseConnector(rest string) (connector, spec string, isLeft, ok bool) {
	if idx := strings.Index(rest, "の左に"); idx >= 0 {
		if strings.Contains(rest, "のルビ") {
			return "", "", false, false
		}
		return "の左に", rest[idx+len("の左に"):], true, true
	}
	for _, c := range []string{"に", "は", "の"} {
		if idx := strings.Index(rest, c); idx >= 0 {
			return c, rest[idx+len(c):], false, true
		}
	}
	return "", "", false, false
}

// parseSideNote recognizes 「target」に「note」の傍記, a repeated side note
// resolved into ruby whose text repeats per target character.
func parseSideNote(content string) (Command, bool) {
	if !strings.HasSuffix(content, "の傍記") {
		return Command{}, false
	}
	target, rest, ok := firstBracket(content)
	if !ok {
		return Command{}, false
	}
	if !strings.HasPrefix(rest, "に") {
		return Command{}, false
	}
	annotation, ok := bracketContent(strings.TrimSuffix(rest, "の傍記"))
	if !ok {
		return Command{}, false
	}
	return Command{Kind: CommandReference, Target: target, Spec: "side_note:" + annotation, Connector: "に"}, true
}
